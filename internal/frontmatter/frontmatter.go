// Package frontmatter splits source files into a metadata block and a body,
// and parses the metadata into the typed fields the content model consumes.
package frontmatter

import (
	"bytes"
	"strings"
	"time"

	serrors "github.com/alexk49/simpblog/internal/errors"
)

// DateFormat is the only accepted date layout in front matter.
const DateFormat = "2006-01-02"

// Style captures the newline shape of a source file so serialized front
// matter can reproduce it.
type Style struct {
	Newline string
}

// Split separates a `---` delimited front-matter block from the body.
//
// If the file does not start with a delimiter line, had is false and body is
// the full input. An opening delimiter without a closing one is a build error.
func Split(content []byte) (fm []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		return []byte{}, content[start+len(open):], true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// A final `---` with no trailing newline still closes the block.
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content[start:], tail) {
			end := len(content) - len(tail)
			return content[start : end+len(nl)], []byte{}, true, style, nil
		}
		return nil, nil, false, style, serrors.New(serrors.KindMalformedFrontMatter,
			"front-matter delimiter %q is never closed", "---")
	}

	fmEnd := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:fmEnd], content[bodyStart:], true, style, nil
}

// Parse reads a front-matter block into key/value pairs. Each non-empty line
// is split at the first colon; the value is the trimmed remainder. Lines
// without a colon are ignored.
func Parse(fm []byte) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(fm), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

// Meta holds the recognized front-matter fields.
type Meta struct {
	Title   string
	Slug    string
	Date    time.Time
	HasDate bool
	Tags    []string
}

// ParseMeta extracts and validates the recognized keys from parsed fields.
// Unrecognized keys are ignored.
func ParseMeta(fields map[string]string) (Meta, error) {
	meta := Meta{
		Title: fields["title"],
		Slug:  fields["slug"],
	}

	if raw, ok := fields["date"]; ok && raw != "" {
		date, err := time.Parse(DateFormat, raw)
		if err != nil {
			return Meta{}, serrors.Wrap(err, serrors.KindInvalidDate,
				"date %q is not a valid %s date", raw, DateFormat)
		}
		meta.Date = date
		meta.HasDate = true
	}

	if raw, ok := fields["tags"]; ok {
		meta.Tags = splitTags(raw)
	}

	return meta, nil
}

// splitTags splits a comma-separated tag list, trimming whitespace and
// removing duplicates while preserving first-occurrence order and case.
func splitTags(raw string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, tag := range strings.Split(raw, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			break
		}
	}
	return Style{Newline: newline}
}
