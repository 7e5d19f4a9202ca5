package frontmatter

import (
	"sort"
	"strings"
)

// Serialize writes key/value pairs back into a front-matter block body
// (without delimiters).
//
// Determinism: keys are sorted so identical field sets always serialize to
// identical bytes. Newlines follow the provided Style (defaults to \n).
func Serialize(fields map[string]string, style Style) []byte {
	if len(fields) == 0 {
		return []byte{}
	}

	nl := style.Newline
	if nl == "" {
		nl = "\n"
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fields[k])
		b.WriteString(nl)
	}
	return []byte(b.String())
}

// SerializeMeta converts recognized metadata back into serializable fields.
// Round-tripping ParseMeta then SerializeMeta reproduces equivalent pairs.
func SerializeMeta(meta Meta) map[string]string {
	fields := make(map[string]string)
	if meta.Title != "" {
		fields["title"] = meta.Title
	}
	if meta.Slug != "" {
		fields["slug"] = meta.Slug
	}
	if meta.HasDate {
		fields["date"] = meta.Date.Format(DateFormat)
	}
	if len(meta.Tags) > 0 {
		fields["tags"] = strings.Join(meta.Tags, ", ")
	}
	return fields
}
