// Package content holds the in-memory model for pages, posts, and the tag
// index derived from them.
package content

import (
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexk49/simpblog/internal/frontmatter"
)

// Kind distinguishes the concrete document variants.
type Kind string

const (
	KindPage Kind = "page"
	KindPost Kind = "post"
	KindTag  Kind = "tag"
)

// OutputDir returns the output subdirectory for the kind.
func (k Kind) OutputDir() string {
	switch k {
	case KindPage:
		return "pages"
	case KindPost:
		return "posts"
	case KindTag:
		return "tags"
	}
	return ""
}

// Document is a parsed page or post ready for template composition.
type Document struct {
	SourcePath string
	Kind       Kind
	Slug       string
	Title      string
	Date       time.Time
	HasDate    bool
	Tags       []string
	BodyRaw    []byte

	// BodyRendered is the HTML body; identity with BodyRaw for .html sources.
	BodyRendered []byte
}

// New builds a Document from parsed metadata and rendered body. Missing slug
// and title fall back to filename-derived values. Pages never carry tags or a
// date, whatever the front matter says.
func New(sourcePath string, kind Kind, meta frontmatter.Meta, raw, rendered []byte) *Document {
	doc := &Document{
		SourcePath:   sourcePath,
		Kind:         kind,
		Slug:         meta.Slug,
		Title:        meta.Title,
		Date:         meta.Date,
		HasDate:      meta.HasDate,
		Tags:         meta.Tags,
		BodyRaw:      raw,
		BodyRendered: rendered,
	}

	if doc.Slug == "" {
		doc.Slug = SlugFromFilename(sourcePath)
	}
	if doc.Title == "" {
		doc.Title = TitleFromFilename(sourcePath)
	}
	if kind == KindPage {
		doc.Tags = nil
		doc.Date = time.Time{}
		doc.HasDate = false
	}

	return doc
}

// OutputRel returns the document's output path relative to the output root:
// {kind-directory}/{slug}.html.
func (d *Document) OutputRel() string {
	return filepath.Join(d.Kind.OutputDir(), d.Slug+".html")
}

// URLPath returns the document's site-absolute URL. Unlike OutputRel it
// always uses forward slashes, whatever the host filesystem separator is.
func (d *Document) URLPath() string {
	return "/" + path.Join(d.Kind.OutputDir(), d.Slug+".html")
}

// SlugFromFilename derives a slug from a source file name with the extension
// stripped.
func SlugFromFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TitleFromFilename derives a display title from a source file name:
// "my-first-post.md" becomes "My First Post".
func TitleFromFilename(path string) string {
	words := strings.ReplaceAll(SlugFromFilename(path), "-", " ")
	return cases.Title(language.English).String(words)
}
