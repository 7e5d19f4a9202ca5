// Package markdown wraps the Markdown-to-HTML rendering capability.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	serrors "github.com/alexk49/simpblog/internal/errors"
)

// Renderer converts Markdown bodies (front matter already removed) to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GFM extensions and auto heading IDs.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
		),
	}
}

// Render converts a Markdown body to HTML.
func (r *Renderer) Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, serrors.Wrap(err, serrors.KindInternal, "render markdown")
	}
	return buf.Bytes(), nil
}
