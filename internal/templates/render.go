package templates

import (
	"fmt"
	"strings"

	"github.com/alexk49/simpblog/internal/content"
	"github.com/alexk49/simpblog/internal/frontmatter"
)

// replacement binds one placeholder name to its substituted value. The
// placeholder set is fixed and enumerated per kind; there is no dynamic
// attribute lookup.
type replacement struct {
	name  string
	value string
}

// RenderPage composes a page document into the layout.
func (s *Store) RenderPage(doc *content.Document, siteTitle string) string {
	fragment := apply(s.kinds[PageFile].text, []replacement{
		{"title", doc.Title},
		{"content", string(doc.BodyRendered)},
	})
	return s.compose(fragment, doc.Title, siteTitle)
}

// RenderPost composes a post document into the layout.
func (s *Store) RenderPost(doc *content.Document, siteTitle string) string {
	date := ""
	if doc.HasDate {
		date = doc.Date.Format(frontmatter.DateFormat)
	}
	fragment := apply(s.kinds[PostFile].text, []replacement{
		{"title", doc.Title},
		{"date", date},
		{"tags", strings.Join(doc.Tags, ", ")},
		{"content", string(doc.BodyRendered)},
	})
	return s.compose(fragment, doc.Title, siteTitle)
}

// RenderTag composes a tag listing page for one tag and its ordered posts.
func (s *Store) RenderTag(tag string, posts []*content.Document, siteTitle string) string {
	fragment := apply(s.kinds[TagFile].text, []replacement{
		{"tag", tag},
		{"site_title", siteTitle},
		{"posts", postList(posts)},
	})
	return s.compose(fragment, tag, siteTitle)
}

// RenderIndex composes the homepage listing all posts.
func (s *Store) RenderIndex(posts []*content.Document, siteTitle string) string {
	fragment := apply(s.kinds[IndexFile].text, []replacement{
		{"site_title", siteTitle},
		{"posts", postList(posts)},
	})
	return s.compose(fragment, siteTitle, siteTitle)
}

// compose substitutes the rendered fragment into the layout's content
// placeholder along with the layout-level placeholders.
func (s *Store) compose(fragment, title, siteTitle string) string {
	return apply(s.layout, []replacement{
		{"title", title},
		{"site_title", siteTitle},
		{"content", fragment},
	})
}

// apply performs literal replacement of {{name}} placeholders. Placeholders
// not in the replacement set pass through untouched.
//
// Replacements run in slice order and the inserted body is always last, so
// placeholder-like text inside previously substituted values is never
// re-scanned: authors may keep literal placeholders in their content.
func apply(tpl string, repls []replacement) string {
	for _, r := range repls {
		tpl = strings.ReplaceAll(tpl, "{{"+r.name+"}}", r.value)
	}
	return tpl
}

// postList renders an ordered post listing shared by tag pages and the
// homepage.
func postList(posts []*content.Document) string {
	var b strings.Builder
	b.WriteString("<ul class=\"post-list\">\n")
	for _, post := range posts {
		b.WriteString("  <li><a href=\"")
		b.WriteString(post.URLPath())
		b.WriteString("\">")
		b.WriteString(post.Title)
		b.WriteString("</a>")
		if post.HasDate {
			date := post.Date.Format(frontmatter.DateFormat)
			fmt.Fprintf(&b, " <time datetime=%q>%s</time>", date, date)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}
