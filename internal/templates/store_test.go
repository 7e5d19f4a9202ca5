package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexk49/simpblog/internal/content"
	serrors "github.com/alexk49/simpblog/internal/errors"
	"github.com/alexk49/simpblog/internal/frontmatter"
)

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
	}
	return dir
}

func TestLoad_MissingLayoutWithContentDirs_Fails(t *testing.T) {
	dir := writeTemplates(t, map[string]string{PageFile: "{{content}}"})

	_, err := Load(dir, true, false)
	require.Error(t, err)
	require.True(t, serrors.IsKind(err, serrors.KindMissingLayout))
}

func TestLoad_MissingLayoutWithKindTemplateOnly_Fails(t *testing.T) {
	dir := writeTemplates(t, map[string]string{TagFile: "{{tag}}"})

	_, err := Load(dir, false, false)
	require.Error(t, err)
	require.True(t, serrors.IsKind(err, serrors.KindMissingLayout))
}

func TestLoad_MissingKindTemplateForContentDir_Fails(t *testing.T) {
	dir := writeTemplates(t, map[string]string{LayoutFile: "{{content}}"})

	_, err := Load(dir, false, true)
	require.Error(t, err)
	require.True(t, serrors.IsKind(err, serrors.KindMissingTemplate))
}

func TestLoad_EmptySiteWithoutTemplates_Succeeds(t *testing.T) {
	s, err := Load(t.TempDir(), false, false)
	require.NoError(t, err)
	require.False(t, s.Has(TagFile))
}

func TestChain_ListsKindTemplateThenLayout(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		LayoutFile: "{{content}}",
		PostFile:   "{{title}}",
	})
	s, err := Load(dir, false, true)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, PostFile),
		filepath.Join(dir, LayoutFile),
	}, s.Chain(PostFile))
}

func TestRenderPost_SubstitutesAttributesIntoLayout(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		LayoutFile: "<html><title>{{site_title}}</title><body>{{content}}</body></html>",
		PostFile:   "<h1>{{title}}</h1><time>{{date}}</time><p>{{tags}}</p>{{content}}",
	})
	s, err := Load(dir, false, true)
	require.NoError(t, err)

	doc := content.New("posts/hello.md", content.KindPost, frontmatter.Meta{
		Title:   "Hello",
		Slug:    "hello",
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		HasDate: true,
		Tags:    []string{"intro", "go"},
	}, nil, []byte("<h1 id=\"hi\">Hi</h1>"))

	out := s.RenderPost(doc, "My Blog")

	require.Contains(t, out, "<title>My Blog</title>")
	require.Contains(t, out, "<h1>Hello</h1>")
	require.Contains(t, out, "<time>2024-01-01</time>")
	require.Contains(t, out, "<p>intro, go</p>")
	require.Contains(t, out, `<h1 id="hi">Hi</h1>`)
}

func TestRender_UnresolvedPlaceholderLeftUntouched(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		LayoutFile: "{{content}}{{mystery}}",
		PageFile:   "{{title}}{{another_mystery}}",
	})
	s, err := Load(dir, true, false)
	require.NoError(t, err)

	doc := content.New("pages/about.md", content.KindPage, frontmatter.Meta{Title: "About"}, nil, nil)
	out := s.RenderPage(doc, "My Blog")

	require.Contains(t, out, "{{mystery}}")
	require.Contains(t, out, "{{another_mystery}}")
}

func TestRender_LiteralPlaceholdersInBodySurviveComposition(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		LayoutFile: "<title>{{title}} - {{site_title}}</title>{{content}}",
		PageFile:   "<h1>{{title}}</h1>{{content}}",
	})
	s, err := Load(dir, true, false)
	require.NoError(t, err)

	body := []byte("<p>Use {{title}} and {{site_title}} in your templates.</p>")
	doc := content.New("pages/docs.md", content.KindPage, frontmatter.Meta{Title: "Docs"}, nil, body)

	out := s.RenderPage(doc, "My Blog")

	require.Contains(t, out, "<title>Docs - My Blog</title>")
	require.Contains(t, out, "<h1>Docs</h1>")
	require.Contains(t, out, "<p>Use {{title}} and {{site_title}} in your templates.</p>")
}

func TestRenderTag_ListsPostsInOrder(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		LayoutFile: "{{content}}",
		TagFile:    "<h1>{{tag}}</h1>{{posts}}",
	})
	s, err := Load(dir, false, false)
	require.NoError(t, err)

	posts := []*content.Document{
		content.New("posts/newer.md", content.KindPost, frontmatter.Meta{
			Title: "Newer", Slug: "newer",
			Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), HasDate: true,
		}, nil, nil),
		content.New("posts/older.md", content.KindPost, frontmatter.Meta{
			Title: "Older", Slug: "older",
		}, nil, nil),
	}

	out := s.RenderTag("example", posts, "My Blog")

	require.Contains(t, out, "<h1>example</h1>")
	require.Contains(t, out, `<a href="/posts/newer.html">Newer</a>`)
	require.Contains(t, out, `<a href="/posts/older.html">Older</a>`)
	require.Less(t, strings.Index(out, "newer.html"), strings.Index(out, "older.html"))
}

func TestRenderIndex_UsesSiteTitle(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		LayoutFile: "<title>{{title}}</title>{{content}}",
		IndexFile:  "<h1>{{site_title}}</h1>{{posts}}",
	})
	s, err := Load(dir, false, false)
	require.NoError(t, err)

	out := s.RenderIndex(nil, "My Blog")
	require.Contains(t, out, "<title>My Blog</title>")
	require.Contains(t, out, "<h1>My Blog</h1>")
}
