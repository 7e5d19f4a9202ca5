// Package site orchestrates a full build: source discovery, parsing, tag
// aggregation, template composition, staleness-gated writes, and static
// assets.
package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexk49/simpblog/internal/config"
	"github.com/alexk49/simpblog/internal/content"
	serrors "github.com/alexk49/simpblog/internal/errors"
	"github.com/alexk49/simpblog/internal/frontmatter"
	"github.com/alexk49/simpblog/internal/incremental"
	"github.com/alexk49/simpblog/internal/markdown"
	"github.com/alexk49/simpblog/internal/templates"
)

// Options controls a single build invocation.
type Options struct {
	// Force bypasses the staleness check: every output is regenerated.
	Force bool
}

// Result enumerates what one build invocation did.
type Result struct {
	BuildID  string
	Written  []string
	Skipped  []string
	Static   int
	Pages    int
	Posts    int
	Tags     int
	Duration time.Duration
}

// Build runs the full pipeline for the configured site. It fails fast: any
// parse or template error aborts before further writes, leaving previously
// written outputs in place.
func Build(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{BuildID: uuid.NewString()}
	logger := slog.Default().With(slog.String("build.id", result.BuildID))

	pagesExist := dirExists(cfg.PagesDir())
	postsExist := dirExists(cfg.PostsDir())

	store, err := templates.Load(cfg.TemplatesDir(), pagesExist, postsExist)
	if err != nil {
		return nil, err
	}

	renderer := markdown.NewRenderer()

	pages, err := parseKind(cfg.PagesDir(), content.KindPage, renderer)
	if err != nil {
		return nil, err
	}
	posts, err := parseKind(cfg.PostsDir(), content.KindPost, renderer)
	if err != nil {
		return nil, err
	}

	if err := checkDuplicateSlugs(pages); err != nil {
		return nil, err
	}
	if err := checkDuplicateSlugs(posts); err != nil {
		return nil, err
	}

	tagIndex := content.BuildTagIndex(posts)

	staticFiles, err := collectStatic(cfg.StaticDir())
	if err != nil {
		return nil, err
	}

	postSources := make([]string, 0, len(posts))
	for _, post := range posts {
		postSources = append(postSources, post.SourcePath)
	}

	outputDir := cfg.OutputDir()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, serrors.Wrap(err, serrors.KindIO, "create output directory").WithPath(outputDir)
	}

	checker := incremental.NewChecker(opts.Force).WithLogger(logger)
	manifest := &Manifest{}

	logger.Info("starting build",
		slog.Int("pages", len(pages)),
		slog.Int("posts", len(posts)),
		slog.Int("tags", tagIndex.Len()),
		slog.Bool("force", opts.Force))

	// Pages and posts.
	for _, doc := range append(append([]*content.Document{}, pages...), posts...) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kindFile := templates.PageFile
		if doc.Kind == content.KindPost {
			kindFile = templates.PostFile
		}
		outputPath := filepath.Join(outputDir, doc.OutputRel())
		entry := manifest.add(doc.SourcePath, outputPath,
			depSet([]string{doc.SourcePath}, store.Chain(kindFile), staticFiles))

		if !checker.IsStale(entry.OutputPath, entry.Deps) {
			result.Skipped = append(result.Skipped, entry.OutputPath)
			continue
		}

		var html string
		if doc.Kind == content.KindPost {
			html = store.RenderPost(doc, cfg.Title)
		} else {
			html = store.RenderPage(doc, cfg.Title)
		}
		if err := writeOutput(entry.OutputPath, html); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, entry.OutputPath)
	}

	// Tag pages, only when a tag template exists and at least one post is
	// tagged.
	if store.Has(templates.TagFile) {
		for _, tag := range tagIndex.Tags() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			outputPath := filepath.Join(outputDir, content.KindTag.OutputDir(), tag+".html")
			entry := manifest.add("", outputPath,
				depSet(store.Chain(templates.TagFile), postSources, staticFiles))

			if !checker.IsStale(entry.OutputPath, entry.Deps) {
				result.Skipped = append(result.Skipped, entry.OutputPath)
				continue
			}

			html := store.RenderTag(tag, tagIndex.Posts(tag), cfg.Title)
			if err := writeOutput(entry.OutputPath, html); err != nil {
				return nil, err
			}
			result.Written = append(result.Written, entry.OutputPath)
		}
	}

	// Homepage, when an index template exists.
	if store.Has(templates.IndexFile) {
		sorted := append([]*content.Document{}, posts...)
		content.SortPosts(sorted)

		outputPath := filepath.Join(outputDir, "index.html")
		entry := manifest.add("", outputPath,
			depSet(store.Chain(templates.IndexFile), postSources, staticFiles))

		if checker.IsStale(entry.OutputPath, entry.Deps) {
			html := store.RenderIndex(sorted, cfg.Title)
			if err := writeOutput(entry.OutputPath, html); err != nil {
				return nil, err
			}
			result.Written = append(result.Written, entry.OutputPath)
		} else {
			result.Skipped = append(result.Skipped, entry.OutputPath)
		}
	}

	// Static assets are always copied, no staleness check.
	copied, err := copyStatic(cfg.StaticDir(), outputDir)
	if err != nil {
		return nil, err
	}

	result.Static = copied
	result.Pages = len(pages)
	result.Posts = len(posts)
	result.Tags = tagIndex.Len()
	result.Duration = time.Since(start)

	logger.Info("build complete",
		slog.Int("written", len(result.Written)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("static", copied),
		slog.Duration("duration", result.Duration))

	return result, nil
}

// parseKind reads every source under dir into a Document. The whole build
// fails on the first parse error.
func parseKind(dir string, kind content.Kind, renderer *markdown.Renderer) ([]*content.Document, error) {
	sources, err := discoverSources(dir)
	if err != nil {
		return nil, err
	}

	docs := make([]*content.Document, 0, len(sources))
	for _, source := range sources {
		doc, err := parseSource(source, kind, renderer)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func parseSource(source string, kind content.Kind, renderer *markdown.Renderer) (*content.Document, error) {
	raw, err := os.ReadFile(source)
	if err != nil {
		return nil, serrors.Wrap(err, serrors.KindIO, "read source").WithPath(source)
	}

	fm, body, _, _, err := frontmatter.Split(raw)
	if err != nil {
		return nil, withPath(err, source)
	}

	meta, err := frontmatter.ParseMeta(frontmatter.Parse(fm))
	if err != nil {
		return nil, withPath(err, source)
	}

	var rendered []byte
	if strings.EqualFold(filepath.Ext(source), ".html") {
		rendered = body
	} else {
		rendered, err = renderer.Render(body)
		if err != nil {
			return nil, withPath(err, source)
		}
	}

	return content.New(source, kind, meta, body, rendered), nil
}

// checkDuplicateSlugs enforces slug uniqueness within one document kind.
func checkDuplicateSlugs(docs []*content.Document) error {
	seen := make(map[string]*content.Document, len(docs))
	for _, doc := range docs {
		if prev, dup := seen[doc.Slug]; dup {
			return serrors.New(serrors.KindDuplicateSlug,
				"%s slug %q used by both %s and %s", doc.Kind, doc.Slug, prev.SourcePath, doc.SourcePath).
				WithPath(doc.SourcePath)
		}
		seen[doc.Slug] = doc
	}
	return nil
}

// writeOutput writes HTML to its final path directly; a crash mid-render
// leaves the previous output intact because nothing is written until the
// composition is complete.
func writeOutput(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return serrors.Wrap(err, serrors.KindIO, "create output directory").WithPath(path)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return serrors.Wrap(err, serrors.KindIO, "write output").WithPath(path)
	}
	return nil
}

func withPath(err error, path string) error {
	if be, ok := err.(*serrors.BuildError); ok {
		return be.WithPath(path)
	}
	return err
}

func dirExists(dir string) bool {
	st, err := os.Stat(dir)
	return err == nil && st.IsDir()
}
