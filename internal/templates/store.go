// Package templates loads the layout and kind templates and composes them
// into full documents.
//
// Substitution is literal text replacement over a fixed set of placeholder
// names. Unresolved placeholders are left untouched so authors can keep
// illustrative placeholders in example content.
package templates

import (
	"os"
	"path/filepath"

	serrors "github.com/alexk49/simpblog/internal/errors"
)

// Template file names under the templates directory.
const (
	LayoutFile = "layout.html"
	PageFile   = "page.html"
	PostFile   = "post.html"
	TagFile    = "tag.html"
	IndexFile  = "index.html"
)

// Store holds the templates loaded for a single build invocation. It is
// constructed once per build and passed to the site builder; there is no
// process-wide template state.
type Store struct {
	dir        string
	layout     string
	layoutPath string
	kinds      map[string]kindTemplate
}

type kindTemplate struct {
	path string
	text string
}

// Load reads layout.html and the optional kind templates from dir.
//
// needPages/needPosts indicate which content directories exist; a present
// content directory without its kind template, or any template without a
// layout, fails the build.
func Load(dir string, needPages, needPosts bool) (*Store, error) {
	s := &Store{
		dir:   dir,
		kinds: make(map[string]kindTemplate),
	}

	for _, name := range []string{PageFile, PostFile, TagFile, IndexFile} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, serrors.Wrap(err, serrors.KindIO, "read template").WithPath(path)
		}
		s.kinds[name] = kindTemplate{path: path, text: string(data)}
	}

	layoutPath := filepath.Join(dir, LayoutFile)
	data, err := os.ReadFile(layoutPath)
	switch {
	case err == nil:
		s.layout = string(data)
		s.layoutPath = layoutPath
	case os.IsNotExist(err):
		if needPages || needPosts || len(s.kinds) > 0 {
			return nil, serrors.New(serrors.KindMissingLayout,
				"%s is required but absent", LayoutFile).WithPath(layoutPath)
		}
	default:
		return nil, serrors.Wrap(err, serrors.KindIO, "read template").WithPath(layoutPath)
	}

	if needPages && !s.Has(PageFile) {
		return nil, serrors.New(serrors.KindMissingTemplate,
			"pages directory exists but %s is absent", PageFile).WithPath(filepath.Join(dir, PageFile))
	}
	if needPosts && !s.Has(PostFile) {
		return nil, serrors.New(serrors.KindMissingTemplate,
			"posts directory exists but %s is absent", PostFile).WithPath(filepath.Join(dir, PostFile))
	}

	return s, nil
}

// Has reports whether the named kind template was loaded.
func (s *Store) Has(name string) bool {
	_, ok := s.kinds[name]
	return ok
}

// Chain returns the template files in the composition chain for the named
// kind template, for use in dependency sets.
func (s *Store) Chain(name string) []string {
	var chain []string
	if kt, ok := s.kinds[name]; ok {
		chain = append(chain, kt.path)
	}
	if s.layoutPath != "" {
		chain = append(chain, s.layoutPath)
	}
	return chain
}
