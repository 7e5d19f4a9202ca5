package site

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	serrors "github.com/alexk49/simpblog/internal/errors"
)

// discoverSources lists the .md and .html files directly under dir, sorted by
// name. A missing directory yields no sources.
func discoverSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, serrors.Wrap(err, serrors.KindIO, "read source directory").WithPath(dir)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".md", ".html":
			sources = append(sources, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(sources)
	return sources, nil
}

// collectStatic lists every file under the static directory. The list feeds
// dependency sets: any static change conservatively invalidates all outputs.
func collectStatic(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(err, serrors.KindIO, "walk static directory").WithPath(dir)
	}
	sort.Strings(files)
	return files, nil
}
