package site

import (
	"io"
	"os"
	"path/filepath"

	serrors "github.com/alexk49/simpblog/internal/errors"
)

// copyStatic copies every file under staticDir to the output root verbatim,
// overwriting unconditionally. Returns the number of files copied. A missing
// static directory is not an error.
func copyStatic(staticDir, outputDir string) (int, error) {
	if _, err := os.Stat(staticDir); os.IsNotExist(err) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(staticDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(staticDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(outputDir, rel)
		if err := copyFile(path, dst); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, serrors.Wrap(err, serrors.KindIO, "copy static assets").WithPath(staticDir)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
