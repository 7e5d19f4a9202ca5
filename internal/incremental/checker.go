// Package incremental decides, per output file, whether regeneration is
// required.
package incremental

import (
	"log/slog"
	"os"
)

// Checker performs pure modification-time comparisons between an output file
// and its dependency set. No content hashing and no state persisted across
// runs beyond the output files themselves.
type Checker struct {
	force  bool
	logger *slog.Logger
}

// NewChecker creates a checker. When force is set every output is stale.
func NewChecker(force bool) *Checker {
	return &Checker{
		force:  force,
		logger: slog.Default(),
	}
}

// WithLogger sets a custom logger.
func (c *Checker) WithLogger(logger *slog.Logger) *Checker {
	c.logger = logger
	return c
}

// IsStale reports whether outputPath must be regenerated: the output does not
// exist, any dependency is newer than it, or force is set. A missing
// dependency counts as stale; the build will surface the real error when it
// tries to read it.
func (c *Checker) IsStale(outputPath string, deps []string) bool {
	if c.force {
		return true
	}

	out, err := os.Stat(outputPath)
	if err != nil {
		c.logger.Debug("output missing, rebuilding", slog.String("output", outputPath))
		return true
	}

	for _, dep := range deps {
		src, err := os.Stat(dep)
		if err != nil {
			c.logger.Debug("dependency missing, rebuilding",
				slog.String("output", outputPath), slog.String("dep", dep))
			return true
		}
		if src.ModTime().After(out.ModTime()) {
			c.logger.Debug("dependency newer than output",
				slog.String("output", outputPath), slog.String("dep", dep))
			return true
		}
	}

	return false
}
