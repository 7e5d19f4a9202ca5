package commands

import (
	"log/slog"
	"os"
)

// Global is shared state passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition with global flags.
type CLI struct {
	SiteDir string `short:"s" name:"site-dir" default:"." help:"Root directory containing pages/, posts/, templates/ and static/."`
	Verbose bool   `short:"v" help:"Enable verbose logging."`

	Build BuildCmd `cmd:"" help:"Build the site once."`
	Dev   DevCmd   `cmd:"" help:"Watch for changes, rebuild, and serve the output directory."`
}

// AfterApply runs after flag parsing; sets up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
