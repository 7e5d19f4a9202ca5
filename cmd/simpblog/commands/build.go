package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alexk49/simpblog/internal/config"
	serrors "github.com/alexk49/simpblog/internal/errors"
	"github.com/alexk49/simpblog/internal/site"
)

// BuildCmd implements the one-shot 'build' command.
type BuildCmd struct {
	Force bool `short:"f" help:"Rebuild every output regardless of timestamps."`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.SiteDir)
	if err != nil {
		return err
	}

	result, err := site.Build(context.Background(), cfg, site.Options{Force: b.Force})
	if err != nil {
		slog.Error("build failed",
			slog.String("kind", string(serrors.GetKind(err))),
			slog.Any("error", err))
		return err
	}

	fmt.Printf("Site built: %d written, %d skipped, %d static files (%s)\n",
		len(result.Written), len(result.Skipped), result.Static, result.Duration)
	return nil
}
