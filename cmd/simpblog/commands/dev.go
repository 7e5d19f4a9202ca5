package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/alexk49/simpblog/internal/config"
	"github.com/alexk49/simpblog/internal/watch"
)

// DevCmd implements the 'dev' command: watch, rebuild, serve.
type DevCmd struct {
	Port int `short:"p" default:"8000" help:"Dev server port."`
}

func (d *DevCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.SiteDir)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Printf("Serving %s on http://localhost:%d\n", cfg.OutputDir(), d.Port)
	return watch.Run(ctx, cfg, d.Port)
}
