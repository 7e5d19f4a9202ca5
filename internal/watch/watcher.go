// Package watch runs the development loop: it rebuilds the site on
// filesystem changes and serves the output directory.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexk49/simpblog/internal/config"
	"github.com/alexk49/simpblog/internal/site"
)

// DebounceWindow is how long the loop waits after the last change event
// before triggering a rebuild.
const DebounceWindow = 300 * time.Millisecond

// Run starts the watch/rebuild loop and the dev file server, blocking until
// ctx is cancelled. A failed rebuild is logged and the loop keeps watching.
func Run(ctx context.Context, cfg *config.Config, port int) error {
	metrics := NewMetrics()

	// Initial build; a failure is reported but does not stop the loop.
	runBuild(ctx, cfg, metrics)

	srv := newDevServer(cfg.OutputDir(), port, metrics)
	startDevServer(srv)
	defer shutdownDevServer(srv)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range []string{cfg.PagesDir(), cfg.PostsDir(), cfg.TemplatesDir(), cfg.StaticDir()} {
		if err := addDirsRecursive(watcher, dir); err != nil {
			return err
		}
	}

	deb := newDebouncer(DebounceWindow)
	defer deb.Stop()
	startRebuildWorker(ctx, cfg, metrics, deb.C)

	for {
		select {
		case <-ctx.Done():
			slog.Info("stopping watch loop")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, ev, deb)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", slog.Any("error", err))
		}
	}
}

// startRebuildWorker processes coalesced rebuild requests one at a time.
// Once a rebuild has started it runs to completion; a request arriving
// mid-rebuild queues exactly one follow-up.
func startRebuildWorker(ctx context.Context, cfg *config.Config, metrics *Metrics, rebuildReq <-chan struct{}) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-rebuildReq:
				if !ok {
					return
				}
				slog.Info("change detected, rebuilding site")
				runBuild(ctx, cfg, metrics)
			}
		}
	}()
}

func runBuild(ctx context.Context, cfg *config.Config, metrics *Metrics) {
	start := time.Now()
	result, err := site.Build(ctx, cfg, site.Options{})
	metrics.ObserveBuild(err, time.Since(start))

	if err != nil {
		slog.Error("rebuild failed", slog.Any("error", err))
		return
	}
	slog.Info("rebuild complete",
		slog.String("build.id", result.BuildID),
		slog.Int("written", len(result.Written)),
		slog.Int("skipped", len(result.Skipped)))
}

// handleEvent filters noise and arms the debouncer. Newly created
// directories are added to the watch set.
func handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, deb *debouncer) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("file change detected", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
	deb.Trigger()
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("watch add failed", slog.String("dir", path), slog.Any("error", err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for paths that must not trigger rebuilds:
// hidden files and editor temp/swap files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#")) {
		return true
	}
	if base == "Thumbs.db" {
		return true
	}

	return false
}
