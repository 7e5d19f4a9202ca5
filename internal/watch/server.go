package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// newDevServer serves the generated output directory with the metrics
// endpoint mounted next to it. The server reads already-written files only;
// it is not coordinated with in-progress rebuilds, which is an accepted race
// in development mode.
func newDevServer(outputDir string, port int, metrics *Metrics) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(outputDir)))
	mux.Handle("/metrics", metrics.Handler())

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func startDevServer(srv *http.Server) {
	go func() {
		slog.Info("dev server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("dev server failed", slog.Any("error", err))
		}
	}()
}

func shutdownDevServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("dev server shutdown error", slog.Any("error", err))
	}
}
