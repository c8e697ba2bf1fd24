package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/comunidad/internal/domain/digest"
	"github.com/yanqian/comunidad/internal/infra/config"
)

// App encapsulates the HTTP server lifecycle and the digest schedule.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	digests digest.Service
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, digests digest.Service) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, digests: digests}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	loopCtx, stopLoop := context.WithCancel(ctx)
	defer stopLoop()
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		a.runDigestLoop(loopCtx)
	}()

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		runErr = a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}
	stopLoop()
	<-loopDone
	return runErr
}

// runDigestLoop composes digests on start and then every interval until ctx
// is cancelled. Each run replaces the previously published batch.
func (a *App) runDigestLoop(ctx context.Context) {
	if !a.cfg.Digest.Enabled || a.digests == nil {
		a.logger.Info("digest schedule disabled")
		return
	}
	interval := a.cfg.Digest.Interval
	if interval <= 0 {
		interval = 2 * time.Hour
	}

	a.runDigests(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.runDigests(ctx)
		}
	}
}

func (a *App) runDigests(ctx context.Context) {
	batch, err := a.digests.Run(ctx)
	if err != nil {
		a.logger.Error("digest run failed", "error", err)
		return
	}
	a.logger.Info("digest run complete", "day", batch.Day, "count", len(batch.Digests))
}
