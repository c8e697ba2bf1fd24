package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/internal/domain/digest"
	"github.com/yanqian/comunidad/internal/infra/config"
)

func TestRunDigestLoopRunsOnStartAndOnTick(t *testing.T) {
	digests := &countingDigests{}
	cfg := &config.Config{Digest: config.DigestConfig{Enabled: true, Interval: 10 * time.Millisecond}}
	app := NewApp(cfg, newTestLogger(), &http.Server{}, digests)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		app.runDigestLoop(ctx)
	}()

	require.Eventually(t, func() bool { return digests.runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRunDigestLoopDisabled(t *testing.T) {
	digests := &countingDigests{}
	cfg := &config.Config{Digest: config.DigestConfig{Enabled: false, Interval: time.Millisecond}}
	app := NewApp(cfg, newTestLogger(), &http.Server{}, digests)

	app.runDigestLoop(context.Background())
	require.Zero(t, digests.runs.Load())
}

func TestRunShutsDownOnCancel(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: "127.0.0.1:0"}}
	server := &http.Server{Addr: cfg.HTTP.Address, Handler: http.NewServeMux()}
	app := NewApp(cfg, newTestLogger(), server, &countingDigests{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

type countingDigests struct {
	runs atomic.Int32
}

func (c *countingDigests) Compose(ctx context.Context) digest.Batch {
	return digest.Batch{}
}

func (c *countingDigests) Run(ctx context.Context) (digest.Batch, error) {
	c.runs.Add(1)
	return digest.Batch{Day: "2025-03-03"}, nil
}

func (c *countingDigests) Latest(ctx context.Context) (digest.Batch, error) {
	return digest.Batch{}, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
