package feeds

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/yanqian/comunidad/pkg/csvline"
	"github.com/yanqian/comunidad/pkg/metrics"
	"github.com/yanqian/comunidad/pkg/util"
)

// rowParser turns the data rows of a sheet into typed items. now is the
// moment of the download.
type rowParser[T any] func(rows []csvline.Row, now time.Time) []T

type snapshot[T any] struct {
	Items     []T       `json:"items"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// Feed caches one spreadsheet for a TTL. Reads never fail: a broken download
// yields the last good items, or an empty slice when there are none.
type Feed[T any] struct {
	name    string
	url     string
	ttl     time.Duration
	fetcher Fetcher
	store   SnapshotStore
	parse   rowParser[T]
	logger  *slog.Logger
	now     util.Clock

	mu        sync.Mutex
	items     []T
	fetchedAt time.Time
	populated bool
	seeded    bool
}

func newFeed[T any](name string, src SourceConfig, fetcher Fetcher, store SnapshotStore, parse rowParser[T], logger *slog.Logger) *Feed[T] {
	if store == nil {
		store = noopStore{}
	}
	return &Feed[T]{
		name:    name,
		url:     src.URL,
		ttl:     src.TTL,
		fetcher: fetcher,
		store:   store,
		parse:   parse,
		logger:  logger.With("component", "feeds."+name),
		now:     time.Now,
	}
}

// Get returns the cached items while fresh. force skips the freshness check
// but a failed download still falls back to the cache.
func (f *Feed[T]) Get(ctx context.Context, force bool) []T {
	f.seed(ctx)

	f.mu.Lock()
	if !force && f.populated && f.now().Sub(f.fetchedAt) < f.ttl {
		items := f.items
		f.mu.Unlock()
		metrics.ObserveFeed(f.name, metrics.OutcomeCached)
		return clone(items)
	}
	f.mu.Unlock()

	started := f.now()
	start := time.Now()
	body, err := f.fetcher.Fetch(ctx, f.url)
	metrics.ObserveFeedDownload(f.name, start)
	if err != nil {
		f.logger.Error("feed download failed", "error", err)
		return f.fallback()
	}

	rows, ok := csvline.Rows(body)
	if !ok {
		f.logger.Warn("feed has no data rows")
		metrics.ObserveFeed(f.name, metrics.OutcomeEmpty)
		return []T{}
	}

	items := f.parse(rows, started)
	if items == nil {
		items = []T{}
	}

	f.mu.Lock()
	f.items = items
	f.fetchedAt = started
	f.populated = true
	f.mu.Unlock()

	f.persist(ctx, items, started)
	metrics.ObserveFeed(f.name, metrics.OutcomeFresh)
	f.logger.Info("feed refreshed", "items", len(items), "rows", len(rows))
	return clone(items)
}

// Snapshot returns the cached items without downloading.
func (f *Feed[T]) Snapshot() ([]T, time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return clone(f.items), f.fetchedAt
}

func (f *Feed[T]) fallback() []T {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.populated {
		metrics.ObserveFeed(f.name, metrics.OutcomeEmpty)
		return []T{}
	}
	metrics.ObserveFeed(f.name, metrics.OutcomeStale)
	f.logger.Warn("serving stale feed", "items", len(f.items), "fetchedAt", f.fetchedAt)
	return clone(f.items)
}

// seed loads the persisted snapshot once, before the first download.
func (f *Feed[T]) seed(ctx context.Context) {
	f.mu.Lock()
	if f.seeded {
		f.mu.Unlock()
		return
	}
	f.seeded = true
	f.mu.Unlock()

	payload, ok, err := f.store.LoadSnapshot(ctx, f.name)
	if err != nil {
		f.logger.Warn("snapshot load failed", "error", err)
		return
	}
	if !ok {
		return
	}
	var snap snapshot[T]
	if err := json.Unmarshal(payload, &snap); err != nil {
		f.logger.Warn("snapshot decode failed", "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.populated {
		return
	}
	if snap.Items == nil {
		snap.Items = []T{}
	}
	f.items = snap.Items
	f.fetchedAt = snap.FetchedAt
	f.populated = true
	f.logger.Info("feed seeded from snapshot", "items", len(snap.Items), "fetchedAt", snap.FetchedAt)
}

func (f *Feed[T]) persist(ctx context.Context, items []T, fetchedAt time.Time) {
	payload, err := json.Marshal(snapshot[T]{Items: items, FetchedAt: fetchedAt})
	if err != nil {
		f.logger.Warn("snapshot encode failed", "error", err)
		return
	}
	if err := f.store.SaveSnapshot(ctx, f.name, payload); err != nil {
		f.logger.Warn("snapshot save failed", "error", err)
	}
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
