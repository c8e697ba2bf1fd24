package feeds

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	mu    sync.Mutex
	body  string
	err   error
	calls int
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.body, nil
}

func (f *stubFetcher) set(body string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body, f.err = body, err
}

type memoryStore struct {
	data map[string][]byte
	err  error
}

func (m *memoryStore) LoadSnapshot(ctx context.Context, feed string) ([]byte, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	payload, ok := m.data[feed]
	return payload, ok, nil
}

func (m *memoryStore) SaveSnapshot(ctx context.Context, feed string, payload []byte) error {
	if m.err != nil {
		return m.err
	}
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[feed] = payload
	return nil
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const activitiesCSV = "Titulo,Fecha,Hora,Lugar\n" +
	"\"Smith, John\",10-05-2025,10:00,Hall\n" +
	"Retiro,01-05-2025,09:00,Casa\n"

func newActivitiesFeed(fetcher Fetcher, store SnapshotStore, clock *fakeClock) *Feed[Activity] {
	feed := newFeed(FeedActivities, SourceConfig{URL: "https://sheets.example/a.csv", TTL: 5 * time.Minute}, fetcher, store, parseActivities, testLogger())
	feed.now = clock.now
	return feed
}

func TestFeedCachesWithinTTL(t *testing.T) {
	fetcher := &stubFetcher{body: activitiesCSV}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed := newActivitiesFeed(fetcher, nil, clock)

	first := feed.Get(context.Background(), false)
	require.Len(t, first, 2)
	require.Equal(t, "Retiro", first[0].Title)
	require.Equal(t, "Smith, John", first[1].Title)

	clock.advance(4 * time.Minute)
	fetcher.set("Titulo,Fecha,Hora,Lugar\nOtra,02-05-2025,08:00,Sala\n", nil)
	require.Equal(t, first, feed.Get(context.Background(), false))
	require.Equal(t, 1, fetcher.calls)

	clock.advance(2 * time.Minute)
	expired := feed.Get(context.Background(), false)
	require.Len(t, expired, 1)
	require.Equal(t, "Otra", expired[0].Title)
	require.Equal(t, 2, fetcher.calls)
}

func TestFeedForceRefreshBypassesTTL(t *testing.T) {
	fetcher := &stubFetcher{body: activitiesCSV}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed := newActivitiesFeed(fetcher, nil, clock)

	feed.Get(context.Background(), false)
	feed.Get(context.Background(), true)
	require.Equal(t, 2, fetcher.calls)
}

func TestFeedFailureReturnsPreviousData(t *testing.T) {
	fetcher := &stubFetcher{body: activitiesCSV}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed := newActivitiesFeed(fetcher, nil, clock)

	prior := feed.Get(context.Background(), false)
	require.Len(t, prior, 2)

	fetcher.set("", errors.New("status 500"))
	require.Equal(t, prior, feed.Get(context.Background(), true))

	clock.advance(time.Hour)
	require.Equal(t, prior, feed.Get(context.Background(), false))
}

func TestFeedFailureWithoutPriorDataIsEmpty(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("dial tcp: timeout")}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed := newActivitiesFeed(fetcher, nil, clock)

	got := feed.Get(context.Background(), false)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestFeedHeaderOnlyLeavesCacheUntouched(t *testing.T) {
	fetcher := &stubFetcher{body: activitiesCSV}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed := newActivitiesFeed(fetcher, nil, clock)
	feed.Get(context.Background(), false)

	fetcher.set("Titulo,Fecha,Hora,Lugar\n\n", nil)
	require.Empty(t, feed.Get(context.Background(), true))

	items, _ := feed.Snapshot()
	require.Len(t, items, 2)
}

func TestFeedSeedsFromSnapshotStore(t *testing.T) {
	store := &memoryStore{}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}

	writer := newActivitiesFeed(&stubFetcher{body: activitiesCSV}, store, clock)
	require.Len(t, writer.Get(context.Background(), false), 2)
	require.Contains(t, store.data, FeedActivities)

	// a fresh process whose download fails still serves the persisted rows
	clock.advance(time.Hour)
	failing := &stubFetcher{err: errors.New("offline")}
	reader := newActivitiesFeed(failing, store, clock)
	got := reader.Get(context.Background(), false)
	require.Len(t, got, 2)
	require.Equal(t, "Retiro", got[0].Title)
	require.Equal(t, 1, failing.calls)
}

func TestFeedFreshSnapshotSkipsDownload(t *testing.T) {
	store := &memoryStore{}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	newActivitiesFeed(&stubFetcher{body: activitiesCSV}, store, clock).Get(context.Background(), false)

	clock.advance(time.Minute)
	fetcher := &stubFetcher{body: activitiesCSV}
	require.Len(t, newActivitiesFeed(fetcher, store, clock).Get(context.Background(), false), 2)
	require.Zero(t, fetcher.calls)
}

func TestFeedStoreErrorsAreIgnored(t *testing.T) {
	store := &memoryStore{err: errors.New("valkey down")}
	clock := &fakeClock{t: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}
	feed := newActivitiesFeed(&stubFetcher{body: activitiesCSV}, store, clock)

	require.Len(t, feed.Get(context.Background(), false), 2)
}
