package feeds

import "context"

// Fetcher downloads a published spreadsheet as CSV text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// SnapshotStore keeps the last good payload of each feed so the stale-read
// fallback survives restarts and is shared between replicas.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, feed string) ([]byte, bool, error)
	SaveSnapshot(ctx context.Context, feed string, payload []byte) error
}

type noopStore struct{}

func (noopStore) LoadSnapshot(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopStore) SaveSnapshot(context.Context, string, []byte) error { return nil }
