package feedstore

import (
	"context"
	"sync"

	"github.com/yanqian/comunidad/internal/domain/feeds"
)

// MemoryStore keeps feed snapshots in process memory for tests/dev.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snapshots: make(map[string][]byte)}
}

// LoadSnapshot implements feeds.SnapshotStore.
func (s *MemoryStore) LoadSnapshot(_ context.Context, feed string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.snapshots[feed]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

// SaveSnapshot implements feeds.SnapshotStore.
func (s *MemoryStore) SaveSnapshot(_ context.Context, feed string, payload []byte) error {
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.mu.Lock()
	s.snapshots[feed] = cp
	s.mu.Unlock()
	return nil
}

var _ feeds.SnapshotStore = (*MemoryStore)(nil)
