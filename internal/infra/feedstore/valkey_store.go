package feedstore

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/comunidad/internal/domain/feeds"
)

// ValkeyStore persists feed snapshots in a Valkey-compatible database. Keys
// carry no expiry; a snapshot is only ever replaced by a newer good one.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "comunidad"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// LoadSnapshot implements feeds.SnapshotStore.
func (s *ValkeyStore) LoadSnapshot(ctx context.Context, feed string) ([]byte, bool, error) {
	cmd := s.client.B().Get().Key(s.snapshotKey(feed)).Build()
	payload, err := s.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// SaveSnapshot implements feeds.SnapshotStore.
func (s *ValkeyStore) SaveSnapshot(ctx context.Context, feed string, payload []byte) error {
	cmd := s.client.B().Set().Key(s.snapshotKey(feed)).Value(valkey.BinaryString(payload)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) snapshotKey(feed string) string {
	return fmt.Sprintf("%s:feeds:%s", s.prefix, feed)
}

var _ feeds.SnapshotStore = (*ValkeyStore)(nil)
