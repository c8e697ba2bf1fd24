package digestoutbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/comunidad/internal/domain/digest"
)

func TestMemoryOutboxReplace(t *testing.T) {
	outbox := NewMemoryOutbox()

	_, ok, err := outbox.Latest(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, outbox.Replace(context.Background(), digest.Batch{Day: "2025-03-02", Digests: []digest.Digest{{ID: "a"}, {ID: "b"}}}))
	require.NoError(t, outbox.Replace(context.Background(), digest.Batch{Day: "2025-03-03", Digests: []digest.Digest{{ID: "c"}}}))

	batch, ok, err := outbox.Latest(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "2025-03-03", batch.Day)
	require.Len(t, batch.Digests, 1)
}

func TestValkeyOutboxKeys(t *testing.T) {
	outbox := NewValkeyOutbox(nil, "")
	require.Equal(t, "comunidad:digests:pending", outbox.pendingKey())
	require.Equal(t, "comunidad:digests:latest", outbox.latestKey())
}
