package digestoutbox

import (
	"context"
	"sync"

	"github.com/yanqian/comunidad/internal/domain/digest"
)

// MemoryOutbox keeps the latest batch in process memory.
type MemoryOutbox struct {
	mu     sync.RWMutex
	latest digest.Batch
	has    bool
}

// NewMemoryOutbox constructs an empty outbox.
func NewMemoryOutbox() *MemoryOutbox {
	return &MemoryOutbox{}
}

// Replace implements digest.Outbox.
func (o *MemoryOutbox) Replace(_ context.Context, batch digest.Batch) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.latest = batch
	o.has = true
	return nil
}

// Latest implements digest.Outbox.
func (o *MemoryOutbox) Latest(_ context.Context) (digest.Batch, bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.latest, o.has, nil
}

var _ digest.Outbox = (*MemoryOutbox)(nil)
