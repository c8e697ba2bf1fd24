package digestoutbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/comunidad/internal/domain/digest"
)

// ValkeyOutbox publishes digests for an external push gateway. Pending
// digests live in a list the gateway pops from; the whole batch is also kept
// under a "latest" key for the API.
type ValkeyOutbox struct {
	client valkey.Client
	prefix string
}

// NewValkeyOutbox constructs a Valkey-backed outbox.
func NewValkeyOutbox(client valkey.Client, prefix string) *ValkeyOutbox {
	if prefix == "" {
		prefix = "comunidad"
	}
	return &ValkeyOutbox{client: client, prefix: prefix}
}

// Replace drops digests still pending from earlier runs and queues batch.
func (o *ValkeyOutbox) Replace(ctx context.Context, batch digest.Batch) error {
	encoded, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	cmds := valkey.Commands{
		o.client.B().Multi().Build(),
		o.client.B().Del().Key(o.pendingKey()).Build(),
	}
	for _, d := range batch.Digests {
		payload, err := json.Marshal(d)
		if err != nil {
			return err
		}
		cmds = append(cmds, o.client.B().Lpush().Key(o.pendingKey()).Element(string(payload)).Build())
	}
	cmds = append(cmds,
		o.client.B().Set().Key(o.latestKey()).Value(string(encoded)).Build(),
		o.client.B().Exec().Build(),
	)
	for _, resp := range o.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			return err
		}
	}
	return nil
}

// Latest implements digest.Outbox.
func (o *ValkeyOutbox) Latest(ctx context.Context) (digest.Batch, bool, error) {
	payload, err := o.client.Do(ctx, o.client.B().Get().Key(o.latestKey()).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return digest.Batch{}, false, nil
		}
		return digest.Batch{}, false, err
	}
	var batch digest.Batch
	if err := json.Unmarshal([]byte(payload), &batch); err != nil {
		return digest.Batch{}, false, err
	}
	return batch, true, nil
}

func (o *ValkeyOutbox) pendingKey() string {
	return fmt.Sprintf("%s:digests:pending", o.prefix)
}

func (o *ValkeyOutbox) latestKey() string {
	return fmt.Sprintf("%s:digests:latest", o.prefix)
}

var _ digest.Outbox = (*ValkeyOutbox)(nil)
