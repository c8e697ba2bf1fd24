package scripturesource

import (
	"context"
	"log/slog"

	"github.com/yanqian/comunidad/internal/domain/scripture"
)

// BlobStore is the bucket side of a MirroredSource.
type BlobStore interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, raw []byte) error
}

// Downloader is the origin side of a MirroredSource.
type Downloader interface {
	Download(ctx context.Context) ([]byte, error)
}

// MirroredSource prefers the bucket copy and falls back to the origin,
// writing what it downloads back to the bucket.
type MirroredSource struct {
	bucket BlobStore
	origin Downloader
	logger *slog.Logger
}

// NewMirroredSource combines a bucket and an origin.
func NewMirroredSource(bucket BlobStore, origin Downloader, logger *slog.Logger) *MirroredSource {
	return &MirroredSource{
		bucket: bucket,
		origin: origin,
		logger: logger.With("component", "scripturesource.mirrored"),
	}
}

// Load implements scripture.DocumentSource.
func (s *MirroredSource) Load(ctx context.Context) (scripture.Bible, error) {
	raw, err := s.bucket.Get(ctx)
	if err == nil {
		bible, decodeErr := Decode(raw)
		if decodeErr == nil {
			return bible, nil
		}
		s.logger.Warn("bucket copy unreadable, downloading origin", "error", decodeErr)
	} else {
		s.logger.Info("bucket copy unavailable, downloading origin", "error", err)
	}

	raw, err = s.origin.Download(ctx)
	if err != nil {
		return nil, err
	}
	bible, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if err := s.bucket.Put(ctx, raw); err != nil {
		s.logger.Warn("failed to mirror bible document", "error", err)
	}
	return bible, nil
}

var _ scripture.DocumentSource = (*MirroredSource)(nil)
