package scripturesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/comunidad/internal/domain/scripture"
)

// ErrObjectNotFound is returned when the bucket has no copy of the document.
var ErrObjectNotFound = errors.New("bible object not found")

// ObjectConfig points at the bucket holding the document.
type ObjectConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Key       string
}

// ObjectSource reads the document from S3-compatible storage.
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
	logger *slog.Logger
}

// NewObjectSource constructs the storage adapter.
func NewObjectSource(cfg ObjectConfig, logger *slog.Logger) (*ObjectSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       strings.HasPrefix(strings.ToLower(strings.TrimSpace(cfg.Endpoint)), "https"),
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = "bibles/es_rvr.json"
	}
	return &ObjectSource{
		client: client,
		bucket: cfg.Bucket,
		key:    key,
		logger: logger.With("component", "scripturesource.object"),
	}, nil
}

// Load implements scripture.DocumentSource.
func (s *ObjectSource) Load(ctx context.Context) (scripture.Bible, error) {
	raw, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// Get returns the raw stored document.
func (s *ObjectSource) Get(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translate(err)
	}
	defer obj.Close()
	if _, err := obj.Stat(); err != nil {
		return nil, s.translate(err)
	}
	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read bible object: %w", err)
	}
	return raw, nil
}

// Put stores raw as the document, creating the bucket if needed.
func (s *ObjectSource) Put(ctx context.Context, raw []byte) error {
	if err := s.ensureBucket(ctx); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(raw), int64(len(raw)), minio.PutObjectOptions{
		ContentType:      "application/json",
		DisableMultipart: len(raw) < 5*1024*1024,
	})
	if err != nil {
		return fmt.Errorf("put bible object: %w", err)
	}
	s.logger.Info("bible document mirrored", "bucket", s.bucket, "key", s.key, "bytes", len(raw))
	return nil
}

func (s *ObjectSource) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err == nil && exists {
		return nil
	}
	err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return err
	}
	return nil
}

func (s *ObjectSource) translate(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%w: %s/%s", ErrObjectNotFound, s.bucket, s.key)
	}
	return fmt.Errorf("get bible object: %w", err)
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

var _ scripture.DocumentSource = (*ObjectSource)(nil)
