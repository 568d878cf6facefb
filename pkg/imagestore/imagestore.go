// Package imagestore persists uploaded listing images to a blob bucket and
// resolves them to public URLs.
package imagestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"

	"kikao-backend/pkg/utils"
)

type BucketStore struct {
	bucket    *blob.Bucket
	publicURL string
	log       *zap.Logger
}

func New(ctx context.Context, cfg utils.StorageConfig, log *zap.Logger) (*BucketStore, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", cfg.BucketURL, err)
	}

	return &BucketStore{
		bucket:    bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		log:       log.With(zap.String("store", "images")),
	}, nil
}

// Upload writes one image to the bucket under a fresh key and returns its
// public URL. Callers upload sequentially before the aggregate insert.
func (s *BucketStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	key := uuid.New().String() + path.Ext(filename)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("open writer for %s: %w", key, err)
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("write image %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("commit image %s: %w", key, err)
	}

	url := s.publicURL + "/" + key

	s.log.Info("Image uploaded",
		zap.String("key", key),
		zap.String("filename", filename),
	)

	return url, nil
}

func (s *BucketStore) Close() error {
	return s.bucket.Close()
}
