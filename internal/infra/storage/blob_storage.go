// Package storage keeps listing photos in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/service"
	"vitrine/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const photoCacheControl = "public, max-age=31536000, immutable"

// Params defines the parameters required for the photo store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// BlobStorage implements service.PhotoStorage on top of a blob.Bucket.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the bucket named by storage.bucketUrl (file://, mem://, gs:// or s3://).
func New(params Params) (service.PhotoStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl must be provided")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(params.Config.Storage.BucketURL))
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Photo bucket opened",
		slog.String("bucket", redactBucketURL(params.Config.Storage.BucketURL)),
		slog.String("publicBaseUrl", params.Config.Storage.PublicBaseURL))

	return NewBlobStorage(bucket, params.Config.Storage.PublicBaseURL), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *BlobStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: photoCacheControl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", key)
	}

	return key, nil
}

func (s *BlobStorage) PublicURL(path string) string {
	if s.publicBaseURL == "" {
		return "/" + strings.TrimLeft(path, "/")
	}

	return s.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	u.RawQuery = ""

	return u.String()
}
