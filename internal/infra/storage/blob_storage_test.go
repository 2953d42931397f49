package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_Upload(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStorage(bucket, "https://cdn.example.com/photos/")

	path, err := store.Upload(ctx, "listings/u1/abc.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "listings/u1/abc.jpg", path)

	data, err := bucket.ReadAll(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	attrs, err := bucket.Attributes(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
	assert.Equal(t, photoCacheControl, attrs.CacheControl)

	assert.Equal(t, "https://cdn.example.com/photos/listings/u1/abc.jpg", store.PublicURL(path))
}

func TestBlobStorage_UploadAfterClose(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewBlobStorage(bucket, "")
	require.NoError(t, bucket.Close())

	_, err := store.Upload(context.Background(), "k", []byte("x"), "image/png")
	assert.Error(t, err)
	assert.Equal(t, "/k", store.PublicURL("k"))
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://photos", redactBucketURL("s3://photos?region=us-east-1&access_key=secret"))
	assert.Equal(t, "file:///tmp/vitrine-photos", redactBucketURL("file:///tmp/vitrine-photos"))
}
