package minio

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/hupe1980/grapevec/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_KeyMapping(t *testing.T) {
	s := NewStore(nil, "bucket", "/results/pagerank/")

	assert.Equal(t, "results/pagerank/run/frag_0", s.key("run/frag_0"))
	assert.Equal(t, "run/frag_0", s.name("results/pagerank/run/frag_0"))

	bare := NewStore(nil, "bucket", "")
	assert.Equal(t, "frag_0", bare.key("frag_0"))
	assert.Equal(t, "frag_0", bare.name("frag_0"))
}

// TestStore_Integration needs a MinIO server; set MINIO_ENDPOINT (and
// optionally MINIO_ACCESS_KEY / MINIO_SECRET_KEY) to run it.
func TestStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	accessKey := envOr("MINIO_ACCESS_KEY", "minioadmin")
	secretKey := envOr("MINIO_SECRET_KEY", "minioadmin")
	bucket := "grapevec-test"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	require.NoError(t, err)

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, fmt.Sprintf("test-%d/", time.Now().UnixNano()))

	data := []byte("0\t10\t0.1\n")
	require.NoError(t, store.Put(ctx, "frag_0", data))

	got, err := blobstore.Get(ctx, store, "frag_0")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	w, err := store.Create(ctx, "frag_1")
	require.NoError(t, err)
	_, err = w.Write([]byte("streamed"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"frag_0", "frag_1"}, names)

	require.NoError(t, store.Delete(ctx, "frag_0"))
	require.NoError(t, store.Delete(ctx, "frag_1"))

	_, err = store.Open(ctx, "frag_0")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
