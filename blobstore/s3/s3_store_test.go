package s3

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/grapevec/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStore_Open(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", WithPrefix("prefix"))

	t.Run("NotFound", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
			return *in.Bucket == "test-bucket" && *in.Key == "prefix/foo"
		})).Return(nil, &types.NotFound{}).Once()

		_, err := store.Open(context.Background(), "foo")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
			return *in.Key == "prefix/bar"
		})).Return(&s3.HeadObjectOutput{ContentLength: aws.Int64(100)}, nil).Once()

		blob, err := store.Open(context.Background(), "bar")
		require.NoError(t, err)
		assert.Equal(t, int64(100), blob.Size())
		assert.NoError(t, blob.Close())
	})

	t.Run("OtherError", func(t *testing.T) {
		boom := errors.New("access denied")
		mockClient.On("HeadObject", mock.Anything, mock.Anything).Return(nil, boom).Once()

		_, err := store.Open(context.Background(), "baz")
		assert.ErrorIs(t, err, boom)
	})

	mockClient.AssertExpectations(t)
}

func TestStore_Put(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "b", WithPrefix("/runs/"))

	mockClient.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, _ := io.ReadAll(in.Body)
		// CRC32C("123456789") = 0xe3069283
		return *in.Key == "runs/frag_0" &&
			string(body) == "123456789" &&
			aws.ToInt64(in.ContentLength) == 9 &&
			aws.ToString(in.ChecksumCRC32C) == "4waSgw=="
	})).Return(&s3.PutObjectOutput{}, nil).Once()

	require.NoError(t, store.Put(context.Background(), "frag_0", []byte("123456789")))
	mockClient.AssertExpectations(t)
}

func TestStore_Delete(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", WithPrefix("prefix"))

	mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return *in.Key == "prefix/del"
	})).Return(&s3.DeleteObjectOutput{}, nil).Once()
	mockClient.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return *in.Key == "prefix/gone"
	})).Return(nil, &types.NoSuchKey{}).Once()

	assert.NoError(t, store.Delete(context.Background(), "del"))
	assert.NoError(t, store.Delete(context.Background(), "gone"))
	mockClient.AssertExpectations(t)
}

func TestStore_List_Pagination(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", WithPrefix("prefix/"))

	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return *in.Prefix == "prefix/" && in.ContinuationToken == nil
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("token"),
		Contents:              []types.Object{{Key: aws.String("prefix/run/2")}},
	}, nil).Once()

	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectsV2Input) bool {
		return in.ContinuationToken != nil && *in.ContinuationToken == "token"
	})).Return(&s3.ListObjectsV2Output{
		IsTruncated: aws.Bool(false),
		Contents:    []types.Object{{Key: aws.String("prefix/run/1")}},
	}, nil).Once()

	keys, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"run/1", "run/2"}, keys)
	mockClient.AssertExpectations(t)
}

func TestBlob_ReadAt(t *testing.T) {
	mockClient := new(MockS3Client)
	blob := &s3Blob{client: mockClient, bucket: "b", key: "k", size: 10}
	ctx := context.Background()

	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Range == "bytes=0-4"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("hello"))}, nil).Once()

	buf := make([]byte, 5)
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf))

	// A read past the end is clamped and reports EOF.
	mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
		return *in.Range == "bytes=7-9"
	})).Return(&s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader("rld"))}, nil).Once()

	buf = make([]byte, 8)
	n, err = blob.ReadAt(ctx, buf, 7)
	assert.Equal(t, 3, n)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "rld", string(buf[:n]))

	n, err = blob.ReadAt(ctx, buf, 10)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	_, err = blob.ReadAt(ctx, buf, -1)
	assert.ErrorIs(t, err, blobstore.ErrInvalidOffset)

	mockClient.AssertExpectations(t)
}

func TestStore_Create(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", WithPrefix("prefix"))

	var uploaded string
	mockClient.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return *in.Bucket == "test-bucket" && *in.Key == "prefix/new"
	})).Run(func(args mock.Arguments) {
		in := args.Get(1).(*s3.PutObjectInput)
		body, _ := io.ReadAll(in.Body)
		uploaded = string(body)
	}).Return(&s3.PutObjectOutput{}, nil).Once()

	wb, err := store.Create(context.Background(), "new")
	require.NoError(t, err)

	_, err = wb.Write([]byte("0\t10\t0.1\n"))
	require.NoError(t, err)
	require.NoError(t, wb.Sync())
	require.NoError(t, wb.Close())
	require.NoError(t, wb.Close())

	assert.Equal(t, "0\t10\t0.1\n", uploaded)
	mockClient.AssertExpectations(t)
}

func TestStore_CreateUploadError(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "b", WithUploadConfig(UploadConfig{EnableChecksum: false}))

	boom := errors.New("slow down")
	mockClient.On("PutObject", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		in := args.Get(1).(*s3.PutObjectInput)
		_, _ = io.ReadAll(in.Body)
	}).Return(nil, boom)

	wb, err := store.Create(context.Background(), "x")
	require.NoError(t, err)
	_, _ = wb.Write([]byte("data"))
	assert.ErrorContains(t, wb.Close(), boom.Error())
}

func TestChecksumCRC32C(t *testing.T) {
	assert.Equal(t, "AAAAAA==", checksumCRC32C(nil))
	assert.Equal(t, "4waSgw==", checksumCRC32C([]byte("123456789")))
}

// TestIntegration_S3Store runs against a real bucket when S3_BUCKET is set.
func TestIntegration_S3Store(t *testing.T) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		t.Skip("S3_BUCKET not set")
	}

	ctx := context.Background()
	store, err := New(ctx, bucket, WithPrefix(fmt.Sprintf("grapevec-test-%d/", time.Now().UnixNano())))
	require.NoError(t, err)

	data := make([]byte, 1<<20)
	_, _ = rand.Read(data)

	w, err := store.Create(ctx, "blob")
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got, err := blobstore.Get(ctx, store, "blob")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"blob"}, names)

	require.NoError(t, store.Delete(ctx, "blob"))
	_, err = store.Open(ctx, "blob")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
