package s3

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/grapevec/internal/hash"
)

// UploadConfig tunes streaming uploads.
type UploadConfig struct {
	// PartSize is the multipart part size. Default 8 MiB.
	PartSize int64
	// Concurrency is the number of parts uploaded in parallel. Default 5.
	Concurrency int
	// EnableChecksum asks S3 to verify CRC32C checksums per part. Default true.
	EnableChecksum bool
	// LeavePartsOnError keeps uploaded parts after a failure instead of aborting.
	LeavePartsOnError bool
}

// DefaultUploadConfig returns the default upload settings.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		PartSize:       8 * 1024 * 1024,
		Concurrency:    5,
		EnableChecksum: true,
	}
}

func newUploader(client Client, cfg UploadConfig) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		if cfg.PartSize > 0 {
			u.PartSize = cfg.PartSize
		}
		if cfg.Concurrency > 0 {
			u.Concurrency = cfg.Concurrency
		}
		u.LeavePartsOnError = cfg.LeavePartsOnError
	})
}

// checksumCRC32C encodes the CRC32C of data the way S3 expects it:
// base64 of the big-endian sum.
func checksumCRC32C(data []byte) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], hash.CRC32C(data))
	return base64.StdEncoding.EncodeToString(b[:])
}

// streamingWritableBlob pipes writes into a background multipart upload.
type streamingWritableBlob struct {
	pw     *io.PipeWriter
	cancel context.CancelFunc
	done   chan error

	once     sync.Once
	closeErr error
}

func newStreamingWritableBlob(ctx context.Context, uploader *manager.Uploader, bucket, key string, checksum bool) *streamingWritableBlob {
	ctx, cancel := context.WithCancel(ctx)
	pr, pw := io.Pipe()

	b := &streamingWritableBlob{
		pw:     pw,
		cancel: cancel,
		done:   make(chan error, 1),
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   pr,
	}
	if checksum {
		input.ChecksumAlgorithm = types.ChecksumAlgorithmCrc32c
	}

	go func() {
		_, err := uploader.Upload(ctx, input)
		_ = pr.CloseWithError(err)
		b.done <- err
	}()

	return b
}

func (b *streamingWritableBlob) Write(p []byte) (int, error) {
	return b.pw.Write(p)
}

// Close finishes the upload and waits for S3 to acknowledge it.
func (b *streamingWritableBlob) Close() error {
	b.once.Do(func() {
		defer b.cancel()
		if err := b.pw.Close(); err != nil {
			b.closeErr = err
			return
		}
		b.closeErr = <-b.done
	})
	return b.closeErr
}

// Abort cancels the upload. The uploader aborts any multipart upload it
// started, so no object is created.
func (b *streamingWritableBlob) Abort() error {
	b.once.Do(func() {
		b.cancel()
		_ = b.pw.CloseWithError(context.Canceled)
		<-b.done
		b.closeErr = context.Canceled
	})
	return nil
}

// Sync is a no-op; data is committed on Close.
func (b *streamingWritableBlob) Sync() error { return nil }
