package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
// It is os.ErrNotExist so errors.Is works across local and remote stores.
var ErrNotFound = os.ErrNotExist

var (
	// ErrInvalidName is returned for names that would escape the store root.
	ErrInvalidName = errors.New("blobstore: invalid blob name")
	// ErrInvalidOffset is returned by ReadAt for negative offsets.
	ErrInvalidOffset = errors.New("blobstore: negative offset")
)

// BlobStore reads and writes named blobs.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create starts a streaming write. The blob appears on Close.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a whole blob in one call.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names that start with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored blob.
type Blob interface {
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	Size() int64
	Close() error
}

// WritableBlob is a blob being written.
type WritableBlob interface {
	io.WriteCloser
	// Sync flushes buffered data where the backend supports it.
	Sync() error
}

// ReadAll reads the whole blob.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	buf := make([]byte, b.Size())
	if len(buf) == 0 {
		return buf, nil
	}
	n, err := b.ReadAt(ctx, buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && n == len(buf)) {
		return nil, err
	}
	if n != len(buf) {
		return nil, io.ErrUnexpectedEOF
	}
	return buf, nil
}

// Get opens name and reads it fully.
func Get(ctx context.Context, s BlobStore, name string) ([]byte, error) {
	b, err := s.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = b.Close() }()
	return ReadAll(ctx, b)
}
