package output

import (
	"context"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hupe1980/grapevec/blobstore"
	"github.com/hupe1980/grapevec/internal/fs"
)

// Sink opens destinations for partition output.
type Sink interface {
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}

// FileSink writes output files to a filesystem.
type FileSink struct {
	fs fs.FileSystem
}

// NewFileSink returns a sink on fsys, or the local filesystem if fsys is nil.
func NewFileSink(fsys fs.FileSystem) *FileSink {
	if fsys == nil {
		fsys = fs.Default
	}
	return &FileSink{fs: fsys}
}

// Create truncates or creates the file at name, creating parent directories.
func (s *FileSink) Create(_ context.Context, name string) (io.WriteCloser, error) {
	if err := s.fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, err
	}
	return fs.Create(s.fs, name)
}

// BlobSink uploads output files to a blob store under <runID>/<basename>.
type BlobSink struct {
	store blobstore.BlobStore
	runID string
}

// BlobSinkOption configures a BlobSink.
type BlobSinkOption func(*BlobSink)

// WithRunID sets the key prefix. By default a random UUID is used so
// repeated runs never overwrite each other.
func WithRunID(id string) BlobSinkOption {
	return func(s *BlobSink) {
		s.runID = id
	}
}

// NewBlobSink returns a sink writing to store.
func NewBlobSink(store blobstore.BlobStore, opts ...BlobSinkOption) *BlobSink {
	s := &BlobSink{store: store}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	return s
}

// RunID returns the key prefix of this sink.
func (s *BlobSink) RunID() string {
	return s.runID
}

// Key maps an output path to its blob name.
func (s *BlobSink) Key(name string) string {
	return path.Join(s.runID, filepath.Base(name))
}

// Create starts a streaming upload. The blob appears when the writer is closed.
func (s *BlobSink) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	return s.store.Create(ctx, s.Key(name))
}
