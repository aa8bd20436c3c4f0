package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/hupe1980/grapevec/internal/fs"
	"github.com/hupe1980/grapevec/internal/mmap"
)

// LocalStore stores blobs as files under a root directory.
// Writes go to a temporary file that is renamed into place on Close.
type LocalStore struct {
	root string
	fs   fs.FileSystem
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithFileSystem replaces the filesystem used for writes, listing and deletes.
// Reads always memory map the real file.
func WithFileSystem(fsys fs.FileSystem) LocalOption {
	return func(s *LocalStore) {
		s.fs = fsys
	}
}

// NewLocalStore creates a LocalStore rooted at root.
func NewLocalStore(root string, opts ...LocalOption) *LocalStore {
	s := &LocalStore{root: root, fs: fs.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the store directory.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(name string) (string, error) {
	if name == "" || !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.root, filepath.FromSlash(name)), nil
}

func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Open(p)
	if err != nil {
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)
	return &localBlob{m: m}, nil
}

func (s *LocalStore) Create(_ context.Context, name string) (WritableBlob, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	f, err := s.fs.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &localWritableBlob{fs: s.fs, f: f, target: p}, nil
}

func (s *LocalStore) Put(_ context.Context, name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return fs.WriteAtomic(s.fs, p, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func (s *LocalStore) Delete(_ context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) List(_ context.Context, prefix string) ([]string, error) {
	var names []string
	if err := s.walk("", func(name string) {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}); err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *LocalStore) walk(dir string, visit func(name string)) error {
	entries, err := s.fs.ReadDir(filepath.Join(s.root, filepath.FromSlash(dir)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && dir == "" {
			return nil
		}
		return err
	}
	for _, e := range entries {
		// In-flight writes are hidden.
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		name := path.Join(dir, e.Name())
		if e.IsDir() {
			if err := s.walk(name, visit); err != nil {
				return err
			}
			continue
		}
		visit(name)
	}
	return nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if off < 0 {
		return 0, ErrInvalidOffset
	}
	return b.m.ReadAt(p, off)
}

func (b *localBlob) Size() int64 {
	return int64(b.m.Size())
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

// Bytes returns the mapped contents without copying. The slice is valid
// until Close.
func (b *localBlob) Bytes() []byte {
	return b.m.Bytes()
}

type localWritableBlob struct {
	fs     fs.FileSystem
	f      fs.File
	target string
	closed atomic.Bool
}

func (w *localWritableBlob) Write(p []byte) (int, error) {
	if w.closed.Load() {
		return 0, os.ErrClosed
	}
	return w.f.Write(p)
}

func (w *localWritableBlob) Sync() error {
	return w.f.Sync()
}

func (w *localWritableBlob) Close() (err error) {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	tmp := w.f.Name()
	defer func() {
		if err != nil {
			_ = w.fs.Remove(tmp)
		}
	}()

	if err := w.f.Sync(); err != nil {
		_ = w.f.Close()
		return err
	}
	if err := w.f.Close(); err != nil {
		return err
	}
	return w.fs.Rename(tmp, w.target)
}
