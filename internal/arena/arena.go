package arena

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/grapevec/internal/conv"
	"github.com/hupe1980/grapevec/internal/mem"
	"github.com/hupe1980/grapevec/internal/mmap"
)

// MemoryAcquirer accounts for native memory held by arenas.
type MemoryAcquirer interface {
	AcquireMemory(ctx context.Context, amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrClosed is returned by Grow after Free.
	ErrClosed = errors.New("arena: closed")
	// ErrAllocationFailed wraps the backend error when a region cannot be obtained.
	ErrAllocationFailed = errors.New("arena: allocation failed")
)

// Backend selects where regions are allocated.
type Backend int

const (
	// BackendMmap allocates anonymous mappings outside the Go heap.
	BackendMmap Backend = iota
	// BackendHeap allocates aligned slices on the Go heap.
	BackendHeap
)

func (b Backend) String() string {
	switch b {
	case BackendMmap:
		return "mmap"
	case BackendHeap:
		return "heap"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Stats describes the arena's allocation history.
type Stats struct {
	Reallocations uint64 // Historical: regions obtained
	BytesReserved uint64 // Current: length of the live region
	BytesCopied   uint64 // Historical: bytes moved by reallocations
	Generation    uint32 // Current generation
}

type atomicStats struct {
	Reallocations atomic.Uint64
	BytesReserved atomic.Uint64
	BytesCopied   atomic.Uint64
}

// Arena is a single reallocatable native region.
type Arena struct {
	backend    Backend
	acquirer   MemoryAcquirer
	mapping    *mmap.Mapping // nil for BackendHeap or before the first Grow
	buf        []byte
	generation atomic.Uint32
	closed     bool
	stats      atomicStats
}

// Option configures an Arena.
type Option func(*Arena)

// WithBackend selects the allocation backend.
func WithBackend(b Backend) Option {
	return func(a *Arena) {
		a.backend = b
	}
}

// WithMemoryAcquirer charges every region against acquirer.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(a *Arena) {
		a.acquirer = acquirer
	}
}

// New creates an empty arena. No memory is allocated until Grow.
func New(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	// Generation 0 is never live so zero-valued references are always stale.
	a.generation.Store(1)
	return a
}

// Grow ensures the region holds at least size bytes. When it must move, the
// old contents are copied, the old region is released and the generation is
// incremented. A size that already fits is a no-op.
func (a *Arena) Grow(ctx context.Context, size int) error {
	if a.closed {
		return ErrClosed
	}
	if size <= len(a.buf) {
		return nil
	}

	size64, err := conv.IntToUint64(size)
	if err != nil {
		return err
	}

	if a.acquirer != nil {
		if err := a.acquirer.AcquireMemory(ctx, int64(size)); err != nil {
			return err
		}
	}

	buf, mapping, err := a.allocate(size)
	if err != nil {
		if a.acquirer != nil {
			a.acquirer.ReleaseMemory(int64(size))
		}
		return fmt.Errorf("%w: %d bytes (%s): %w", ErrAllocationFailed, size, a.backend, err)
	}

	copied := copy(buf, a.buf)
	// The contents already live in the new region; a failed unmap of the
	// old one cannot be undone here.
	_ = a.release()

	a.buf = buf
	a.mapping = mapping
	a.generation.Add(1)

	a.stats.Reallocations.Add(1)
	a.stats.BytesReserved.Store(size64)
	a.stats.BytesCopied.Add(uint64(copied))

	return nil
}

func (a *Arena) allocate(size int) ([]byte, *mmap.Mapping, error) {
	switch a.backend {
	case BackendHeap:
		return mem.AllocAligned(size), nil, nil
	case BackendMmap:
		m, err := mmap.MapAnon(size)
		if err != nil {
			return nil, nil, err
		}
		return m.Bytes(), m, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %d", int(a.backend))
	}
}

// release drops the current region and returns its bytes to the acquirer.
// The bytes are returned even when unmapping fails.
func (a *Arena) release() error {
	n := len(a.buf)
	var err error
	if a.mapping != nil {
		err = a.mapping.Close()
		a.mapping = nil
	}
	a.buf = nil
	if a.acquirer != nil && n > 0 {
		a.acquirer.ReleaseMemory(int64(n))
	}
	return err
}

// Bytes returns the live region. It must not be used after the next Grow or Free.
func (a *Arena) Bytes() []byte {
	return a.buf
}

// Len returns the region length in bytes.
func (a *Arena) Len() int {
	return len(a.buf)
}

// Addr returns the base address of the region, or 0 if nothing is allocated.
func (a *Arena) Addr() uintptr {
	if len(a.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&a.buf[0])) //nolint:gosec // address is reported, never dereferenced
}

// Generation returns the current generation. It changes on every move and on Free.
func (a *Arena) Generation() uint32 {
	return a.generation.Load()
}

// Backend returns the configured backend.
func (a *Arena) Backend() Backend {
	return a.backend
}

// Closed reports whether Free has been called.
func (a *Arena) Closed() bool {
	return a.closed
}

// Advise forwards an access-pattern hint for mmap-backed regions.
func (a *Arena) Advise(pattern mmap.AccessPattern) error {
	if a.closed {
		return ErrClosed
	}
	if a.mapping == nil {
		return nil
	}
	return a.mapping.Advise(pattern)
}

// Free releases the region and invalidates every outstanding reference.
// It is idempotent; the arena cannot be grown again. The error is the one
// reported by unmapping the region.
func (a *Arena) Free() error {
	if a.closed {
		return nil
	}
	a.closed = true
	err := a.release()
	a.generation.Add(1)
	a.stats.BytesReserved.Store(0)
	if err != nil {
		return fmt.Errorf("arena: unmap: %w", err)
	}
	return nil
}

// Stats returns a snapshot of the arena statistics.
func (a *Arena) Stats() Stats {
	return Stats{
		Reallocations: a.stats.Reallocations.Load(),
		BytesReserved: a.stats.BytesReserved.Load(),
		BytesCopied:   a.stats.BytesCopied.Load(),
		Generation:    a.generation.Load(),
	}
}

func (a *Arena) String() string {
	s := a.Stats()
	return fmt.Sprintf(
		"Arena{backend: %s, reserved: %.2f KB, reallocations: %d, copied: %.2f KB, gen: %d}",
		a.backend,
		float64(s.BytesReserved)/1024,
		s.Reallocations,
		float64(s.BytesCopied)/1024,
		s.Generation,
	)
}
