package grapevec

import (
	"context"
	"fmt"
	"iter"
	"time"
	"unsafe"

	"github.com/hupe1980/grapevec/internal/arena"
	"github.com/hupe1980/grapevec/internal/conv"
)

// Vector is a growable array of E stored in native memory.
//
// The invariant 0 <= Size() <= Capacity() holds before and after every call.
// A Vector must be released with Close; it is not safe for concurrent use.
type Vector[E Element] struct {
	arena    *arena.Arena
	data     []E // aliases arena storage; len(data) == capacity
	size     int
	elemSize int
	opts     *options
}

func newVector[E Element](o *options) *Vector[E] {
	var zero E
	return &Vector[E]{
		arena:    arena.New(o.arenaOptions()...),
		elemSize: int(unsafe.Sizeof(zero)),
		opts:     o,
	}
}

// Size returns the number of elements present.
func (v *Vector[E]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[E]) Capacity() int {
	return len(v.data)
}

// ElemSize returns the size of one element in bytes.
func (v *Vector[E]) ElemSize() int {
	return v.elemSize
}

// Get returns a reference aliasing slot i, which must be in [0, Size()).
// The reference stays usable until the next reallocation.
func (v *Vector[E]) Get(i int) Ref[E] {
	v.checkIndex(i)
	return Ref[E]{vec: v, index: i, gen: v.arena.Generation()}
}

// At returns a copy of the element in slot i.
func (v *Vector[E]) At(i int) E {
	v.checkIndex(i)
	return v.data[i]
}

// Set copies val into slot i. It never reallocates.
func (v *Vector[E]) Set(i int, val E) {
	v.checkIndex(i)
	v.data[i] = val
}

// PushBack appends val without a growth check. The caller must ensure
// Size() < Capacity(); otherwise PushBack panics with ErrFull. Use Add for the
// growth-checked append.
func (v *Vector[E]) PushBack(val E) {
	if v.size >= len(v.data) {
		panic(ErrFull)
	}
	v.data[v.size] = val
	v.size++
}

// Clear sets the size to zero. Capacity and storage are kept.
func (v *Vector[E]) Clear() {
	v.size = 0
}

// Data returns the base address of the native storage, or 0 when nothing is
// allocated. It is meant for handing to other native code and must not be
// converted back into a pointer.
func (v *Vector[E]) Data() uintptr {
	return v.arena.Addr()
}

// Reserve ensures Capacity() >= n. When the storage has to move, the elements
// are copied and every outstanding Ref becomes stale. n <= Capacity() is a no-op.
func (v *Vector[E]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if n <= len(v.data) {
		return nil
	}
	return v.realloc(n)
}

// Resize sets Size() to n, growing the capacity first if needed. Newly exposed
// slots hold the zero value. Shrinking drops the trailing elements.
func (v *Vector[E]) Resize(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if n > len(v.data) {
		if err := v.realloc(n); err != nil {
			return err
		}
	}
	if n > v.size {
		clear(v.data[v.size:n])
	}
	v.size = n
	return nil
}

func (v *Vector[E]) realloc(n int) error {
	ctx := context.Background()
	oldCap := len(v.data)

	bytes, err := conv.MulInt(n, v.elemSize)
	if err != nil {
		return fmt.Errorf("%w: %d elements: %w", ErrTooLarge, n, err)
	}

	start := time.Now()
	err = v.arena.Grow(ctx, bytes)
	v.opts.metricsCollector.RecordGrowth(oldCap, n, bytes, time.Since(start), err)
	v.opts.logger.LogGrowth(ctx, oldCap, n, v.arena.Generation(), err)
	if err != nil {
		return err
	}

	buf := v.arena.Bytes()
	v.data = unsafe.Slice((*E)(unsafe.Pointer(&buf[0])), n) //nolint:gosec // arena regions are at least 8-byte aligned
	return nil
}

// Slice returns the present elements as a slice aliasing native storage.
// It follows the same invalidation rule as Ref and must not be appended to.
func (v *Vector[E]) Slice() []E {
	return v.data[:v.size:v.size]
}

// Bytes returns the present elements as raw bytes aliasing native storage.
func (v *Vector[E]) Bytes() []byte {
	if v.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.data[0])), v.size*v.elemSize) //nolint:gosec // view of owned storage
}

// Values iterates over the present elements in index order.
func (v *Vector[E]) Values() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Generation returns the allocation generation. It changes whenever the
// storage moves and when the vector is closed.
func (v *Vector[E]) Generation() uint32 {
	return v.arena.Generation()
}

// Advise passes an access-pattern hint for the storage to the kernel.
// It is a no-op for the heap backend.
func (v *Vector[E]) Advise(pattern AccessPattern) error {
	return v.arena.Advise(pattern)
}

// Stats describes a vector's storage.
type Stats struct {
	Size          int
	Capacity      int
	ElemSize      int
	BytesReserved uint64
	Reallocations uint64
	Generation    uint32
	Backend       Backend
}

// Stats returns a snapshot of the vector's storage statistics.
func (v *Vector[E]) Stats() Stats {
	as := v.arena.Stats()
	return Stats{
		Size:          v.size,
		Capacity:      len(v.data),
		ElemSize:      v.elemSize,
		BytesReserved: as.BytesReserved,
		Reallocations: as.Reallocations,
		Generation:    as.Generation,
		Backend:       v.arena.Backend(),
	}
}

// Close releases the native storage. Every Ref becomes stale, Size and
// Capacity drop to zero, and growth returns ErrClosed. Close is idempotent;
// only the first call can report an unmap failure.
func (v *Vector[E]) Close() error {
	if v.arena.Closed() {
		return nil
	}
	capacity, bytes := len(v.data), v.arena.Len()

	err := v.arena.Free()
	v.data = nil
	v.size = 0

	v.opts.metricsCollector.RecordRelease(bytes)
	v.opts.logger.LogRelease(context.Background(), capacity, bytes)
	return err
}

func (v *Vector[E]) String() string {
	return fmt.Sprintf("Vector{size: %d, capacity: %d, elem: %dB, gen: %d, backend: %s}",
		v.size, len(v.data), v.elemSize, v.arena.Generation(), v.arena.Backend())
}

func (v *Vector[E]) checkIndex(i int) {
	if uint(i) >= uint(v.size) {
		panic(fmt.Sprintf("grapevec: index out of range [%d] with size %d", i, v.size))
	}
}
