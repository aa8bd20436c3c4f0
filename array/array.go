package array

import (
	"fmt"
	"iter"

	"github.com/hupe1980/grapevec"
)

// Array is a fixed-length array of E in native memory.
type Array[E grapevec.Element] struct {
	vec *grapevec.Vector[E]
}

// DoubleArray holds float64 values, e.g. per-vertex scores.
type DoubleArray = Array[float64]

// IntArray holds int32 values, e.g. per-vertex degrees.
type IntArray = Array[int32]

// New creates an array of n elements, each set to init.
func New[E grapevec.Element](n int, init E, opts ...grapevec.Option) (*Array[E], error) {
	if n < 0 {
		return nil, fmt.Errorf("array: length %d: %w", n, grapevec.ErrNegativeSize)
	}

	vec := grapevec.New[E](opts...)
	if err := vec.Resize(n); err != nil {
		_ = vec.Close()
		return nil, fmt.Errorf("array: allocate %d elements: %w", n, err)
	}

	a := &Array[E]{vec: vec}
	var zero E
	if init != zero {
		a.Fill(init)
	}
	return a, nil
}

// NewDoubleArray creates a DoubleArray of n elements set to init.
func NewDoubleArray(n int, init float64, opts ...grapevec.Option) (*DoubleArray, error) {
	return New(n, init, opts...)
}

// NewIntArray creates an IntArray of n elements set to init.
func NewIntArray(n int, init int32, opts ...grapevec.Option) (*IntArray, error) {
	return New(n, init, opts...)
}

// Len returns the number of elements.
func (a *Array[E]) Len() int {
	return a.vec.Size()
}

// Get returns element i. It panics if i is out of range.
func (a *Array[E]) Get(i int) E {
	return a.vec.At(i)
}

// Set stores v at i. It panics if i is out of range.
func (a *Array[E]) Set(i int, v E) {
	a.vec.Set(i, v)
}

// Ref returns an aliasing reference to element i.
func (a *Array[E]) Ref(i int) grapevec.Ref[E] {
	return a.vec.Get(i)
}

// Fill sets every element to v.
func (a *Array[E]) Fill(v E) {
	s := a.vec.Slice()
	for i := range s {
		s[i] = v
	}
}

// All iterates over (index, value) pairs in order.
func (a *Array[E]) All() iter.Seq2[int, E] {
	return a.vec.Values()
}

// Slice returns the elements as a slice aliasing native memory. It must not
// be used after Close.
func (a *Array[E]) Slice() []E {
	return a.vec.Slice()
}

// Vector exposes the backing vector, e.g. for snapshots.
// Growing it through this handle voids the fixed-length guarantee.
func (a *Array[E]) Vector() *grapevec.Vector[E] {
	return a.vec
}

// Close releases the native memory.
func (a *Array[E]) Close() error {
	return a.vec.Close()
}
