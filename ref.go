package grapevec

// Ref is an aliasing reference to one slot of a Vector.
//
// A Ref carries the generation of the storage it was taken from. Once the
// vector reallocates or is closed, the Ref is stale and Load/Store report
// ErrStaleRef instead of touching released memory. The zero Ref is stale.
type Ref[E Element] struct {
	vec   *Vector[E]
	index int
	gen   uint32
}

// Index returns the slot index the reference points at.
func (r Ref[E]) Index() int {
	return r.index
}

// Generation returns the storage generation the reference was taken from.
func (r Ref[E]) Generation() uint32 {
	return r.gen
}

// Valid reports whether the reference may still be used.
func (r Ref[E]) Valid() bool {
	return r.check() == nil
}

// Load reads the slot.
func (r Ref[E]) Load() (E, error) {
	if err := r.check(); err != nil {
		var zero E
		return zero, err
	}
	return r.vec.data[r.index], nil
}

// Store writes val into the slot in place.
func (r Ref[E]) Store(val E) error {
	if err := r.check(); err != nil {
		return err
	}
	r.vec.data[r.index] = val
	return nil
}

// Ptr returns a raw pointer into native storage for in-place mutation.
// The pointer is not tracked: it must not be used after the next
// growth-triggering call or Close.
func (r Ref[E]) Ptr() (*E, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	return &r.vec.data[r.index], nil
}

func (r Ref[E]) check() error {
	if r.vec == nil || r.gen != r.vec.arena.Generation() {
		return ErrStaleRef
	}
	if r.index >= r.vec.size {
		return ErrOutOfRange
	}
	return nil
}
