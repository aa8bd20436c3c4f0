package grapevec

import (
	"fmt"
	"math"
)

// Add appends val, doubling the capacity first when the vector is full.
// An empty vector grows to the configured minimum capacity.
func (v *Vector[E]) Add(val E) error {
	if err := v.growIfFull(); err != nil {
		return err
	}
	v.PushBack(val)
	return nil
}

// Append grows like Add, extends the vector by one zero-valued slot and
// returns a reference to it so the caller can fill it in place.
func (v *Vector[E]) Append() (Ref[E], error) {
	if err := v.growIfFull(); err != nil {
		return Ref[E]{}, err
	}
	if err := v.Resize(v.size + 1); err != nil {
		return Ref[E]{}, err
	}
	return v.Get(v.size - 1), nil
}

func (v *Vector[E]) growIfFull() error {
	if v.size < len(v.data) {
		return nil
	}
	n, err := v.nextCapacity()
	if err != nil {
		return err
	}
	return v.Reserve(n)
}

// nextCapacity is the doubling policy. Zero capacity maps to the minimum
// so that growth from empty always makes progress.
func (v *Vector[E]) nextCapacity() (int, error) {
	c := len(v.data)
	if c == 0 {
		return v.opts.minCapacity, nil
	}
	if c > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: cannot double capacity %d", ErrTooLarge, c)
	}
	return c * 2, nil
}
