package grapevec

// Factory creates empty vectors of one element type that share a configuration.
// It is safe for concurrent use; the vectors it creates are independent.
type Factory[E Element] struct {
	opts options
}

// NewFactory returns a Factory configured by optFns.
func NewFactory[E Element](optFns ...Option) *Factory[E] {
	return &Factory[E]{opts: applyOptions(optFns)}
}

// Create returns a new, empty vector (Size() == 0, Capacity() == 0).
// No native memory is allocated until the first growth.
func (f *Factory[E]) Create() *Vector[E] {
	return newVector[E](&f.opts)
}

// New is shorthand for NewFactory[E](optFns...).Create().
func New[E Element](optFns ...Option) *Vector[E] {
	return NewFactory[E](optFns...).Create()
}
