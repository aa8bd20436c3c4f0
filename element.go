package grapevec

// Element is the set of fixed-size kinds a Vector can store. None of them
// contain Go pointers, which is what allows storage outside the Go heap.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool
}
