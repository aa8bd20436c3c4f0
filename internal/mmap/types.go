package mmap

import "errors"

// AccessPattern is a hint to the kernel about how a mapping will be read.
type AccessPattern int

const (
	// AccessDefault removes any previous hint.
	AccessDefault AccessPattern = iota
	// AccessSequential expects a single forward pass (e.g. writing output files).
	AccessSequential
	// AccessRandom expects scattered reads by index.
	AccessRandom
	// AccessWillNeed asks the kernel to fault pages in ahead of use.
	AccessWillNeed
	// AccessDontNeed tells the kernel the pages can be dropped.
	AccessDontNeed
)

func (p AccessPattern) String() string {
	switch p {
	case AccessSequential:
		return "sequential"
	case AccessRandom:
		return "random"
	case AccessWillNeed:
		return "willneed"
	case AccessDontNeed:
		return "dontneed"
	default:
		return "default"
	}
}

var (
	// ErrClosed is returned when a closed mapping is used.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for negative or zero-length requests that need a size.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrInvalidOffset is returned for negative read offsets.
	ErrInvalidOffset = errors.New("mmap: invalid offset")
)
