package grapevec

import (
	"errors"

	"github.com/hupe1980/grapevec/internal/arena"
	"github.com/hupe1980/grapevec/internal/resource"
)

var (
	// ErrFull is the panic value of PushBack on a vector with no spare capacity.
	ErrFull = errors.New("grapevec: push on full vector")
	// ErrStaleRef is returned by a Ref whose storage was reallocated or released.
	ErrStaleRef = errors.New("grapevec: stale reference")
	// ErrOutOfRange is returned by a Ref whose slot was dropped by a shrinking Resize.
	ErrOutOfRange = errors.New("grapevec: index out of range")
	// ErrNegativeSize is returned by Reserve and Resize for negative counts.
	ErrNegativeSize = errors.New("grapevec: negative size")
	// ErrTooLarge is returned when a count does not fit in addressable memory.
	ErrTooLarge = errors.New("grapevec: size too large")
	// ErrClosed is returned by growth operations after Close.
	ErrClosed = arena.ErrClosed
	// ErrAllocationFailed wraps the OS error when native memory cannot be obtained.
	ErrAllocationFailed = arena.ErrAllocationFailed
	// ErrMemoryLimitExceeded is returned when growth would exceed a ResourceController's memory limit.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)
