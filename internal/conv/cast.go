package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is wrapped by every conversion failure.
var ErrOverflow = errors.New("integer overflow")

// IntToUint64 converts a non-negative int.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrOverflow, v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts v if it fits in int.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d does not fit in int", ErrOverflow, v)
	}
	return int(v), nil
}

// IntToUint16 converts v if it fits in uint16.
func IntToUint16(v int) (uint16, error) {
	if v < 0 || v > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d does not fit in uint16", ErrOverflow, v)
	}
	return uint16(v), nil
}

// Int64ToInt converts v if it fits in int (always true on 64-bit platforms).
func Int64ToInt(v int64) (int, error) {
	if int64(int(v)) != v {
		return 0, fmt.Errorf("%w: %d does not fit in int", ErrOverflow, v)
	}
	return int(v), nil
}

// MulInt returns a*b for non-negative operands, failing instead of wrapping.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: negative operand %d*%d", ErrOverflow, a, b)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d*%d", ErrOverflow, a, b)
	}
	return int(lo), nil
}
