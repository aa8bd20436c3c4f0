package mem

import (
	"unsafe"
)

// Alignment is the default start alignment (one cache line, AVX-512 friendly).
const Alignment = 64

// Alloc returns a zeroed slice of size bytes whose first byte is aligned to
// align, which must be a power of two. It over-allocates by align bytes; the
// backing array stays reachable through the returned slice.
func Alloc(size, align int) []byte {
	if size <= 0 {
		return nil
	}
	if align <= 1 {
		return make([]byte, size)
	}

	buf := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // address arithmetic only
	mask := uintptr(align - 1)
	offset := (uintptr(align) - (addr & mask)) & mask

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// AllocAligned is Alloc with the default Alignment.
func AllocAligned(size int) []byte {
	return Alloc(size, Alignment)
}
