package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	for _, size := range []int{1, 10, 63, 64, 65, 100, 1024} {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf), "capacity must not leak padding")

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr%Alignment, "size %d not aligned", size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAlloc_CustomAlignment(t *testing.T) {
	for _, align := range []int{8, 16, 4096} {
		buf := Alloc(100, align)
		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Zero(t, addr%uintptr(align), "align %d", align)
	}

	buf := Alloc(16, 1)
	assert.Len(t, buf, 16)
}

func TestAlloc_Zeroed(t *testing.T) {
	buf := AllocAligned(256)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zero", i)
		}
	}
}

func BenchmarkAllocAligned(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocAligned(size)
			}
		})
	}
}
