package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C_KnownValue(t *testing.T) {
	// Check value from RFC 3720, B.4.
	assert.Equal(t, uint32(0xe3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestCRC32C_StreamingMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	h := NewCRC32C()
	_, _ = h.Write(data[:10])
	_, _ = h.Write(data[10:])
	assert.Equal(t, CRC32C(data), h.Sum32())

	assert.Equal(t, CRC32C(data), UpdateCRC32C(CRC32C(data[:7]), data[7:]))
}
