package snapshot

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/grapevec"
	"github.com/hupe1980/grapevec/blobstore"
	"github.com/hupe1980/grapevec/internal/compress"
	"github.com/hupe1980/grapevec/internal/conv"
	"github.com/hupe1980/grapevec/internal/hash"
)

const (
	magic      = "GVEC"
	version    = 1
	headerSize = 28
)

var (
	// ErrBadMagic is returned when a blob is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrElemSize is returned when the snapshot element size differs from the target vector's.
	ErrElemSize = errors.New("snapshot: element size mismatch")
	// ErrChecksum is returned when the payload does not match its checksum.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
	// ErrCorrupt is returned for truncated or inconsistent snapshots.
	ErrCorrupt = errors.New("snapshot: corrupt")
)

// Compression selects the payload codec.
type Compression = compress.Algorithm

const (
	CompressionNone = compress.None
	CompressionLZ4  = compress.LZ4
	CompressionZstd = compress.Zstd
)

// ParseCompression maps "none", "lz4" or "zstd" to a Compression.
func ParseCompression(name string) (Compression, error) {
	c, err := compress.Parse(name)
	if err != nil {
		return CompressionNone, fmt.Errorf("snapshot: %w", err)
	}
	return c, nil
}

// Header describes a stored snapshot.
type Header struct {
	Version     uint8
	Compression Compression
	ElemSize    int
	Count       int
	Checksum    uint32
	PayloadLen  int
}

type options struct {
	compression Compression
}

// Option configures Save.
type Option func(*options)

// WithCompression sets the payload codec. The default is CompressionNone.
// Payloads the codec cannot shrink are stored uncompressed.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// Save writes the present elements of v to name.
func Save[E grapevec.Element](ctx context.Context, store blobstore.BlobStore, name string, v *grapevec.Vector[E], optFns ...Option) error {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}

	raw := v.Bytes()
	payload, used, err := compress.Compress(o.compression, raw)
	if err != nil {
		return fmt.Errorf("snapshot: compress %s: %w", name, err)
	}

	elemSize, err := conv.IntToUint16(v.ElemSize())
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	count, err := conv.IntToUint64(v.Size())
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	payloadLen, err := conv.IntToUint64(len(payload))
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	buf := make([]byte, headerSize+len(payload))
	copy(buf[0:4], magic)
	buf[4] = version
	buf[5] = byte(used)
	binary.LittleEndian.PutUint16(buf[6:], elemSize)
	binary.LittleEndian.PutUint64(buf[8:], count)
	binary.LittleEndian.PutUint32(buf[16:], hash.CRC32C(raw))
	binary.LittleEndian.PutUint64(buf[20:], payloadLen)
	copy(buf[headerSize:], payload)

	if err := store.Put(ctx, name, buf); err != nil {
		return fmt.Errorf("snapshot: put %s: %w", name, err)
	}
	return nil
}

// Load replaces the contents of v with the snapshot at name. v is resized
// to the stored count, which invalidates its references when it grows.
func Load[E grapevec.Element](ctx context.Context, store blobstore.BlobStore, name string, v *grapevec.Vector[E]) error {
	data, err := blobstore.Get(ctx, store, name)
	if err != nil {
		return fmt.Errorf("snapshot: get %s: %w", name, err)
	}

	h, err := parseHeader(data)
	if err != nil {
		return err
	}
	if h.ElemSize != v.ElemSize() {
		return fmt.Errorf("%w: stored %d, vector %d", ErrElemSize, h.ElemSize, v.ElemSize())
	}
	if len(data)-headerSize != h.PayloadLen {
		return fmt.Errorf("%w: payload length %d, header says %d", ErrCorrupt, len(data)-headerSize, h.PayloadLen)
	}

	rawLen, err := conv.MulInt(h.Count, h.ElemSize)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if h.Compression == CompressionNone && rawLen != h.PayloadLen {
		return fmt.Errorf("%w: %d elements need %d bytes, payload has %d", ErrCorrupt, h.Count, rawLen, h.PayloadLen)
	}
	raw, err := compress.Decompress(h.Compression, data[headerSize:], rawLen)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if sum := hash.CRC32C(raw); sum != h.Checksum {
		return fmt.Errorf("%w: have %08x, want %08x", ErrChecksum, sum, h.Checksum)
	}

	if err := v.Resize(h.Count); err != nil {
		return fmt.Errorf("snapshot: resize to %d: %w", h.Count, err)
	}
	copy(v.Bytes(), raw)
	return nil
}

// Stat reads only the header of the snapshot at name.
func Stat(ctx context.Context, store blobstore.BlobStore, name string) (Header, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return Header{}, fmt.Errorf("snapshot: open %s: %w", name, err)
	}
	defer func() { _ = b.Close() }()

	buf := make([]byte, headerSize)
	n, err := b.ReadAt(ctx, buf, 0)
	if n < headerSize {
		if err == nil {
			err = ErrCorrupt
		}
		return Header{}, fmt.Errorf("%w: short header (%d bytes): %w", ErrCorrupt, n, err)
	}
	return parseHeader(buf)
}

func parseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if string(data[0:4]) != magic {
		return Header{}, ErrBadMagic
	}
	if data[4] != version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	count, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data[8:]))
	if err != nil {
		return Header{}, fmt.Errorf("%w: count: %w", ErrCorrupt, err)
	}
	payloadLen, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(data[20:]))
	if err != nil {
		return Header{}, fmt.Errorf("%w: payload length: %w", ErrCorrupt, err)
	}

	return Header{
		Version:     data[4],
		Compression: Compression(data[5]),
		ElemSize:    int(binary.LittleEndian.Uint16(data[6:])),
		Count:       count,
		Checksum:    binary.LittleEndian.Uint32(data[16:]),
		PayloadLen:  payloadLen,
	}, nil
}
