package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies a block codec. The values are persisted.
type Algorithm uint8

const (
	None Algorithm = 0
	LZ4  Algorithm = 1
	Zstd Algorithm = 2
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// Parse maps a name from String back to an Algorithm.
func Parse(name string) (Algorithm, error) {
	switch name {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

var (
	// ErrUnknownAlgorithm is returned for algorithm ids this build cannot decode.
	ErrUnknownAlgorithm = errors.New("compress: unknown algorithm")
	// ErrSizeMismatch is returned when a block does not decode to the expected length.
	ErrSizeMismatch = errors.New("compress: decompressed size mismatch")
)

// maxLZ4Ratio is the largest expansion of an LZ4 block: a single match
// token can describe at most 255 bytes per input byte.
const maxLZ4Ratio = 255

const unsizedFrameHint = 64 << 10

var (
	zstdEncoders sync.Pool
	zstdDecoders sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoders.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoders.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
}

// Compress encodes data with alg. It returns the algorithm actually applied:
// None when alg is None, data is empty, or the codec could not shrink it.
func Compress(alg Algorithm, data []byte) ([]byte, Algorithm, error) {
	if alg == None || len(data) == 0 {
		return data, None, nil
	}

	var out []byte
	switch alg {
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, None, err
		}
		out = buf[:n]
	case Zstd:
		enc, err := getZstdEncoder()
		if err != nil {
			return nil, None, err
		}
		out = enc.EncodeAll(data, nil)
		zstdEncoders.Put(enc)
	default:
		return nil, None, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}

	// lz4 reports 0 for incompressible input.
	if len(out) == 0 || len(out) >= len(data) {
		return data, None, nil
	}
	return out, alg, nil
}

// Decompress decodes a block produced by Compress into exactly rawLen bytes.
func Decompress(alg Algorithm, data []byte, rawLen int) ([]byte, error) {
	switch alg {
	case None:
		if len(data) != rawLen {
			return nil, fmt.Errorf("%w: have %d, want %d", ErrSizeMismatch, len(data), rawLen)
		}
		return data, nil
	case LZ4:
		if rawLen < 0 || rawLen > maxLZ4Ratio*len(data)+16 {
			return nil, fmt.Errorf("%w: %d bytes cannot expand to %d", ErrSizeMismatch, len(data), rawLen)
		}
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, err
		}
		if n != rawLen {
			return nil, fmt.Errorf("%w: have %d, want %d", ErrSizeMismatch, n, rawLen)
		}
		return out, nil
	case Zstd:
		if rawLen < 0 {
			return nil, fmt.Errorf("%w: negative length %d", ErrSizeMismatch, rawLen)
		}
		var hdr zstd.Header
		if err := hdr.Decode(data); err != nil {
			return nil, err
		}
		if hdr.HasFCS && hdr.FrameContentSize != uint64(rawLen) {
			return nil, fmt.Errorf("%w: frame holds %d bytes, want %d", ErrSizeMismatch, hdr.FrameContentSize, rawLen)
		}
		// Small frames omit the content size; let DecodeAll grow the buffer.
		sizeHint := rawLen
		if !hdr.HasFCS {
			sizeHint = min(rawLen, unsizedFrameHint)
		}

		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoders.Put(dec)

		out, err := dec.DecodeAll(data, make([]byte, 0, sizeHint))
		if err != nil {
			return nil, err
		}
		if len(out) != rawLen {
			return nil, fmt.Errorf("%w: have %d, want %d", ErrSizeMismatch, len(out), rawLen)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(alg))
	}
}
