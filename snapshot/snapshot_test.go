package snapshot

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/grapevec"
	"github.com/hupe1980/grapevec/blobstore"
)

func newScores(t *testing.T, n int) *grapevec.Vector[float64] {
	t.Helper()

	v := grapevec.New[float64]()
	t.Cleanup(func() { _ = v.Close() })
	for i := range n {
		require.NoError(t, v.Add(float64(i%7)/7))
	}
	return v
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			src := newScores(t, 1000)

			require.NoError(t, Save(ctx, store, "scores", src, WithCompression(c)))

			h, err := Stat(ctx, store, "scores")
			require.NoError(t, err)
			assert.Equal(t, uint8(1), h.Version)
			assert.Equal(t, c, h.Compression)
			assert.Equal(t, 8, h.ElemSize)
			assert.Equal(t, 1000, h.Count)
			if c != CompressionNone {
				assert.Less(t, h.PayloadLen, 8000)
			}

			dst := grapevec.New[float64]()
			defer dst.Close()
			require.NoError(t, dst.Add(42))

			require.NoError(t, Load(ctx, store, "scores", dst))
			assert.Equal(t, src.Slice(), dst.Slice())
		})
	}
}

func TestSaveLoad_Empty(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	src := newScores(t, 0)
	require.NoError(t, Save(ctx, store, "empty", src, WithCompression(CompressionZstd)))

	h, err := Stat(ctx, store, "empty")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, h.Compression)
	assert.Zero(t, h.Count)

	dst := newScores(t, 3)
	require.NoError(t, Load(ctx, store, "empty", dst))
	assert.Zero(t, dst.Size())
}

func TestSave_IncompressibleFallsBack(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	v := grapevec.New[uint64]()
	defer v.Close()
	x := uint64(0x9e3779b97f4a7c15)
	for range 64 {
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		require.NoError(t, v.Add(x))
	}

	require.NoError(t, Save(ctx, store, "random", v, WithCompression(CompressionLZ4)))

	h, err := Stat(ctx, store, "random")
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, h.Compression)
	assert.Equal(t, 64*8, h.PayloadLen)
}

func TestLoad_ElemSizeMismatch(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "scores", newScores(t, 10)))

	dst := grapevec.New[int32]()
	defer dst.Close()

	err := Load(ctx, store, "scores", dst)
	assert.ErrorIs(t, err, ErrElemSize)
	assert.Zero(t, dst.Size())
}

func TestLoad_Corruption(t *testing.T) {
	ctx := context.Background()

	saved := func(t *testing.T) []byte {
		t.Helper()
		store := blobstore.NewMemoryStore()
		require.NoError(t, Save(ctx, store, "scores", newScores(t, 16)))
		data, err := blobstore.Get(ctx, store, "scores")
		require.NoError(t, err)
		return data
	}

	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{
			name:    "bad magic",
			mutate:  func(b []byte) []byte { b[0] = 'X'; return b },
			wantErr: ErrBadMagic,
		},
		{
			name:    "future version",
			mutate:  func(b []byte) []byte { b[4] = 9; return b },
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "flipped payload bit",
			mutate:  func(b []byte) []byte { b[headerSize+3] ^= 0x10; return b },
			wantErr: ErrChecksum,
		},
		{
			name:    "truncated payload",
			mutate:  func(b []byte) []byte { return b[:len(b)-8] },
			wantErr: ErrCorrupt,
		},
		{
			name:    "truncated header",
			mutate:  func(b []byte) []byte { return b[:10] },
			wantErr: ErrCorrupt,
		},
		{
			name:    "unknown compression",
			mutate:  func(b []byte) []byte { b[5] = 77; return b },
			wantErr: ErrCorrupt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			require.NoError(t, store.Put(ctx, "scores", tt.mutate(saved(t))))

			dst := grapevec.New[float64]()
			defer dst.Close()

			assert.ErrorIs(t, Load(ctx, store, "scores", dst), tt.wantErr)
		})
	}
}

func TestLoad_ImplausibleCount(t *testing.T) {
	ctx := context.Background()

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		t.Run(c.String(), func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			require.NoError(t, Save(ctx, store, "scores", newScores(t, 1000), WithCompression(c)))

			data, err := blobstore.Get(ctx, store, "scores")
			require.NoError(t, err)
			binary.LittleEndian.PutUint64(data[8:16], 1<<59)
			require.NoError(t, store.Put(ctx, "scores", data))

			dst := grapevec.New[float64]()
			defer dst.Close()

			assert.NotPanics(t, func() {
				err = Load(ctx, store, "scores", dst)
			})
			assert.ErrorIs(t, err, ErrCorrupt)
			assert.Zero(t, dst.Size())
		})
	}
}

func TestParseCompression(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZstd} {
		got, err := ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCompression("snappy")
	assert.ErrorContains(t, err, "snapshot: compress: unknown algorithm")
}

func TestLoad_Missing(t *testing.T) {
	ctx := context.Background()

	dst := grapevec.New[float64]()
	defer dst.Close()

	err := Load(ctx, blobstore.NewMemoryStore(), "nope", dst)
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_, err = Stat(ctx, blobstore.NewMemoryStore(), "nope")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStat_ShortBlob(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "short", []byte("GVEC")))

	_, err := Stat(ctx, store, "short")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestSaveLoad_LocalStore(t *testing.T) {
	ctx := context.Background()

	store := blobstore.NewLocalStore(t.TempDir())

	src := newScores(t, 257)
	require.NoError(t, Save(ctx, store, "superstep-3/pr_frag_0", src, WithCompression(CompressionZstd)))

	dst := grapevec.New[float64](grapevec.WithBackend(grapevec.BackendHeap))
	defer dst.Close()
	require.NoError(t, Load(ctx, store, "superstep-3/pr_frag_0", dst))
	assert.Equal(t, src.Slice(), dst.Slice())
}
