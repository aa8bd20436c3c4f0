package grape

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFragment(t *testing.T) {
	frag := NewMemoryFragment(2, []int64{100, 101, 102}, []int64{500})

	assert.Equal(t, 2, frag.Fid())
	assert.Equal(t, 4, frag.VerticesNum())
	assert.Equal(t, 3, frag.InnerVerticesNum())
	assert.Equal(t, int64(100), frag.OriginalID(0))
	assert.Equal(t, int64(102), frag.OriginalID(2))
	assert.Equal(t, int64(500), frag.OriginalID(3))
	assert.Panics(t, func() { frag.OriginalID(4) })
	assert.Panics(t, func() { frag.OriginalID(-1) })
	assert.Equal(t, "Fragment{fid: 2, inner: 3, outer: 1}", frag.String())
}

func TestArgs(t *testing.T) {
	args := ArgsFromStrings("0.85", " 10 ", "x")
	require.Equal(t, 3, args.Len())

	alpha, err := args.Float64(0)
	require.NoError(t, err)
	assert.Equal(t, 0.85, alpha)

	n, err := args.Int(1)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	s, err := args.String(2)
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}

func TestArgs_Errors(t *testing.T) {
	args := ArgsFromStrings("not-a-number", "1.5")

	tests := []struct {
		name  string
		parse func() error
		index int
		value string
	}{
		{"float", func() error { _, err := args.Float64(0); return err }, 0, "not-a-number"},
		{"int from float", func() error { _, err := args.Int(1); return err }, 1, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse()
			var argErr *ArgError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.index, argErr.Index)
			assert.Equal(t, tt.value, argErr.Value)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
			assert.Contains(t, err.Error(), strconv.Quote(tt.value))
		})
	}

	_, err := args.Int(5)
	assert.ErrorIs(t, err, ErrMissingArg)
	_, err = Args(nil).Float64(0)
	assert.ErrorIs(t, err, ErrMissingArg)
}
