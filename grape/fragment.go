package grape

import "fmt"

// Fragment is one partition of a graph as seen by an algorithm context.
//
// Vertices are addressed by local ordinal (lid). Inner vertices, owned by
// this partition, occupy [0, InnerVerticesNum()); outer (mirror) vertices
// follow up to VerticesNum().
type Fragment interface {
	Fid() int
	VerticesNum() int
	InnerVerticesNum() int
	// OriginalID maps a local ordinal to the vertex id of the input graph.
	OriginalID(lid int) int64
}

// MemoryFragment is a Fragment held entirely in memory.
type MemoryFragment struct {
	fid   int
	inner []int64
	outer []int64
}

// NewMemoryFragment creates a fragment whose inner vertices have the given
// original ids, in local-ordinal order, followed by the outer vertices.
func NewMemoryFragment(fid int, inner, outer []int64) *MemoryFragment {
	return &MemoryFragment{fid: fid, inner: inner, outer: outer}
}

func (f *MemoryFragment) Fid() int              { return f.fid }
func (f *MemoryFragment) VerticesNum() int      { return len(f.inner) + len(f.outer) }
func (f *MemoryFragment) InnerVerticesNum() int { return len(f.inner) }

// OriginalID panics if lid is not a vertex of the fragment.
func (f *MemoryFragment) OriginalID(lid int) int64 {
	switch {
	case lid >= 0 && lid < len(f.inner):
		return f.inner[lid]
	case lid >= len(f.inner) && lid < f.VerticesNum():
		return f.outer[lid-len(f.inner)]
	default:
		panic(fmt.Sprintf("grape: lid %d out of range [0, %d)", lid, f.VerticesNum()))
	}
}

func (f *MemoryFragment) String() string {
	return fmt.Sprintf("Fragment{fid: %d, inner: %d, outer: %d}", f.fid, len(f.inner), len(f.outer))
}
