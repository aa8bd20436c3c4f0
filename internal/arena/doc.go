// Package arena owns one contiguous native region that can be reallocated.
//
// The arena is the storage half of a growable vector: it knows bytes, not
// elements. Every reallocation moves the contents to a fresh region and
// increments a generation counter, which callers use to detect references
// taken before the move.
//
// # Backends
//
//   - BackendMmap (default): anonymous mmap, outside the Go heap (no GC scanning)
//   - BackendHeap: 64-byte aligned Go slice, for platforms or tests that avoid mmap
//
// # Safety
//
// An Arena is not safe for concurrent use. Slices returned by Bytes are valid
// only until the next Grow or Free; compare Generation to detect a move.
package arena
