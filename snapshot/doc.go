// Package snapshot saves the elements of a vector to a blob store and
// restores them, e.g. to checkpoint per-vertex state between supersteps.
//
// A snapshot is a single blob:
//
//	offset  size  field
//	0       4     magic "GVEC"
//	4       1     format version (1)
//	5       1     compression (0 none, 1 lz4, 2 zstd)
//	6       2     element size in bytes
//	8       8     element count
//	16      4     CRC32-C of the uncompressed payload
//	20      8     stored payload length
//	28      -     payload
//
// Integers are little-endian. The payload is the raw element memory, so
// snapshots are portable only between little-endian hosts.
package snapshot
