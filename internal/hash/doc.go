// Package hash provides the CRC32-Castagnoli checksum used by vector snapshots.
//
// Go's crc32 package uses SSE4.2 or the ARM CRC extension when present.
//
//	sum := hash.CRC32C(payload)
//
//	h := hash.NewCRC32C()
//	h.Write(header)
//	h.Write(payload)
//	sum = h.Sum32()
package hash
