// Package mmap provides native memory mappings outside the Go heap.
//
// # Overview
//
// Two kinds of mappings are supported:
//
//   - MapAnon: a private, zero-filled, read-write anonymous region. This is the
//     storage behind grapevec vectors; the garbage collector never scans or moves it.
//   - Open: a read-only mapping of an existing file, used for zero-copy reads of
//     local blobs.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // valid until Close
//	m.Advise(mmap.AccessSequential)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) / munmap(2) / madvise(2)
//   - Windows: VirtualAlloc for anonymous memory, MapViewOfFile for files
//     (Advise is a no-op)
//
// # Thread Safety
//
// Close is idempotent and guarded by an atomic flag. Callers must ensure no
// goroutine touches the slice returned by Bytes after Close returns.
package mmap
