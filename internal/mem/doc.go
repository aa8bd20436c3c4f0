// Package mem allocates aligned byte regions on the Go heap.
//
// It backs vectors configured with the heap backend, where storage is an
// ordinary garbage-collected slice instead of a native mapping.
package mem
