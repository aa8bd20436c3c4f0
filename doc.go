// Package grapevec provides a growable array whose elements live in native
// memory outside the Go heap.
//
// A Vector[E] mirrors a native std::vector: it has an explicit size and
// capacity, indexed access, an unchecked PushBack, and explicit Reserve and
// Resize. Amortized growth (Add, Append) is layered on top. Storage is an
// anonymous memory mapping by default, so large per-vertex arrays add no
// garbage collector pressure and have a stable base address (Data) for
// native interop.
//
// # Quick Start
//
//	v := grapevec.New[float64]()
//	defer v.Close()
//
//	_ = v.Add(1.0)
//	_ = v.Add(2.0)
//	fmt.Println(v.Size(), v.At(1)) // 2 2
//
// # References and Invalidation
//
// Get returns a Ref[E], an aliasing view of one slot tagged with the vector's
// allocation generation. Any call that reallocates (Reserve beyond capacity,
// Resize beyond capacity, Add or Append on a full vector) moves the storage
// and bumps the generation; older refs then report ErrStaleRef instead of
// touching freed memory:
//
//	r := v.Get(0)
//	_ = v.Reserve(1024)  // moves storage
//	_, err := r.Load()   // ErrStaleRef
//	x := v.Get(0)        // take a fresh ref after growth
//
// # Growth
//
// Add and Append double the capacity when the vector is full. An empty vector
// first grows to the configured minimum (WithMinCapacity, default 1), so
// capacity increases monotonically from zero.
//
// # Concurrency
//
// Vectors and refs are not safe for concurrent use. A Factory, a shared
// resource controller and the metrics collectors are.
package grapevec
