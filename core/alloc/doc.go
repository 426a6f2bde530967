// Package alloc provides owning raw buffers of fixed-type slots.
//
// # Overview
//
// An Allocation tracks only its capacity. It does not know which slots hold
// live values; that bookkeeping belongs to the owner (array.Array,
// shtick.Shtick). The owner must destroy any live elements in a region before
// shrinking the allocation below it:
//
//	var a alloc.Allocation64[int]
//	if err := a.MutCapacity(count.Of64(8)); err != nil {
//	    return err
//	}
//	_ = a.WriteUninitialized(0, 42)
//	v, _ := a.ReadDestructively(0) // slot 0 is uninitialized again
//	_ = a.MutCapacity(count.Of64(0)) // release
//
// # Capacity Changes
//
// MutCapacity allocates from empty, reallocates between nonzero capacities,
// and deallocates when the target is zero. Capacity is updated only when the
// change succeeds. Grow doubles the capacity (starting at 2) and saturates at
// the width's maximum; it fails with ErrOutOfMemory once it cannot grow.
//
// # Allocators
//
// The memory behind an Allocation comes from an Allocator:
//
//   - Heap: the Go heap. Safe for every element type. The zero Allocation
//     uses it.
//   - Manual: the process-wide system allocator (mmap-backed malloc, realloc
//     and free from modernc.org/memory). Memory is outside the Go heap and
//     invisible to the garbage collector, so only pointer-free element types
//     are accepted.
//
// # Raw Allocations
//
// MutRawCapacity and RawBytes manage a byte allocation held as a bare uintptr
// and a Count. This lets fixed-size layouts such as shtick.Shtick embed an
// allocation without carrying a Go slice header.
//
// # Thread Safety
//
// Allocation instances are not thread-safe. Only the system allocator behind
// Manual and raw allocations is shared, and it is guarded internally.
package alloc
