package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/joshuapare/memcore/core/count"
)

// MutRawCapacity applies the MutCapacity rules to a byte allocation held as
// a bare pointer and capacity. *ptr must be 0 or an address previously
// returned through this function, and *capacity its size. Both are updated
// only on success.
//
// The memory comes from the system allocator and lives outside the Go heap,
// so storing it in a uintptr is safe.
func MutRawCapacity[C count.Width](ptr *uintptr, capacity *count.Count[C], newCapacity count.Count[C]) error {
	if newCapacity.IsZero() {
		if capacity.IsZero() {
			return nil
		}
		if err := sysFree(unsafe.Pointer(*ptr)); err != nil {
			return fmt.Errorf("alloc: free raw %v bytes: %w", *capacity, err)
		}
		*ptr = 0
		*capacity = count.Count[C]{}
		return nil
	}
	if newCapacity == *capacity {
		return nil
	}
	if newCapacity.Uint64() > math.MaxInt {
		return fmt.Errorf("%w: raw capacity %v", ErrOutOfMemory, newCapacity)
	}
	var (
		p   unsafe.Pointer
		err error
	)
	if capacity.IsZero() {
		p, err = sysMalloc(newCapacity.Int())
	} else {
		p, err = sysRealloc(unsafe.Pointer(*ptr), newCapacity.Int())
	}
	if err != nil {
		return err
	}
	*ptr = uintptr(p)
	*capacity = newCapacity
	return nil
}

// RawBytes returns the bytes of a raw allocation. The slice aliases memory
// owned by the allocation and is invalid after its next capacity change.
func RawBytes[C count.Width](ptr uintptr, capacity count.Count[C]) []byte {
	if capacity.IsZero() {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), capacity.Int())
}
