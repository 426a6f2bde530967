package alloc

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/joshuapare/memcore/internal/buf"
)

// Allocator supplies slot memory to an Allocation.
//
// Alloc returns exactly n slots. Realloc returns exactly n slots holding the
// first min(len(old), n) slots of old; old must not be used afterwards. Free
// releases old. None of them run element destructors.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
	Realloc(old []T, n int) ([]T, error)
	Free(old []T) error
}

// Heap allocates slots on the Go heap.
type Heap[T any] struct{}

// Alloc returns n zeroed slots.
func (Heap[T]) Alloc(n int) (slots []T, err error) {
	var zero T
	if _, ok := buf.SlotBytes(n, unsafe.Sizeof(zero)); !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, unsafe.Sizeof(zero))
	}
	defer func() {
		// make panics with a runtime error for lengths the runtime refuses.
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			slots, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, re)
		}
	}()
	return make([]T, n), nil
}

// Realloc moves old into a new run of n slots and clears old.
func (h Heap[T]) Realloc(old []T, n int) ([]T, error) {
	slots, err := h.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(slots, old)
	clear(old)
	return slots, nil
}

// Free clears old so the garbage collector can reclaim anything it referenced.
func (Heap[T]) Free(old []T) error {
	clear(old)
	return nil
}
