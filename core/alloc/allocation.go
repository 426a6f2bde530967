package alloc

import (
	"fmt"
	"math"

	"github.com/joshuapare/memcore/core/count"
)

// startingCapacity is the first capacity Grow allocates from empty.
const startingCapacity = 2

// Allocation owns a contiguous run of slots of type T with a capacity counted
// in width C. The zero value is empty, holds no memory and uses Heap.
//
// Callers MUST destroy any live elements they are about to lose before
// shrinking the capacity, and release the allocation with MutCapacity(0)
// when done with it.
type Allocation[T any, C count.Width] struct {
	slots     []T
	capacity  count.Count[C]
	allocator Allocator[T]
}

type (
	Allocation64[T any] = Allocation[T, int64]
	Allocation32[T any] = Allocation[T, int32]
	Allocation16[T any] = Allocation[T, int16]
	Allocation8[T any]  = Allocation[T, int8]
)

// New returns an empty allocation on the Go heap.
func New[T any, C count.Width]() Allocation[T, C] {
	return Allocation[T, C]{}
}

// NewWith returns an empty allocation drawing memory from a.
func NewWith[T any, C count.Width](a Allocator[T]) Allocation[T, C] {
	return Allocation[T, C]{allocator: a}
}

func (a *Allocation[T, C]) backend() Allocator[T] {
	if a.allocator == nil {
		return Heap[T]{}
	}
	return a.allocator
}

// Capacity returns the number of slots.
func (a *Allocation[T, C]) Capacity() count.Count[C] {
	return a.capacity
}

// MutCapacity resizes the allocation to exactly newCapacity slots. Zero
// releases the memory. The capacity is updated only on success.
func (a *Allocation[T, C]) MutCapacity(newCapacity count.Count[C]) error {
	if newCapacity.IsZero() {
		if a.capacity.IsZero() {
			return nil
		}
		if err := a.backend().Free(a.slots); err != nil {
			return fmt.Errorf("alloc: free %v slots: %w", a.capacity, err)
		}
		a.slots = nil
		a.capacity = count.Count[C]{}
		return nil
	}
	if newCapacity == a.capacity {
		return nil
	}
	if newCapacity.Uint64() > math.MaxInt {
		return fmt.Errorf("%w: capacity %v", ErrOutOfMemory, newCapacity)
	}
	var (
		slots []T
		err   error
	)
	if a.capacity.IsZero() {
		slots, err = a.backend().Alloc(newCapacity.Int())
	} else {
		slots, err = a.backend().Realloc(a.slots, newCapacity.Int())
	}
	if err != nil {
		return err
	}
	a.slots = slots
	a.capacity = newCapacity
	return nil
}

// Grow roughly doubles the capacity.
func (a *Allocation[T, C]) Grow() error {
	target := a.capacity.DoubleOrMax(count.Of(C(startingCapacity)))
	if !a.capacity.Less(target) {
		return fmt.Errorf("%w: cannot grow past %v", ErrOutOfMemory, a.capacity)
	}
	return a.MutCapacity(target)
}

// WriteUninitialized stores value at offset without reading or destroying
// whatever the slot held. The slot must not hold a live value.
func (a *Allocation[T, C]) WriteUninitialized(offset count.Offset, value T) error {
	if !a.capacity.Contains(offset) {
		return fmt.Errorf("%w: %d with capacity %v", ErrInvalidOffset, offset, a.capacity)
	}
	a.slots[offset] = value
	return nil
}

// ReadDestructively moves the value out of offset. The slot is zeroed and must
// be treated as uninitialized afterwards.
func (a *Allocation[T, C]) ReadDestructively(offset count.Offset) (T, error) {
	var zero T
	if !a.capacity.Contains(offset) {
		return zero, fmt.Errorf("%w: %d with capacity %v", ErrInvalidOffset, offset, a.capacity)
	}
	value := a.slots[offset]
	a.slots[offset] = zero
	return value, nil
}

// Slice returns the first n slots. The caller is responsible for those slots
// being initialized. It panics if n exceeds the capacity.
func (a *Allocation[T, C]) Slice(n count.Count[C]) []T {
	if a.capacity.Less(n) {
		panic(fmt.Sprintf("alloc: slice of %v exceeds capacity %v", n, a.capacity))
	}
	return a.slots[:n.Int():n.Int()]
}
