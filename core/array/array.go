// Package array provides Array, an owning growable sequence built on an
// alloc.Allocation.
//
// The live elements are always the prefix [0, Count()) of the allocation and
// Count() <= Capacity() always holds. Elements an Array discards (Clear,
// shrinking MutCapacity or MutCount, replacement by Set) have their Drop
// method run when *T implements Dropper. Elements returned by Pop belong to
// the caller and are not dropped.
package array

import (
	"fmt"
	"slices"

	"github.com/joshuapare/memcore/core/alloc"
	"github.com/joshuapare/memcore/core/count"
	"github.com/joshuapare/memcore/core/index"
)

// Dropper is implemented by element types that own resources, such as
// *shtick.Shtick. Drop must accept the zero value.
type Dropper interface {
	Drop()
}

// Pop selects which element Pop removes.
type Pop uint8

const (
	PopLast Pop = iota
)

// Clear selects what Clear does with the allocation.
type Clear uint8

const (
	KeepCapacity Clear = iota
	DropCapacity
)

// Array is an owning growable sequence. The zero value is an empty array on
// the Go heap. Call Drop when done with an Array whose elements or allocator
// own resources.
type Array[T any] struct {
	count      count.Count64
	allocation alloc.Allocation64[T]
}

// New returns an empty array on the Go heap.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// NewWith returns an empty array drawing memory from a.
func NewWith[T any](a alloc.Allocator[T]) *Array[T] {
	return &Array[T]{allocation: alloc.NewWith[T, int64](a)}
}

// Count returns the number of live elements.
func (a *Array[T]) Count() count.Count64 {
	return a.count
}

// Capacity returns the number of slots allocated.
func (a *Array[T]) Capacity() count.Count64 {
	return a.allocation.Capacity()
}

// Slice returns the live elements. The slice aliases the array and is invalid
// after the next capacity change.
func (a *Array[T]) Slice() []T {
	return a.allocation.Slice(a.count)
}

// Push appends value, growing the allocation when it is full.
func (a *Array[T]) Push(value T) error {
	if a.count == a.allocation.Capacity() {
		if err := a.allocation.Grow(); err != nil {
			return fmt.Errorf("array: push: %w", err)
		}
	}
	if err := a.allocation.WriteUninitialized(a.count.MaxOffset()+1, value); err != nil {
		panic(fmt.Sprintf("array: push within capacity: %v", err))
	}
	a.count = a.count.Inc()
	return nil
}

// Pop removes an element and returns it. ok is false when the array is empty.
func (a *Array[T]) Pop(p Pop) (value T, ok bool) {
	switch p {
	case PopLast:
		return a.popLast()
	}
	panic(fmt.Sprintf("array: invalid pop %d", p))
}

func (a *Array[T]) popLast() (T, bool) {
	if a.count.IsZero() {
		var zero T
		return zero, false
	}
	value, err := a.allocation.ReadDestructively(a.count.MaxOffset())
	if err != nil {
		panic(fmt.Sprintf("array: pop within count: %v", err))
	}
	a.count = a.count.Dec()
	return value, true
}

// truncate discards elements from the end until at most n remain.
func (a *Array[T]) truncate(n count.Count64) {
	for n.Less(a.count) {
		value, _ := a.popLast()
		drop(&value)
	}
}

func drop[T any](value *T) {
	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}
}

// Clear discards every element, dropping each one, and releases the
// allocation when c is DropCapacity.
func (a *Array[T]) Clear(c Clear) {
	a.truncate(count.Count64{})
	if c == DropCapacity {
		if err := a.allocation.MutCapacity(count.Count64{}); err != nil {
			panic(fmt.Sprintf("array: release: %v", err))
		}
	}
}

// Drop destroys the array: Clear(DropCapacity).
func (a *Array[T]) Drop() {
	a.Clear(DropCapacity)
}

// MutCapacity reallocates to exactly newCapacity slots, discarding elements
// past it.
func (a *Array[T]) MutCapacity(newCapacity count.Count64) error {
	if newCapacity == a.allocation.Capacity() {
		return nil
	}
	a.truncate(newCapacity)
	if err := a.allocation.MutCapacity(newCapacity); err != nil {
		return fmt.Errorf("array: capacity %v: %w", newCapacity, err)
	}
	return nil
}

// MutCount shrinks by discarding elements or grows by appending zero values.
func (a *Array[T]) MutCount(newCount count.Count64) error {
	if newCount.Less(a.count) {
		a.truncate(newCount)
		return nil
	}
	if a.allocation.Capacity().Less(newCount) {
		if err := a.MutCapacity(newCount); err != nil {
			return err
		}
	}
	var zero T
	for a.count.Less(newCount) {
		if err := a.Push(zero); err != nil {
			panic(fmt.Sprintf("array: push into reserved capacity: %v", err))
		}
	}
	return nil
}

// Get returns the element at x. Positions past the end are out of bounds.
func (a *Array[T]) Get(x index.Index) (T, error) {
	var zero T
	chk, err := x.CheckOffset(a.count)
	if err != nil {
		return zero, err
	}
	if chk.IncreasesCount {
		return zero, fmt.Errorf("%w: %v against count %v", index.ErrOutOfBounds, x, a.count)
	}
	return a.Slice()[chk.Offset], nil
}

// Set stores value at x, dropping the element it replaces. Positions past the
// end extend the array with zero values first.
func (a *Array[T]) Set(x index.Index, value T) error {
	chk, err := x.CheckOffset(a.count)
	if err != nil {
		return err
	}
	if chk.IncreasesCount {
		newCount, err := count.Of64(chk.Offset).Add(1)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidCount, err)
		}
		if err := a.MutCount(newCount); err != nil {
			return err
		}
	}
	slot := &a.Slice()[chk.Offset]
	drop(slot)
	*slot = value
	return nil
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Array[T]) bool {
	return a.count == b.count && slices.Equal(a.Slice(), b.Slice())
}
