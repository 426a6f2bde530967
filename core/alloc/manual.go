package alloc

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"modernc.org/memory"

	"github.com/joshuapare/memcore/internal/buf"
)

// system is the process-wide off-heap allocator. memory.Allocator is not safe
// for concurrent use, so every call holds mu.
var system struct {
	mu sync.Mutex
	a  memory.Allocator
}

// Stats reports the state of the system allocator.
type Stats struct {
	Allocs int // live allocations
	Bytes  int // bytes obtained from the OS
	Mmaps  int // live OS mappings
}

// SystemStats returns a snapshot of the system allocator.
func SystemStats() Stats {
	system.mu.Lock()
	defer system.mu.Unlock()
	return Stats{
		Allocs: system.a.Allocs,
		Bytes:  system.a.Bytes,
		Mmaps:  system.a.Mmaps,
	}
}

func sysMalloc(size int) (unsafe.Pointer, error) {
	system.mu.Lock()
	defer system.mu.Unlock()
	p, err := system.a.UnsafeMalloc(size)
	if err != nil {
		return nil, fmt.Errorf("%w: malloc %d: %v", ErrOutOfMemory, size, err)
	}
	return p, nil
}

func sysRealloc(p unsafe.Pointer, size int) (unsafe.Pointer, error) {
	system.mu.Lock()
	defer system.mu.Unlock()
	r, err := system.a.UnsafeRealloc(p, size)
	if err != nil {
		return nil, fmt.Errorf("%w: realloc %d: %v", ErrOutOfMemory, size, err)
	}
	return r, nil
}

func sysFree(p unsafe.Pointer) error {
	system.mu.Lock()
	defer system.mu.Unlock()
	return system.a.UnsafeFree(p)
}

// Manual allocates slots from the system allocator, outside the Go heap.
// Element types must be pointer-free.
type Manual[T any] struct{}

// NewManual returns a Manual allocator, or ErrPointerElement if T holds
// pointers the garbage collector would need to see.
func NewManual[T any]() (Manual[T], error) {
	if err := checkPointerFree[T](); err != nil {
		return Manual[T]{}, err
	}
	return Manual[T]{}, nil
}

// Alloc returns n slots. Their contents are unspecified.
func (Manual[T]) Alloc(n int) ([]T, error) {
	if err := checkPointerFree[T](); err != nil {
		return nil, err
	}
	var zero T
	size, ok := buf.SlotBytes(n, unsafe.Sizeof(zero))
	if !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, unsafe.Sizeof(zero))
	}
	if size == 0 {
		return make([]T, n), nil
	}
	p, err := sysMalloc(size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// Realloc resizes old in place when the system allocator can, moving it
// otherwise.
func (m Manual[T]) Realloc(old []T, n int) ([]T, error) {
	var zero T
	if len(old) == 0 || unsafe.Sizeof(zero) == 0 {
		if err := m.Free(old); err != nil {
			return nil, err
		}
		return m.Alloc(n)
	}
	if n == 0 {
		return nil, m.Free(old)
	}
	size, ok := buf.SlotBytes(n, unsafe.Sizeof(zero))
	if !ok {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrOutOfMemory, n, unsafe.Sizeof(zero))
	}
	p, err := sysRealloc(unsafe.Pointer(unsafe.SliceData(old)), size)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// Free returns old to the system allocator.
func (Manual[T]) Free(old []T) error {
	var zero T
	if len(old) == 0 || unsafe.Sizeof(zero) == 0 {
		return nil
	}
	return sysFree(unsafe.Pointer(unsafe.SliceData(old)))
}

func checkPointerFree[T any]() error {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		return fmt.Errorf("%w: %v", ErrPointerElement, t)
	}
	return nil
}

// hasPointers reports whether values of t contain anything the garbage
// collector traces.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
