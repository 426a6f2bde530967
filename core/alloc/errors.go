package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the allocator could not satisfy a request,
	// including requests whose byte size does not fit in an int.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrInvalidOffset indicates slot access outside the current capacity.
	ErrInvalidOffset = errors.New("alloc: invalid offset")

	// ErrPointerElement indicates an element type holding Go pointers was
	// used with an off-heap allocator.
	ErrPointerElement = errors.New("alloc: element type holds pointers")
)
