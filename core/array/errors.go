package array

import "errors"

// ErrInvalidCount indicates a count mutation that cannot be represented.
// Allocation failures are returned wrapped and match alloc.ErrOutOfMemory.
var ErrInvalidCount = errors.New("array: invalid count")
