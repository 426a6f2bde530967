// Package buf contains overflow-safe size and window arithmetic for raw
// slot buffers.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative ints, returning ok = false when
// either is negative or the product would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SlotBytes returns the byte size of n slots of elemSize bytes each.
//
// This is the layout computation every allocation goes through; a false
// result is reported by callers as out of memory:
//
//	size, ok := buf.SlotBytes(n, unsafe.Sizeof(zero))
//	if !ok {
//	    return nil, ErrOutOfMemory
//	}
func SlotBytes(n int, elemSize uintptr) (int, bool) {
	if elemSize > math.MaxInt {
		return 0, false
	}
	return MulOverflowSafe(n, int(elemSize))
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}
