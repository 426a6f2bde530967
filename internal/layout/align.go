// Package layout holds alignment utilities and fixed-layout checks for types
// whose binary footprint is part of their contract.
package layout

import "fmt"

const (
	// PointerAlignment is the alignment every pointer-bearing field of a
	// fixed layout must have, regardless of how tightly the rest is packed.
	PointerAlignment = 8

	pointerAlignmentMask = PointerAlignment - 1
)

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + pointerAlignmentMask) & ^pointerAlignmentMask
}

// IsAligned8 reports whether an offset or address is a multiple of 8.
func IsAligned8(n uintptr) bool {
	return n&pointerAlignmentMask == 0
}

// Fixed describes the measured layout of a type, typically from unsafe.Sizeof,
// unsafe.Alignof and unsafe.Offsetof.
type Fixed struct {
	Name  string
	Size  uintptr
	Align uintptr
	// Pointers are the offsets of fields that may hold an address.
	Pointers []uintptr
}

// Check verifies that f has exactly wantSize bytes and that the type and every
// pointer-bearing field are 8-byte aligned.
func (f Fixed) Check(wantSize uintptr) error {
	if f.Size != wantSize {
		return fmt.Errorf("layout: %s is %d bytes, want %d", f.Name, f.Size, wantSize)
	}
	if !IsAligned8(f.Align) || f.Align == 0 {
		return fmt.Errorf("layout: %s has alignment %d, want a multiple of %d", f.Name, f.Align, PointerAlignment)
	}
	for _, off := range f.Pointers {
		if !IsAligned8(off) {
			return fmt.Errorf("layout: %s pointer field at offset %d is not %d-byte aligned", f.Name, off, PointerAlignment)
		}
	}
	return nil
}

// MustCheck panics if f.Check(wantSize) fails. Use it from package init.
func (f Fixed) MustCheck(wantSize uintptr) {
	if err := f.Check(wantSize); err != nil {
		panic(err)
	}
}
