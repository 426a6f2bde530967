package shtick

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/memcore/internal/layout"
)

// Size is the size of a Shtick in bytes.
const Size = 16

// tagOffset is where the tag sits, directly after the inline buffer.
const tagOffset = InlineMax

func init() {
	var s Shtick
	layout.Fixed{
		Name:     "shtick.Shtick",
		Size:     unsafe.Sizeof(s),
		Align:    unsafe.Alignof(s),
		Pointers: []uintptr{unsafe.Offsetof(s.word)},
	}.MustCheck(Size)
	if off := unsafe.Offsetof(s.tag); off != tagOffset {
		panic(fmt.Sprintf("shtick: tag at offset %d, want %d", off, tagOffset))
	}
}

// Layout returns the raw 16 bytes of s and its tag, for inspection.
func (s Shtick) Layout() (raw [Size]byte, tag int16) {
	return *(*[Size]byte)(unsafe.Pointer(&s)), s.tag
}
