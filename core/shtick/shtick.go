// Package shtick provides Shtick, a 16-byte UTF-8 byte string that keeps
// short contents inline and moves longer contents to a heap allocation.
//
// # Representations
//
// A Shtick is always 16 bytes:
//
//	Offset  Size  Inline            Heap
//	0x00    8     bytes 0..7        allocation pointer (8-byte aligned)
//	0x08    2     bytes 8..9        allocation capacity (count.Count16)
//	0x0A    4     bytes 10..13      unused
//	0x0E    2     tag               tag
//
// The signed tag selects the representation and records the length:
//
//	tag > 0   inline, length = tag - 1 (0..14)
//	tag <= 0  heap, length = -tag (0..32767)
//
// A heap-backed Shtick always has a capacity greater than InlineMax; shrinking
// the capacity to InlineMax or less moves the bytes back inline. The zero
// Shtick is empty: an all-zero tag with a zero capacity reads as inline.
//
// # Ownership
//
// Go has no destructors. Call Drop to release the heap allocation. Copying a
// heap-backed Shtick copies the pointer, so after a copy only one of the two
// may be used or dropped; use Clone for an independent copy.
//
// Contents are UTF-8 by construction: constructors validate, and Push and
// the io writers only ever append whole encoded runes.
package shtick

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding"

	"github.com/joshuapare/memcore/core/alloc"
	"github.com/joshuapare/memcore/core/count"
	"github.com/joshuapare/memcore/internal/buf"
)

const (
	// InlineMax is the most bytes a Shtick holds without allocating.
	InlineMax = 14

	// MaxCount is the most bytes a Shtick can hold.
	MaxCount = 1<<15 - 1

	// firstHeapCapacity is where an inline Shtick jumps when it first
	// overflows, rather than doubling 14 to 28.
	firstHeapCapacity = 32

	// emptyInlineTag is the tag of an empty inline Shtick.
	emptyInlineTag = 1
)

// Shtick is a small-string-optimized UTF-8 byte sequence. The zero value is
// an empty Shtick.
type Shtick struct {
	word     uintptr
	capacity count.Count16
	spare    [4]byte
	tag      int16
}

// New returns an empty inline Shtick.
func New() Shtick {
	return Shtick{tag: emptyInlineTag}
}

// FromBytes returns a Shtick holding a copy of b, sized to fit exactly.
func FromBytes(b []byte) (Shtick, error) {
	if len(b) > MaxCount {
		return Shtick{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(b))
	}
	if !utf8.Valid(b) {
		return Shtick{}, ErrInvalidUTF8
	}
	return fromValid(b)
}

// FromString returns a Shtick holding a copy of str.
func FromString(str string) (Shtick, error) {
	if len(str) > MaxCount {
		return Shtick{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(str))
	}
	if !utf8.ValidString(str) {
		return Shtick{}, ErrInvalidUTF8
	}
	return fromValid([]byte(str))
}

// Must returns a Shtick holding str or panics. The caller must ensure str is
// valid UTF-8 of at most MaxCount bytes.
func Must(str string) Shtick {
	s, err := FromString(str)
	if err != nil {
		panic(fmt.Sprintf("shtick.Must: %v", err))
	}
	return s
}

// Decode converts b from the legacy encoding enc (for example
// charmap.Windows1252) and returns the UTF-8 result as a Shtick.
func Decode(b []byte, enc encoding.Encoding) (Shtick, error) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return Shtick{}, fmt.Errorf("shtick: decode: %w", err)
	}
	return FromBytes(out)
}

func fromValid(b []byte) (Shtick, error) {
	s := New()
	n := count.Of16(int16(len(b)))
	if err := s.MutCapacity(n); err != nil {
		return Shtick{}, err
	}
	copy(s.storage(), b)
	s.setCount(n)
	return s, nil
}

// IsAllocated reports whether the bytes live in a heap allocation.
func (s Shtick) IsAllocated() bool {
	return s.tag < emptyInlineTag && !s.capacity.IsZero()
}

// IsUnallocated reports whether the bytes live inline.
func (s Shtick) IsUnallocated() bool {
	return !s.IsAllocated()
}

// Count returns the number of bytes.
func (s Shtick) Count() count.Count16 {
	switch {
	case s.IsAllocated():
		return count.Negated(s.tag)
	case s.tag < emptyInlineTag:
		return count.Count16{}
	default:
		return count.Of16(s.tag - emptyInlineTag)
	}
}

// Capacity returns the number of bytes available without reallocating.
func (s Shtick) Capacity() count.Count16 {
	if s.IsAllocated() {
		return s.capacity
	}
	return count.Of16(InlineMax)
}

// inline views the first InlineMax bytes of s as the inline buffer.
func (s *Shtick) inline() []byte {
	return (*[InlineMax]byte)(unsafe.Pointer(s))[:]
}

// storage spans the full capacity of the current representation. It is not
// exported because bytes past Count are not meaningful.
func (s *Shtick) storage() []byte {
	if s.IsAllocated() {
		return alloc.RawBytes(s.word, s.capacity)
	}
	return s.inline()
}

// setInlineCount records n without touching the bytes. s must be inline.
func (s *Shtick) setInlineCount(n count.Count16) {
	s.tag = emptyInlineTag + int16(n.Int())
}

// setHeapCount records n without touching the bytes. s must be heap-backed.
func (s *Shtick) setHeapCount(n count.Count16) {
	s.tag = n.AsNegated()
}

// setCount records n in the current representation. It panics if n exceeds
// the capacity.
func (s *Shtick) setCount(n count.Count16) {
	if s.Capacity().Less(n) {
		panic(fmt.Sprintf("shtick: count %v exceeds capacity %v", n, s.Capacity()))
	}
	if s.IsAllocated() {
		s.setHeapCount(n)
	} else {
		s.setInlineCount(n)
	}
}

// Bytes returns the contents. The slice aliases s and is invalid after the
// next mutation or move of s.
func (s *Shtick) Bytes() []byte {
	return s.storage()[:s.Count().Int()]
}

// Push appends the UTF-8 encoding of r. Invalid runes are appended as
// utf8.RuneError.
func (s *Shtick) Push(r rune) error {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	current := s.Count()
	needed, err := current.Add(utf8.RuneLen(r))
	if err != nil || needed.Int() > MaxCount {
		return fmt.Errorf("%w: %v + %d bytes", ErrTooLarge, current, utf8.RuneLen(r))
	}
	if capacity := s.Capacity(); capacity.Less(needed) {
		target := count.Of16(firstHeapCapacity)
		if s.IsAllocated() {
			target = capacity.DoubleOrMax(needed)
		}
		if err := s.MutCapacity(target); err != nil {
			return err
		}
	}
	tail, ok := buf.Slice(s.storage(), current.Int(), needed.Int()-current.Int())
	if !ok {
		panic(fmt.Sprintf("shtick: %v bytes do not fit capacity %v", needed, s.Capacity()))
	}
	utf8.EncodeRune(tail, r)
	s.setCount(needed)
	return nil
}

// MutCapacity changes the capacity to newCapacity, truncating the contents if
// they no longer fit. Capacities up to InlineMax make s inline, anything
// larger makes it heap-backed with exactly that capacity.
//
// Truncation is by byte; callers shrinking below Count must cut on a rune
// boundary to keep the contents valid UTF-8.
func (s *Shtick) MutCapacity(newCapacity count.Count16) error {
	current := s.Count()
	keep := current
	if newCapacity.Less(keep) {
		keep = newCapacity
	}

	if !count.Of16(InlineMax).Less(newCapacity) {
		if !s.IsAllocated() {
			s.setInlineCount(keep)
			return nil
		}
		// Take the allocation out before writing the inline bytes over the
		// fields that hold it.
		ptr, capacity := s.word, s.capacity
		s.setInlineCount(keep)
		copy(s.inline(), alloc.RawBytes(ptr, capacity)[:keep.Int()])
		if err := alloc.MutRawCapacity(&ptr, &capacity, count.Count16{}); err != nil {
			return fmt.Errorf("shtick: release: %w", err)
		}
		return nil
	}

	if s.IsAllocated() {
		if err := alloc.MutRawCapacity(&s.word, &s.capacity, newCapacity); err != nil {
			return fmt.Errorf("shtick: capacity %v: %w", newCapacity, err)
		}
		s.setHeapCount(keep)
		return nil
	}

	// Build the allocation first; installing it overwrites the inline bytes.
	var (
		ptr      uintptr
		capacity count.Count16
	)
	if err := alloc.MutRawCapacity(&ptr, &capacity, newCapacity); err != nil {
		return fmt.Errorf("shtick: capacity %v: %w", newCapacity, err)
	}
	copy(alloc.RawBytes(ptr, capacity), s.inline()[:current.Int()])
	s.word, s.capacity, s.spare = ptr, capacity, [4]byte{}
	s.setHeapCount(current)
	return nil
}

// Drop releases the heap allocation, if any, and resets s to empty.
func (s *Shtick) Drop() {
	if s.IsAllocated() {
		ptr, capacity := s.word, s.capacity
		if err := alloc.MutRawCapacity(&ptr, &capacity, count.Count16{}); err != nil {
			panic(fmt.Sprintf("shtick: release: %v", err))
		}
	}
	*s = New()
}

// Clone returns an independent copy of s.
func (s *Shtick) Clone() (Shtick, error) {
	return fromValid(s.Bytes())
}

// Equal reports whether s and other hold the same bytes.
func (s *Shtick) Equal(other *Shtick) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// String returns the contents.
func (s Shtick) String() string {
	return string(s.Bytes())
}

// GoString renders s as the expression that rebuilds it.
func (s Shtick) GoString() string {
	return "shtick.Must(" + strconv.Quote(s.String()) + ")"
}
