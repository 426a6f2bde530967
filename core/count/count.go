package count

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Offset is a zero-based position within a sequence. It may be negative while
// an index is being resolved.
type Offset = int64

// Width is the set of signed storage types a Count can use.
type Width interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Count is a non-negative magnitude stored as its negation in C.
type Count[C Width] struct {
	negated C
}

type (
	Count8  = Count[int8]
	Count16 = Count[int16]
	Count32 = Count[int32]
	Count64 = Count[int64]
)

// minStored returns the most negative value of C.
func minStored[C Width]() C {
	var zero C
	bits := unsafe.Sizeof(zero) * 8
	return C(-1) << (bits - 1)
}

// Of returns the count with the given magnitude. It panics if value < 0.
func Of[C Width](value C) Count[C] {
	if value < 0 {
		panic(fmt.Sprintf("count: negative magnitude %d", value))
	}
	return Count[C]{negated: -value}
}

func Of8(value int8) Count8    { return Of(value) }
func Of16(value int16) Count16 { return Of(value) }
func Of32(value int32) Count32 { return Of(value) }
func Of64(value int64) Count64 { return Of(value) }

// Negated returns the count whose stored form is stored. It panics if
// stored > 0.
func Negated[C Width](stored C) Count[C] {
	if stored > 0 {
		panic(fmt.Sprintf("count: positive stored value %d", stored))
	}
	return Count[C]{negated: stored}
}

// Max returns the largest magnitude representable with width C.
func Max[C Width]() Count[C] {
	return Count[C]{negated: minStored[C]()}
}

// FromInt converts value into a Count of width C.
func FromInt[C Width](value int) (Count[C], error) {
	if value < 0 {
		return Count[C]{}, fmt.Errorf("%w: %d", ErrNegative, value)
	}
	if uint64(value) > Max[C]().Uint64() {
		return Count[C]{}, fmt.Errorf("%w: %d > %v", ErrTooHigh, value, Max[C]())
	}
	return Count[C]{negated: C(-value)}, nil
}

// Widen converts a count of any width to a Count64 with the same magnitude.
func Widen[C Width](c Count[C]) Count64 {
	return Count64{negated: int64(c.negated)}
}

// AsNegated returns the stored (negated) form.
func (c Count[C]) AsNegated() C {
	return c.negated
}

// Uint64 returns the magnitude. It is exact for every width, including
// Max[int64]() which is 1<<63.
func (c Count[C]) Uint64() uint64 {
	return -uint64(int64(c.negated))
}

// Int returns the magnitude as an int. It panics if the magnitude does not fit.
func (c Count[C]) Int() int {
	u := c.Uint64()
	if u > math.MaxInt {
		panic(fmt.Sprintf("count: %d overflows int", u))
	}
	return int(u)
}

// IsZero reports whether the count is 0.
func (c Count[C]) IsZero() bool {
	return c.negated == 0
}

// MaxOffset returns the greatest valid zero-based offset, count - 1.
// It is -1 for an empty count.
func (c Count[C]) MaxOffset() Offset {
	return -(int64(c.negated) + 1)
}

// Contains reports whether 0 <= offset <= MaxOffset().
func (c Count[C]) Contains(offset Offset) bool {
	return offset >= 0 && offset <= c.MaxOffset()
}

// Compare returns -1, 0 or +1 comparing the magnitudes of c and other.
func (c Count[C]) Compare(other Count[C]) int {
	return cmp.Compare(other.negated, c.negated)
}

// Less reports whether c has a smaller magnitude than other.
func (c Count[C]) Less(other Count[C]) bool {
	return c.negated > other.negated
}

// DoubleOrMax returns max(minValue, 2*c), or Max when c is already more than
// half of Max.
func (c Count[C]) DoubleOrMax(minValue Count[C]) Count[C] {
	if c.negated < minStored[C]()/2 {
		return Max[C]()
	}
	doubled := Count[C]{negated: c.negated * 2}
	if doubled.Less(minValue) {
		return minValue
	}
	return doubled
}

// Inc returns c + 1. It panics at Max.
func (c Count[C]) Inc() Count[C] {
	if c.negated == minStored[C]() {
		panic(fmt.Sprintf("count: increment past maximum %v", c))
	}
	return Count[C]{negated: c.negated - 1}
}

// Dec returns c - 1. It panics at zero.
func (c Count[C]) Dec() Count[C] {
	if c.negated == 0 {
		panic("count: decrement below zero")
	}
	return Count[C]{negated: c.negated + 1}
}

// Add returns c + delta, failing if the result leaves the width's range.
func (c Count[C]) Add(delta int) (Count[C], error) {
	if delta >= 0 {
		room := Max[C]().Uint64() - c.Uint64()
		if uint64(delta) > room {
			return c, fmt.Errorf("%w: %v + %d", ErrTooHigh, c, delta)
		}
		// C(delta) may wrap to the minimum for a delta of exactly Max; the
		// subtraction wraps back to the correct stored value.
		return Count[C]{negated: c.negated - C(delta)}, nil
	}
	magnitude := uint64(-(delta + 1)) + 1
	if magnitude > c.Uint64() {
		return c, fmt.Errorf("%w: %v - %d", ErrNegative, c, magnitude)
	}
	return Count[C]{negated: c.negated + C(magnitude)}, nil
}

// String renders the magnitude in decimal.
func (c Count[C]) String() string {
	return strconv.FormatUint(c.Uint64(), 10)
}
