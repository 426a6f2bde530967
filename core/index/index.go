// Package index resolves caller-supplied positions against a sequence count.
//
// An Index is one of four addressing modes:
//
//	Of(i)       zero-based; negative values wrap once from the end
//	InBounds(i) zero-based; must satisfy 0 <= i < count
//	Wrap(i)     zero-based; full modular wraparound
//	Ordinal(n)  one-based; n must be positive
//
// CheckOffset is the only resolution entry point. It is a pure function of the
// index and the count: the result is an offset plus whether acting on it would
// need the sequence to grow.
package index

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/memcore/core/count"
)

// Mode selects how an Index value is interpreted.
type Mode uint8

const (
	ModeOf Mode = iota
	ModeInBounds
	ModeWrap
	ModeOrdinal
)

var modeNames = [...]string{
	ModeOf:       "of",
	ModeInBounds: "inbounds",
	ModeWrap:     "wrap",
	ModeOrdinal:  "ordinal",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// ParseMode parses a mode name as printed by Mode.String. Case is ignored and
// "in-bounds" is accepted for InBounds.
func ParseMode(s string) (Mode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Index is a request to resolve a position against a count. The zero value is
// Of(0).
type Index struct {
	mode  Mode
	value int64
}

// Of is zero-based indexing with partial wraparound: Of(-1) is the last
// element and Of(-count) the first. Non-negative values are never rejected,
// values at or past the count resolve as growing the sequence.
func Of(i int64) Index { return Index{mode: ModeOf, value: i} }

// InBounds is zero-based indexing that never leaves the current bounds.
func InBounds(i int64) Index { return Index{mode: ModeInBounds, value: i} }

// Wrap is zero-based indexing with full wraparound in both directions.
func Wrap(i int64) Index { return Index{mode: ModeWrap, value: i} }

// Ordinal is one-based indexing: Ordinal(1) is the first element. Ordinals
// past the count resolve as growing the sequence.
func Ordinal(n int64) Index { return Index{mode: ModeOrdinal, value: n} }

// New builds an Index from a mode and value.
func New(mode Mode, value int64) Index { return Index{mode: mode, value: value} }

// Mode returns the addressing mode.
func (x Index) Mode() Mode { return x.mode }

// Value returns the raw position as supplied by the caller.
func (x Index) Value() int64 { return x.value }

func (x Index) String() string {
	return fmt.Sprintf("%s(%d)", x.mode, x.value)
}

// OffsetCheck is a resolved position.
type OffsetCheck struct {
	Offset count.Offset
	// IncreasesCount is true when the offset is at or past the current count.
	IncreasesCount bool
}

// InBoundsAt returns an OffsetCheck inside the current count.
func InBoundsAt(offset count.Offset) OffsetCheck {
	return OffsetCheck{Offset: offset}
}

// IncreasesCountAt returns an OffsetCheck that requires the sequence to grow.
func IncreasesCountAt(offset count.Offset) OffsetCheck {
	return OffsetCheck{Offset: offset, IncreasesCount: true}
}

// CheckOffset resolves x against a sequence of n elements.
//
// All comparisons are made against n.MaxOffset() (n - 1) so a count of
// 1<<63 resolves without overflow.
func (x Index) CheckOffset(n count.Count64) (OffsetCheck, error) {
	last := n.MaxOffset()
	v := x.value
	switch x.mode {
	case ModeOf:
		if v >= 0 {
			return OffsetCheck{Offset: v, IncreasesCount: v > last}, nil
		}
		// -count <= v, written without forming -count.
		if v >= -last-1 {
			return InBoundsAt((v + 1) + last), nil
		}
		return OffsetCheck{}, fmt.Errorf("%w: %v against count %v", ErrOutOfBounds, x, n)
	case ModeInBounds:
		if v >= 0 && v <= last {
			return InBoundsAt(v), nil
		}
		return OffsetCheck{}, fmt.Errorf("%w: %v against count %v", ErrOutOfBounds, x, n)
	case ModeWrap:
		if last < 0 {
			return OffsetCheck{}, fmt.Errorf("%w: %v", ErrEmptySequence, x)
		}
		if last == math.MaxInt64 {
			// count is 1<<63: the remainder is the low 63 bits.
			return InBoundsAt(v & math.MaxInt64), nil
		}
		size := last + 1
		r := v % size
		if r < 0 {
			r += size
		}
		return InBoundsAt(r), nil
	case ModeOrdinal:
		if v <= 0 {
			return OffsetCheck{}, fmt.Errorf("%w: %v", ErrInvalidOrdinal, x)
		}
		return OffsetCheck{Offset: v - 1, IncreasesCount: v-1 > last}, nil
	}
	panic(fmt.Sprintf("index: invalid mode %d", x.mode))
}

// Check resolves x against a count of any width.
func Check[C count.Width](x Index, n count.Count[C]) (OffsetCheck, error) {
	return x.CheckOffset(count.Widen(n))
}
