package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/joshuapare/memcore/core/count"
)

// parseCount parses a decimal magnitude for width C, including the one value
// past the signed maximum that a Count can hold.
func parseCount[C count.Width](s string) (count.Count[C], error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return count.Count[C]{}, fmt.Errorf("invalid count %q: %w", s, err)
	}
	if maxCount := count.Max[C](); u == maxCount.Uint64() {
		return maxCount, nil
	}
	if u > math.MaxInt {
		return count.Count[C]{}, fmt.Errorf("%w: %s > %v", count.ErrTooHigh, s, count.Max[C]())
	}
	return count.FromInt[C](int(u))
}
