package count

import "errors"

var (
	// ErrTooHigh indicates a value exceeds the maximum magnitude of the count width.
	ErrTooHigh = errors.New("count: magnitude too high")

	// ErrNegative indicates a negative value where a magnitude was required.
	ErrNegative = errors.New("count: negative magnitude")
)
