package index

import "errors"

// These are the only errors meant for end consumers resolving arbitrary,
// possibly untrusted positions. Callers must handle all three.
var (
	// ErrEmptySequence indicates a wrapping index against an empty sequence.
	ErrEmptySequence = errors.New("index: empty sequence")

	// ErrOutOfBounds indicates a position outside the addressable range.
	ErrOutOfBounds = errors.New("index: out of bounds")

	// ErrInvalidOrdinal indicates a one-based position that is zero or negative.
	ErrInvalidOrdinal = errors.New("index: invalid ordinal")

	// ErrUnknownMode indicates an unrecognized addressing mode name.
	ErrUnknownMode = errors.New("index: unknown mode")
)
