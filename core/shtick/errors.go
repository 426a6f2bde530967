package shtick

import "errors"

var (
	// ErrTooLarge indicates the length would exceed MaxCount bytes.
	ErrTooLarge = errors.New("shtick: too large")

	// ErrInvalidUTF8 indicates bytes that are not valid UTF-8 were offered to
	// a constructor. Allocation failures are returned wrapped and match
	// alloc.ErrOutOfMemory.
	ErrInvalidUTF8 = errors.New("shtick: invalid utf-8")
)
