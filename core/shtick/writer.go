package shtick

import (
	"io"
	"unicode/utf8"
)

var (
	_ io.Writer       = (*Shtick)(nil)
	_ io.StringWriter = (*Shtick)(nil)
)

// Write appends p rune by rune, so s can be the target of fmt.Fprintf and
// io.Copy. Invalid UTF-8 in p is appended as utf8.RuneError. On error, n is
// the number of bytes of p consumed.
func (s *Shtick) Write(p []byte) (n int, err error) {
	for n < len(p) {
		r, size := utf8.DecodeRune(p[n:])
		if err := s.Push(r); err != nil {
			return n, err
		}
		n += size
	}
	return n, nil
}

// WriteString is Write for a string.
func (s *Shtick) WriteString(str string) (n int, err error) {
	for n < len(str) {
		r, size := utf8.DecodeRuneInString(str[n:])
		if err := s.Push(r); err != nil {
			return n, err
		}
		n += size
	}
	return n, nil
}

// WriteRune appends r and reports its encoded length.
func (s *Shtick) WriteRune(r rune) (int, error) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	if err := s.Push(r); err != nil {
		return 0, err
	}
	return utf8.RuneLen(r), nil
}
