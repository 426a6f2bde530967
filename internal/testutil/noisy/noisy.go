// Package noisy records construction and destruction of test values so tests
// can assert exactly when a container drops its elements.
package noisy

import (
	"fmt"

	"github.com/joshuapare/memcore/core/array"
	"github.com/joshuapare/memcore/core/shtick"
)

// Recorder collects noise lines. Not safe for concurrent use; give each test
// its own.
type Recorder struct {
	lines array.Array[shtick.Shtick]
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(format string, args ...any) {
	line := shtick.New()
	if _, err := fmt.Fprintf(&line, format, args...); err != nil {
		panic(fmt.Sprintf("noisy: record: %v", err))
	}
	if err := r.lines.Push(line); err != nil {
		line.Drop()
		panic(fmt.Sprintf("noisy: record: %v", err))
	}
}

// Noise returns the lines recorded since the last call and forgets them.
func (r *Recorder) Noise() []string {
	out := make([]string, 0, r.lines.Count().Int())
	for _, line := range r.lines.Slice() {
		out = append(out, line.String())
	}
	r.lines.Clear(array.DropCapacity)
	return out
}

// Noisy is a value that records "Noisy+(v)" when made by New and
// "Noisy-(v)" when dropped. The zero Noisy records nothing.
type Noisy struct {
	r *Recorder
	V uint8
}

// New records the construction of a Noisy holding v.
func New(r *Recorder, v uint8) Noisy {
	r.record("Noisy+(%d)", v)
	return Noisy{r: r, V: v}
}

// Drop records the destruction of n.
func (n *Noisy) Drop() {
	if n.r == nil {
		return
	}
	n.r.record("Noisy-(%d)", n.V)
	n.r = nil
}
