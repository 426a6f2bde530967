// Package rusage reports process resource usage for memctl bench.
package rusage

import (
	"errors"
	"time"
)

// ErrUnsupported is returned on platforms without a usage source.
var ErrUnsupported = errors.New("rusage: unsupported platform")

// Usage is a snapshot of the current process.
type Usage struct {
	MaxRSS     int64         `json:"max_rss_bytes"`
	UserTime   time.Duration `json:"user_ns"`
	SystemTime time.Duration `json:"system_ns"`
}

// Self returns the usage of the calling process.
func Self() (Usage, error) {
	return self()
}

// Sub returns the time spent between before and u. MaxRSS is a high-water
// mark and is taken from u unchanged.
func (u Usage) Sub(before Usage) Usage {
	return Usage{
		MaxRSS:     u.MaxRSS,
		UserTime:   u.UserTime - before.UserTime,
		SystemTime: u.SystemTime - before.SystemTime,
	}
}
