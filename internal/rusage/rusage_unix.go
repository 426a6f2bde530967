//go:build linux || freebsd || darwin

package rusage

import (
	"runtime"
	"time"

	"golang.org/x/sys/unix"
)

func self() (Usage, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return Usage{}, err
	}
	maxRSS := int64(ru.Maxrss)
	// Darwin reports bytes, the others kilobytes.
	if runtime.GOOS != "darwin" {
		maxRSS *= 1024
	}
	return Usage{
		MaxRSS:     maxRSS,
		UserTime:   time.Duration(ru.Utime.Nano()),
		SystemTime: time.Duration(ru.Stime.Nano()),
	}, nil
}
