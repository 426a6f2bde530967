//go:build windows

package rusage

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

func filetimeDuration(ft windows.Filetime) time.Duration {
	// 100-nanosecond intervals.
	return time.Duration(int64(ft.HighDateTime)<<32|int64(ft.LowDateTime)) * 100
}

func self() (Usage, error) {
	h := windows.CurrentProcess()

	var mem windows.PROCESS_MEMORY_COUNTERS
	if err := windows.GetProcessMemoryInfo(h, &mem, uint32(unsafe.Sizeof(mem))); err != nil {
		return Usage{}, err
	}
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(h, &creation, &exit, &kernel, &user); err != nil {
		return Usage{}, err
	}
	return Usage{
		MaxRSS:     int64(mem.PeakWorkingSetSize),
		UserTime:   filetimeDuration(user),
		SystemTime: filetimeDuration(kernel),
	}, nil
}
