//go:build !linux && !freebsd && !darwin && !windows

package rusage

func self() (Usage, error) {
	return Usage{}, ErrUnsupported
}
