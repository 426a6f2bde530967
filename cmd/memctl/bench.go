package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memcore/core/alloc"
	"github.com/joshuapare/memcore/core/array"
	"github.com/joshuapare/memcore/core/shtick"
	"github.com/joshuapare/memcore/internal/config"
	"github.com/joshuapare/memcore/internal/logger"
	"github.com/joshuapare/memcore/internal/rusage"
)

var (
	benchN       int
	benchBackend string
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Fill an array of shticks and report time and memory",
		Long: `The bench command pushes --n shticks, a mix of inline and heap-backed,
into an array on the chosen allocator backend, pops half of them, drops
the rest and reports timings, resource usage and allocator statistics.

Defaults come from the [bench] and [alloc] sections of memctl.toml.

Example:
  memctl bench
  memctl bench --n 1000000 --backend manual --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				benchN = cfg.Bench.N
			}
			if !cmd.Flags().Changed("backend") {
				benchBackend = cfg.Alloc.Backend
			}
			return runBench()
		},
	}
	cmd.Flags().IntVar(&benchN, "n", 0, "Number of shticks to push (default from config)")
	cmd.Flags().StringVar(&benchBackend, "backend", "", "Allocator backend: heap or manual (default from config)")
	return cmd
}

type benchResult struct {
	Backend       string        `json:"backend"`
	N             int           `json:"n"`
	Allocated     int           `json:"allocated"`
	Capacity      string        `json:"capacity"`
	Push          time.Duration `json:"push_ns"`
	Pop           time.Duration `json:"pop_ns"`
	Drop          time.Duration `json:"drop_ns"`
	PeakAllocs    int           `json:"peak_system_allocs"`
	LeakedAllocs  int           `json:"leaked_system_allocs"`
	Usage         rusage.Usage  `json:"usage"`
	UsageReported bool          `json:"usage_reported"`
}

func newBenchArray(backend string) (*array.Array[shtick.Shtick], error) {
	switch backend {
	case config.BackendHeap:
		return array.New[shtick.Shtick](), nil
	case config.BackendManual:
		m, err := alloc.NewManual[shtick.Shtick]()
		if err != nil {
			return nil, err
		}
		return array.NewWith[shtick.Shtick](m), nil
	}
	return nil, fmt.Errorf("%w: backend %q", config.ErrInvalid, backend)
}

// benchText alternates inline and heap-sized contents.
func benchText(i int) string {
	if i%2 == 0 {
		return strconv.Itoa(i)
	}
	return "heap-backed shtick #" + strconv.Itoa(i)
}

func runBench() error {
	if benchN <= 0 {
		return fmt.Errorf("%w: n %d must be positive", config.ErrInvalid, benchN)
	}
	a, err := newBenchArray(benchBackend)
	if err != nil {
		return err
	}
	defer a.Drop()

	logger.Info("bench start", "n", benchN, "backend", benchBackend)
	res := benchResult{Backend: benchBackend, N: benchN}
	before, usageErr := rusage.Self()
	baseline := alloc.SystemStats().Allocs

	start := time.Now()
	for i := range benchN {
		s, err := shtick.FromString(benchText(i))
		if err != nil {
			return err
		}
		if s.IsAllocated() {
			res.Allocated++
		}
		if err := a.Push(s); err != nil {
			s.Drop()
			return fmt.Errorf("push %d: %w", i, err)
		}
	}
	res.Push = time.Since(start)
	res.Capacity = a.Capacity().String()
	res.PeakAllocs = alloc.SystemStats().Allocs - baseline
	printVerbose("Pushed %d shticks, capacity %s\n", benchN, res.Capacity)

	start = time.Now()
	for range benchN / 2 {
		s, ok := a.Pop(array.PopLast)
		if !ok {
			break
		}
		s.Drop()
	}
	res.Pop = time.Since(start)

	start = time.Now()
	a.Drop()
	res.Drop = time.Since(start)
	res.LeakedAllocs = alloc.SystemStats().Allocs - baseline

	if usageErr == nil {
		after, err := rusage.Self()
		if err == nil {
			res.Usage = after.Sub(before)
			res.UsageReported = true
		}
	}
	if !res.UsageReported {
		logger.Warn("resource usage unavailable", "err", usageErr)
	}
	if res.LeakedAllocs != 0 {
		logger.Error("system allocations leaked", "count", res.LeakedAllocs)
	}
	logger.Info("bench done", "push", res.Push, "pop", res.Pop, "drop", res.Drop)

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nBench (%s backend, n=%d):\n", res.Backend, res.N)
	printInfo("  Heap-backed shticks: %d\n", res.Allocated)
	printInfo("  Final capacity: %s\n", res.Capacity)
	printInfo("  Push: %v (%v/op)\n", res.Push, res.Push/time.Duration(res.N))
	printInfo("  Pop half: %v\n", res.Pop)
	printInfo("  Drop: %v\n", res.Drop)
	printInfo("  Peak system allocations: %d\n", res.PeakAllocs)
	printInfo("  Leaked system allocations: %d\n", res.LeakedAllocs)
	if res.UsageReported {
		printInfo("  Max RSS: %.1f MB\n", float64(res.Usage.MaxRSS)/(1024*1024))
		printInfo("  CPU: user %v, system %v\n", res.Usage.UserTime, res.Usage.SystemTime)
	}
	return nil
}
