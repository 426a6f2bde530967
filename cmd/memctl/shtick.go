package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/joshuapare/memcore/core/count"
	"github.com/joshuapare/memcore/core/shtick"
)

var (
	shtickPush     string
	shtickCapacity string
	shtickEncoding string
)

func init() {
	rootCmd.AddCommand(newShtickCmd())
}

func newShtickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shtick <text>",
		Short: "Build a Shtick and show its representation",
		Long: `The shtick command builds a Shtick from text, optionally changes its
capacity and pushes more characters, then reports whether it is inline or
heap-backed along with its count, capacity and tag.

With --encoding the bytes of <text> are decoded from that legacy encoding
(any WHATWG label, such as windows-1252 or iso-8859-2) first.

Example:
  memctl shtick "hello"
  memctl shtick 0123456789abcd --push e
  memctl shtick "a long string that lives on the heap" --capacity 8
  memctl shtick hi --json -v`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShtick(args)
		},
	}
	cmd.Flags().StringVar(&shtickPush, "push", "", "Characters to push one at a time after construction")
	cmd.Flags().StringVar(&shtickCapacity, "capacity", "", "Capacity to set before pushing")
	cmd.Flags().StringVar(&shtickEncoding, "encoding", "", "Decode <text> from this encoding")
	return cmd
}

type shtickResult struct {
	Text      string `json:"text"`
	Debug     string `json:"debug"`
	Allocated bool   `json:"allocated"`
	Count     int    `json:"count"`
	Capacity  int    `json:"capacity"`
	Tag       int16  `json:"tag"`
	Raw       string `json:"raw,omitempty"`
}

func buildShtick(text string) (shtick.Shtick, error) {
	if shtickEncoding == "" {
		return shtick.FromString(text)
	}
	enc, err := htmlindex.Get(shtickEncoding)
	if err != nil {
		return shtick.Shtick{}, fmt.Errorf("unknown encoding %q: %w", shtickEncoding, err)
	}
	return shtick.Decode([]byte(text), enc)
}

func runShtick(args []string) error {
	s, err := buildShtick(args[0])
	if err != nil {
		return err
	}
	defer s.Drop()
	printVerbose("Built %d bytes, allocated=%t\n", s.Count().Int(), s.IsAllocated())

	if shtickCapacity != "" {
		capacity, err := parseCount[int16](shtickCapacity)
		if err != nil {
			return err
		}
		if err := s.MutCapacity(capacity); err != nil {
			return err
		}
		printVerbose("Capacity set to %v, allocated=%t\n", s.Capacity(), s.IsAllocated())
	}

	for _, r := range shtickPush {
		if err := s.Push(r); err != nil {
			return fmt.Errorf("push %q: %w", r, err)
		}
		printVerbose("Pushed %q: count=%v capacity=%v\n", r, s.Count(), s.Capacity())
	}

	return printShtick(&s)
}

func representation(s *shtick.Shtick) string {
	if s.IsAllocated() {
		return "heap"
	}
	return "inline"
}

func printShtick(s *shtick.Shtick) error {
	raw, tag := s.Layout()
	res := shtickResult{
		Text:      s.String(),
		Debug:     s.GoString(),
		Allocated: s.IsAllocated(),
		Count:     s.Count().Int(),
		Capacity:  s.Capacity().Int(),
		Tag:       tag,
	}
	if verbose {
		res.Raw = hex.EncodeToString(raw[:])
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s\n", res.Debug)
	printInfo("  Representation: %s\n", representation(s))
	printInfo("  Count: %d of %v\n", res.Count, count.Of16(shtick.MaxCount))
	printInfo("  Capacity: %d\n", res.Capacity)
	printInfo("  Tag: %d\n", res.Tag)
	printVerbose("  Raw: % x\n", raw[:])
	return nil
}
