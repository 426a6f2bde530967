package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memcore/core/index"
)

var indexCount string

func init() {
	rootCmd.AddCommand(newIndexCmd())
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <of|inbounds|wrap|ordinal> <value>",
		Short: "Resolve an index against a count",
		Long: `The index command resolves a position against a sequence of --count
elements and reports the zero-based offset, or why the position is invalid.

Negative values must follow "--" so they are not read as flags.

Example:
  memctl index of 2 --count 5
  memctl index --count 5 wrap -- -1
  memctl index ordinal 9 --count 9223372036854775808 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(args)
		},
	}
	cmd.Flags().StringVarP(&indexCount, "count", "n", "0", "Number of elements in the sequence")
	return cmd
}

type indexResult struct {
	Index          string `json:"index"`
	Count          string `json:"count"`
	Offset         int64  `json:"offset"`
	IncreasesCount bool   `json:"increases_count"`
}

func runIndex(args []string) error {
	mode, err := index.ParseMode(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid index value %q: %w", args[1], err)
	}
	n, err := parseCount[int64](indexCount)
	if err != nil {
		return err
	}

	x := index.New(mode, value)
	printVerbose("Resolving %v against count %v\n", x, n)

	chk, err := x.CheckOffset(n)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(indexResult{
			Index:          x.String(),
			Count:          n.String(),
			Offset:         chk.Offset,
			IncreasesCount: chk.IncreasesCount,
		})
	}

	where := "in bounds"
	if chk.IncreasesCount {
		where = "past the end"
	}
	printInfo("%v against count %v: offset %d (%s)\n", x, n, chk.Offset, where)
	return nil
}
