package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/memcore/core/count"
)

var (
	growWidth int
	growFrom  string
	growMin   string
)

func init() {
	rootCmd.AddCommand(newGrowCmd())
}

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Print the capacity growth sequence for a count width",
		Long: `The grow command prints the capacities an allocation passes through when
it keeps doubling from --from, never below --min, until it saturates at the
largest count of the chosen width.

Example:
  memctl grow --width 8
  memctl grow --width 16 --from 14 --min 32
  memctl grow --width 64 --from 1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow()
		},
	}
	cmd.Flags().IntVarP(&growWidth, "width", "w", 64, "Count width in bits (8, 16, 32 or 64)")
	cmd.Flags().StringVar(&growFrom, "from", "0", "Starting capacity")
	cmd.Flags().StringVar(&growMin, "min", "2", "Minimum capacity after each step")
	return cmd
}

type growResult struct {
	Width      int      `json:"width"`
	Max        string   `json:"max"`
	Capacities []string `json:"capacities"`
}

// growSequence follows DoubleOrMax from from until it stops growing.
func growSequence[C count.Width](from, minValue string) ([]string, error) {
	c, err := parseCount[C](from)
	if err != nil {
		return nil, err
	}
	m, err := parseCount[C](minValue)
	if err != nil {
		return nil, err
	}
	seq := []string{c.String()}
	for {
		next := c.DoubleOrMax(m)
		if !c.Less(next) {
			return seq, nil
		}
		seq = append(seq, next.String())
		c = next
	}
}

func runGrow() error {
	var (
		seq     []string
		maxText string
		err     error
	)
	switch growWidth {
	case 8:
		seq, err = growSequence[int8](growFrom, growMin)
		maxText = count.Max[int8]().String()
	case 16:
		seq, err = growSequence[int16](growFrom, growMin)
		maxText = count.Max[int16]().String()
	case 32:
		seq, err = growSequence[int32](growFrom, growMin)
		maxText = count.Max[int32]().String()
	case 64:
		seq, err = growSequence[int64](growFrom, growMin)
		maxText = count.Max[int64]().String()
	default:
		return fmt.Errorf("invalid width %d: want 8, 16, 32 or 64", growWidth)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(growResult{Width: growWidth, Max: maxText, Capacities: seq})
	}

	printInfo("Width %d (max %s), %d steps:\n", growWidth, maxText, len(seq)-1)
	for _, c := range seq {
		printInfo("  %s\n", c)
	}
	return nil
}
