package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/pkg/iatime"
)

var (
	betweenFormat string
	betweenUnit   string
)

var betweenCmd = &cobra.Command{
	Use:   "between <instant> <instant>",
	Short: "Describe the time between two instants",
	Long: `Describes the distance between two instants, in either order.

Examples:
  iadate between 01-01-2024 15-03-2024
  iadate between 0 now --format number
  iadate between 0 2016 --unit day`,
	Args: cobra.ExactArgs(2),
	RunE: runBetween,
}

func init() {
	rootCmd.AddCommand(betweenCmd)
	betweenCmd.Flags().StringVarP(&betweenFormat, "format", "f", "text", "output format (number, text)")
	betweenCmd.Flags().StringVarP(&betweenUnit, "unit", "u", "auto", "unit for the tick span (tick, hour, day, week, month, year, auto)")
}

func runBetween(cmd *cobra.Command, args []string) error {
	a, err := parseInstant(args[0])
	if err != nil {
		return err
	}
	b, err := parseInstant(args[1])
	if err != nil {
		return err
	}
	format, err := iatime.ParseFormat(betweenFormat)
	if err != nil {
		return err
	}
	unit, err := iatime.ParseUnit(betweenUnit)
	if err != nil {
		return err
	}

	desc, err := iatime.TimeBetween(a, b, format)
	if err != nil {
		return err
	}

	span := b.Ticks() - a.Ticks()
	if span < 0 {
		span = -span
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, row("between", desc))
	fmt.Fprintln(out, row("span", iatime.FormatSpan(span, unit)))
	fmt.Fprintln(out, row("same day", fmt.Sprintf("%t", iatime.IsSameDay(a, b))))
	return nil
}
