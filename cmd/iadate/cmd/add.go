package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/pkg/iatime"
)

var addTicks bool

var addCmd = &cobra.Command{
	Use:   "add <n> <unit> [instant]",
	Short: "Add a number of units to an instant",
	Long: `Adds n units to an instant and prints the result.

Units: tick, hour, day, week, month, year. Month and year additions clamp to
the end of the month, so 31-01-2024 plus one month is 29-02-2024.

Examples:
  iadate add 3 day
  iadate add -- -2 week 15-03-2024
  iadate add 1 month 31-01-2024`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().BoolVar(&addTicks, "ticks", false, "print only the tick count")
}

func runAdd(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return invalidNumber(args[0], err)
	}
	unit, err := iatime.ParseUnit(args[1])
	if err != nil {
		return err
	}
	inst, err := instantArg(args, 2)
	if err != nil {
		return err
	}

	if err := inst.Add(n, unit); err != nil {
		return err
	}

	if addTicks {
		fmt.Fprintln(cmd.OutOrStdout(), inst.Ticks())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), inst.String())
	return nil
}
