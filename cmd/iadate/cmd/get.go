package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/pkg/iatime"
)

var (
	getFormat  string
	nextFormat string
	nextResult string
)

var getCmd = &cobra.Command{
	Use:   "get <field> [instant]",
	Short: "Render one calendar field of an instant",
	Long: `Renders a calendar field of an instant as a number or as text.

Fields: hour, day, weekOfMonth, weekOfYear, month, year.

Examples:
  iadate get month --format text
  iadate get weekOfYear 31-12-2024`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGet,
}

var nextCmd = &cobra.Command{
	Use:   "next <field> [instant]",
	Short: "Show the instant one field unit later",
	Long: `Advances the instant by one unit of the field and prints the result.

--result selects ticks, unix or calendar. For calendar the advanced field is
rendered with --format.

Examples:
  iadate next day
  iadate next month 31-01-2024 --result calendar --format text`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNext,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(nextCmd)

	getCmd.Flags().StringVarP(&getFormat, "format", "f", "number", "output format (number, text)")
	nextCmd.Flags().StringVarP(&nextFormat, "format", "f", "number", "field format for calendar results (number, text)")
	nextCmd.Flags().StringVarP(&nextResult, "result", "r", "ticks", "result kind (ticks, unix, calendar)")
}

func runGet(cmd *cobra.Command, args []string) error {
	field, err := iatime.ParseField(args[0])
	if err != nil {
		return err
	}
	format, err := iatime.ParseFormat(getFormat)
	if err != nil {
		return err
	}
	inst, err := instantArg(args, 1)
	if err != nil {
		return err
	}

	v, err := renderer.Get(inst, field, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	field, err := iatime.ParseField(args[0])
	if err != nil {
		return err
	}
	format, err := iatime.ParseFormat(nextFormat)
	if err != nil {
		return err
	}
	kind, err := iatime.ParseResultKind(nextResult)
	if err != nil {
		return err
	}
	inst, err := instantArg(args, 1)
	if err != nil {
		return err
	}

	v, err := renderer.NextValue(inst, field, kind, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}
