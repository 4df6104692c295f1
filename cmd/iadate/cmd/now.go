package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/foundation/utils/timex"
	"github.com/msto63/iadate/pkg/iatime"
)

var (
	nowFormat string
	nowStyle  string
	nowTicks  bool
)

var nowCmd = &cobra.Command{
	Use:   "now [instant]",
	Short: "Show the current IA time",
	Long: `Shows the current IA tick with its date and calendar fields.

An instant (tick count or dd-MM-yyyy date) can be given instead of now.

Examples:
  iadate now
  iadate now --ticks
  iadate now 31-01-2024 --style full --format text`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)
	nowCmd.Flags().StringVarP(&nowFormat, "format", "f", "number", "field format (number, text)")
	nowCmd.Flags().StringVarP(&nowStyle, "style", "s", "medium", "date style (short, medium, long, full)")
	nowCmd.Flags().BoolVar(&nowTicks, "ticks", false, "print only the tick count")
}

func runNow(cmd *cobra.Command, args []string) error {
	inst, err := instantArg(args, 0)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if nowTicks {
		fmt.Fprintln(out, inst.Ticks())
		return nil
	}

	format, err := iatime.ParseFormat(nowFormat)
	if err != nil {
		return err
	}
	style, err := timex.ParseStyle(nowStyle)
	if err != nil {
		return err
	}
	date, err := renderer.FormatStyle(inst, style)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("IA %d", inst.Ticks())))
	fmt.Fprintln(out, row("date", date))
	fmt.Fprintln(out, row("unix", fmt.Sprintf("%d", inst.Unix())))

	fields := []iatime.Field{
		iatime.FieldHour,
		iatime.FieldDay,
		iatime.FieldWeekOfMonth,
		iatime.FieldWeekOfYear,
		iatime.FieldMonth,
		iatime.FieldYear,
	}
	for _, f := range fields {
		v, err := renderer.Get(inst, f, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, row(f.String(), v))
	}
	return nil
}
