package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
	"github.com/msto63/iadate/pkg/iatime"
)

var (
	convertFrom  string
	convertTo    string
	convertScale string
)

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert between ticks, Unix time and dates",
	Long: `Converts a value between IA ticks, Unix timestamps and calendar dates.

--from selects the input: ticks, unix or date (dd-MM-yyyy).
--to selects the output: ticks, unix or calendar.
--scale sets the Unix resolution for --from unix: s, ms, us or ns.

Examples:
  iadate convert 1700000000 --from unix
  iadate convert 1700000000000 --from unix --scale ms --to calendar
  iadate convert 25-12-2024 --from date --to unix
  iadate convert 0 --to calendar`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertFrom, "from", "ticks", "input kind (ticks, unix, date)")
	convertCmd.Flags().StringVar(&convertTo, "to", "ticks", "output kind (ticks, unix, calendar)")
	convertCmd.Flags().StringVar(&convertScale, "scale", "s", "Unix resolution (s, ms, us, ns)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inst, err := convertInput(args[0])
	if err != nil {
		return err
	}
	kind, err := iatime.ParseResultKind(convertTo)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch kind {
	case iatime.ResultUnix:
		fmt.Fprintln(out, inst.Unix())
	case iatime.ResultCalendar:
		fmt.Fprintln(out, inst.Time().Format("2006-01-02T15:04:05Z07:00"))
	default:
		fmt.Fprintln(out, inst.Ticks())
	}
	return nil
}

func convertInput(value string) (iatime.Instant, error) {
	switch convertFrom {
	case "ticks", "":
		ticks, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return iatime.Instant{}, invalidNumber(value, err)
		}
		return iatime.FromTicks(ticks), nil
	case "unix":
		scale, err := iatime.ParseUnitScale(convertScale)
		if err != nil {
			return iatime.Instant{}, err
		}
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return iatime.Instant{}, invalidNumber(value, err)
		}
		return iatime.FromUnix(v, scale), nil
	case "date":
		return iatime.Parse(value)
	default:
		return iatime.Instant{}, mdwerror.Newf("unknown input kind %q", convertFrom).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.convert")
	}
}

func invalidNumber(value string, err error) error {
	return mdwerror.Wrap(err, "not an integer").
		WithCode(mdwerror.CodeInvalidInput).
		WithDetail("input", value)
}
