package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/pkg/iatime"
)

var (
	relativeFormat  string
	relativeUnix    bool
	relativeCompact bool
)

var relativeCmd = &cobra.Command{
	Use:   "relative <value>",
	Short: "Describe an instant relative to now",
	Long: `Describes a tick count (or a Unix second with --unix) relative to now.

With --compact the argument is a relative phrase that is shortened instead.

Examples:
  iadate relative 210000
  iadate relative 1700000000 --unix --format text
  iadate relative --compact "in 3 days"`,
	Args: cobra.ExactArgs(1),
	RunE: runRelative,
}

func init() {
	rootCmd.AddCommand(relativeCmd)
	relativeCmd.Flags().StringVarP(&relativeFormat, "format", "f", "text", "output format (number, text)")
	relativeCmd.Flags().BoolVar(&relativeUnix, "unix", false, "value is a Unix second")
	relativeCmd.Flags().BoolVar(&relativeCompact, "compact", false, "shorten a relative phrase such as \"2 hours ago\"")
}

func runRelative(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if relativeCompact {
		v, err := iatime.CompactPhrase(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	}

	format, err := iatime.ParseFormat(relativeFormat)
	if err != nil {
		return err
	}
	value, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return invalidNumber(args[0], err)
	}

	var v string
	if relativeUnix {
		v, err = iatime.RelativeUnixTime(value, format)
	} else {
		v, err = iatime.RelativeIATime(value, format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}
