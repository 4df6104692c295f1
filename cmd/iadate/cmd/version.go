package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// version needs no configuration
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		for _, c := range []string{"iatime", "cli", "live", "store"} {
			fmt.Fprintf(out, "  %-10s %s\n", c+":", version.ComponentVersion(c))
		}
		fmt.Fprintf(out, "  %-10s %s\n", "protocol:", version.Protocol)
		fmt.Fprintf(out, "  %-10s %s\n", "go:", runtime.Version())
		fmt.Fprintf(out, "  %-10s %s/%s\n", "os/arch:", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
