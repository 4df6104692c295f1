package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/pkg/core/config"
	"github.com/msto63/iadate/pkg/core/logging"
	"github.com/msto63/iadate/pkg/iatime"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLogger *mdwlog.Logger
	renderer  *iatime.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "iadate",
	Short: "iadate - IA time in five-minute ticks",
	Long: `iadate converts, formats and compares IA time.

IA time counts five-minute ticks since 2001-01-01 00:00 GMT. Instants can
be given as a tick count, as a dd-MM-yyyy date or as "now".

Examples:
  iadate now
  iadate convert 1700000000 --from unix --to calendar
  iadate add 2 month 31-01-2024
  iadate serve`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $IADATE_CONFIG or ./configs/iadate.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads configuration and wires the logger and renderer
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if verbose {
		appConfig.General.LogLevel = "debug"
	}

	appLogger = logging.NewLogger(logging.FromConfig(appConfig, "iadate"))
	iatime.SetLogger(appLogger)

	renderer, err = iatime.NewRenderer(appConfig.General.Locale)
	if err != nil {
		return err
	}
	appLogger.Debug("configuration loaded", mdwlog.Fields{
		"locale":   renderer.Locale(),
		"data_dir": appConfig.General.DataDir,
	})
	return nil
}

// parseInstant accepts "now", a tick count or a dd-MM-yyyy date
func parseInstant(value string) (iatime.Instant, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "now") {
		return iatime.Now(), nil
	}
	if ticks, err := strconv.ParseInt(value, 10, 64); err == nil {
		return iatime.FromTicks(ticks), nil
	}
	return iatime.Parse(value)
}

// instantArg returns the instant at args[idx], or now when absent
func instantArg(args []string, idx int) (iatime.Instant, error) {
	if idx < len(args) {
		return parseInstant(args[idx])
	}
	return iatime.Now(), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
