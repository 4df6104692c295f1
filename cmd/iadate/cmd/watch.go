package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/iadate/internal/live"
	"github.com/msto63/iadate/internal/tui/clock"
	"github.com/msto63/iadate/pkg/iatime"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"clock"},
	Short:   "Show a live IA clock in the terminal",
	Long: `Starts a terminal clock that follows the current IA tick.

Shortcuts:
  p         pause/resume
  f         toggle text/number fields
  q, Esc    quit`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := live.NewHub(appConfig.Live.BufferSize, appLogger)
	defer hub.Close()
	poller := live.NewPoller(appConfig.Live.Period.Duration, hub, live.WithLogger(appLogger))
	go poller.Run(ctx)

	return clock.Run(clock.Config{
		Hub:       hub,
		Renderer:  renderer,
		Describer: iatime.NewDescriber(),
	})
}
