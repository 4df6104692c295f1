package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/iadate/foundation/core/log"
	"github.com/msto63/iadate/internal/live"
	"github.com/msto63/iadate/pkg/core/health"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the live IA time over HTTP and websocket",
	Long: `Starts the live server.

Endpoints:
  GET /api/v1/health   health check
  GET /api/v1/now      current tick, date and fields (?ticks=, ?format=)
  GET /ws              stream of tick updates

Examples:
  iadate serve
  iadate serve --addr :8300`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := appConfig.Server.Addr()
	if serveAddr != "" {
		addr = serveAddr
	}

	hub := live.NewHub(appConfig.Live.BufferSize, appLogger)
	poller := live.NewPoller(appConfig.Live.Period.Duration, hub, live.WithLogger(appLogger))
	server := live.NewServer(live.ServerConfig{
		Addr:         addr,
		ReadTimeout:  appConfig.Server.ReadTimeout.Duration,
		WriteTimeout: appConfig.Server.WriteTimeout.Duration,
	}, hub, renderer, appLogger)

	marks, err := openMarks()
	if err != nil {
		return err
	}
	defer marks.Close()
	server.Health().Register(health.PingCheck("store", marks.Ping))

	go func() {
		if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
			appLogger.ErrorWithErr("poller stopped", err)
		}
	}()

	appLogger.Info("starting live server", mdwlog.String("addr", addr))
	if err := server.ListenAndServe(ctx); err != nil {
		printError("server", err)
		return err
	}
	return nil
}
