package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/lerenn/workdeck/cmd/workdeck/internal/cli"
	"github.com/lerenn/workdeck/pkg/api"
	"github.com/lerenn/workdeck/pkg/logger"
	"github.com/spf13/cobra"
)

var serveRetry bool

func createServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve [--retry]",
		Short: "Start the application and serve the local API",
		Long: `Start the application: restore the last session, launch the embedded
editor server and serve the local HTTP API until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			application, cfg, err := cli.BuildApp()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			started, err := application.Start(ctx, serveRetry)
			if err != nil {
				return err
			}
			if started.ProjectID != "" {
				cli.Successf("Restored project %s", started.ProjectID)
			}

			server, err := api.NewServer(api.Params{
				Addr:   cfg.APIAddr,
				App:    application,
				Logger: logger.NewPrefixedLogger("api", cli.NewLogger()),
			})
			if err != nil {
				return err
			}

			serveErr := server.Serve(ctx)

			// The serve context is cancelled at this point; tear down on a
			// fresh one so the stop pipeline can finish.
			handle, err := application.Stop(context.Background(), true)
			if err != nil {
				return err
			}
			if _, err := handle.Result(context.Background()); err != nil {
				return err
			}

			if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
				return serveErr
			}
			return nil
		},
	}

	serveCmd.Flags().BoolVar(&serveRetry, "retry", false, "Retry a previously failed start")

	return serveCmd
}
