package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/miix-automations/website/internal/config"
	"github.com/miix-automations/website/internal/handlers"
	"github.com/miix-automations/website/internal/logger"
	"github.com/miix-automations/website/internal/server"
)

// appOptions is the fx graph of the running site.
func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		server.Module,
		handlers.Module,
	)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(appOptions())
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}
