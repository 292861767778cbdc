package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"payoff-studio/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the payoff web UI and JSON API",
		Long: `Start the HTTP server: the leg-editor page on /, plus
/api/quote, /api/expirations, /api/payoff, /api/chart.svg and
/api/strategies. Stops cleanly on SIGINT/SIGTERM.`,
		Example: `  payoff-studio serve
  payoff-studio serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			serverCfg := app.Config.Server
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				serverCfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(serverCfg, app.Config.Chart, app.Provider, app.Store, app.Logger)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (overrides config)")
	return cmd
}
