package cli

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"payoff-studio/internal/config"
	"payoff-studio/internal/logging"
	"payoff-studio/internal/quotes"
	"payoff-studio/internal/store"
	"payoff-studio/pkg/utils"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Provider quotes.Provider
	Store    store.StrategyStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	switch cfg.Provider.Mode {
	case "http":
		app.Provider = quotes.NewHTTPProvider(quotes.HTTPConfig{
			BaseURL: cfg.Provider.BaseURL,
			Timeout: time.Duration(cfg.Provider.TimeoutSec) * time.Second,
			Retry:   utils.DefaultRetryConfig(),
		}, logger)
		logger.Debug().Str("base_url", cfg.Provider.BaseURL).Msg("HTTP quote provider initialized")
	default:
		app.Provider = quotes.NewStaticProvider()
		logger.Debug().Msg("Static quote provider initialized")
	}

	dbPath := filepath.Join(config.DefaultConfigDir(), "payoff.db")
	strategyStore, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, saved strategies unavailable")
	} else {
		app.Store = strategyStore
		logger.Debug().Msg("SQLite store initialized")
	}

	rootCmd := &cobra.Command{
		Use:   "payoff-studio",
		Short: "Option-strategy payoff visualizer",
		Long: `Payoff Studio computes and renders option-strategy payoff diagrams.

Assemble option legs (long/short, call/put, quantity, strike), compute the
at-expiry intrinsic payoff across a price window around spot, and render
the curve as an SVG or terminal chart. 'serve' starts the browser UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/payoff-studio)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newQuoteCmd(app))
	rootCmd.AddCommand(newExpirationsCmd(app))
	rootCmd.AddCommand(newPayoffCmd(app))
	rootCmd.AddCommand(newStrategyCmd(app))
	rootCmd.AddCommand(newServeCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				_ = output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Payoff Studio v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Server")
			output.Printf("  Addr:     %s\n", app.Config.Server.Addr)
			output.Println()
			output.Bold("Provider")
			output.Printf("  Mode:     %s\n", app.Config.Provider.Mode)
			output.Printf("  Base URL: %s\n", app.Config.Provider.BaseURL)
			output.Println()
			output.Bold("Chart")
			output.Printf("  Size:     %.0fx%.0f (padding %.0f)\n",
				app.Config.Chart.Width, app.Config.Chart.Height, app.Config.Chart.Padding)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				_ = output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]bool{"valid": true})
			}
			output.Success("Configuration is valid")
			return nil
		},
	})

	return cmd
}
