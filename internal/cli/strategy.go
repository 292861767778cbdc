package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"payoff-studio/internal/models"
	"payoff-studio/internal/payoff"
	"payoff-studio/pkg/utils"
)

func newStrategyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Option strategy presets and saved strategies",
		Long:  "Build strategies from presets, save them, and render saved strategies.",
	}

	cmd.AddCommand(newStrategyListCmd())
	cmd.AddCommand(newStrategyBuildCmd(app))
	cmd.AddCommand(newStrategySavedCmd(app))
	cmd.AddCommand(newStrategyShowCmd(app))
	cmd.AddCommand(newStrategyDeleteCmd(app))

	return cmd
}

func newStrategyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available strategy presets",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				_ = output.JSON(payoff.Presets())
				return
			}
			output.Bold("Available Strategy Presets")
			output.Println()
			for _, p := range payoff.Presets() {
				output.Printf("  %-18s %s\n", output.Cyan(string(p.Name)), p.Description)
			}
		},
	}
}

func newStrategyBuildCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <preset>",
		Short: "Build a strategy from a preset and display its payoff",
		Example: `  payoff-studio strategy build straddle --atm 500
  payoff-studio strategy build iron-condor --atm 500 --width 20 --save my-condor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			atm, _ := cmd.Flags().GetFloat64("atm")
			width, _ := cmd.Flags().GetFloat64("width")
			expiry, _ := cmd.Flags().GetString("expiry")
			symbol, _ := cmd.Flags().GetString("symbol")
			saveName, _ := cmd.Flags().GetString("save")

			symbol = strings.ToUpper(symbol)
			if atm <= 0 && symbol != "" {
				if quote, err := app.Provider.GetQuote(ctx, symbol); err == nil {
					atm = quote.Price
				}
			}

			legs, err := payoff.BuildPreset(payoff.Preset(args[0]), atm, width, expiry)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			series := payoff.BuildSeries(legs, atm)
			analysis := payoff.Analyze(series)

			if saveName != "" {
				if app.Store == nil {
					return fmt.Errorf("strategy store unavailable")
				}
				st := &models.Strategy{Name: saveName, Symbol: symbol, Legs: legs}
				if err := app.Store.SaveStrategy(ctx, st); err != nil {
					output.Error("Failed to save strategy: %v", err)
					return err
				}
				output.Success("Saved as %q (%s)", saveName, st.ID)
			}

			if output.IsJSON() {
				return output.JSON(struct {
					Legs []models.Leg `json:"legs"`
					payoff.Series
					Analysis payoff.Analysis `json:"analysis"`
				}{legs, series, analysis})
			}

			displayPayoff(output, legs, series, analysis)
			return nil
		},
	}

	cmd.Flags().Float64("atm", 0, "at-the-money strike (falls back to symbol quote)")
	cmd.Flags().Float64("width", 0, "wing spacing (default 5% of ATM)")
	cmd.Flags().String("expiry", "", "expiry attached to every leg")
	cmd.Flags().String("symbol", "", "underlying symbol")
	cmd.Flags().String("save", "", "save the built strategy under this name")

	return cmd
}

func newStrategySavedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("strategy store unavailable")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			list, err := app.Store.ListStrategies(ctx)
			if err != nil {
				output.Error("Failed to list strategies: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(list)
			}
			if len(list) == 0 {
				output.Dim("No saved strategies")
				return nil
			}

			table := NewTable(output, "ID", "Name", "Symbol", "Legs", "Updated")
			for _, st := range list {
				table.AddRow(st.ID, st.Name, st.Symbol,
					fmt.Sprintf("%d", len(st.Legs)),
					st.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			table.Render()
			return nil
		},
	}
}

func newStrategyShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Render a saved strategy's payoff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("strategy store unavailable")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			st, err := app.Store.GetStrategyByName(ctx, args[0])
			if err != nil {
				output.Error("Failed to load strategy: %v", err)
				return err
			}

			spot, _ := cmd.Flags().GetFloat64("spot")
			spot = resolveSpot(ctx, app, output, st.Symbol, spot)

			series := payoff.BuildSeries(st.Legs, spot)
			analysis := payoff.Analyze(series)

			if output.IsJSON() {
				return output.JSON(struct {
					*models.Strategy
					payoff.Series
					Analysis payoff.Analysis `json:"analysis"`
				}{st, series, analysis})
			}

			output.Bold("%s (%s)", st.Name, st.Symbol)
			if spot > 0 {
				output.Printf("  Spot: %s\n", utils.FormatPrice(spot))
			}
			output.Println()
			displayPayoff(output, st.Legs, series, analysis)
			return nil
		},
	}

	cmd.Flags().Float64("spot", 0, "spot price (skips quote lookup)")
	return cmd
}

func newStrategyDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if app.Store == nil {
				return fmt.Errorf("strategy store unavailable")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			st, err := app.Store.GetStrategyByName(ctx, args[0])
			if err != nil {
				output.Error("Failed to load strategy: %v", err)
				return err
			}
			if err := app.Store.DeleteStrategy(ctx, st.ID); err != nil {
				output.Error("Failed to delete strategy: %v", err)
				return err
			}
			output.Success("Deleted %q", st.Name)
			return nil
		},
	}
}
