package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"payoff-studio/internal/chart"
	"payoff-studio/internal/models"
	"payoff-studio/internal/payoff"
	"payoff-studio/pkg/utils"
)

// parseLegSpec parses a leg flag of the form SIDE:TYPE:QTY:STRIKE[:EXPIRY],
// e.g. "LONG:CALL:1:500" or "SHORT:PUT:2:480:2026-12-18".
func parseLegSpec(spec string) (models.Leg, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 4 || len(parts) > 5 {
		return models.Leg{}, fmt.Errorf("invalid leg %q (want SIDE:TYPE:QTY:STRIKE[:EXPIRY])", spec)
	}

	side, err := models.ParseSide(parts[0])
	if err != nil {
		return models.Leg{}, err
	}
	typ, err := models.ParseOptionType(parts[1])
	if err != nil {
		return models.Leg{}, err
	}
	qty, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return models.Leg{}, fmt.Errorf("invalid quantity in leg %q: %w", spec, err)
	}
	strike, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.Leg{}, fmt.Errorf("invalid strike in leg %q: %w", spec, err)
	}

	leg := models.Leg{
		Side:     side,
		Type:     typ,
		Quantity: payoff.Sanitize(qty, 0),
		Strike:   payoff.Sanitize(strike, 0),
	}
	if len(parts) == 5 {
		leg.Expiry = parts[4]
	}
	return leg, nil
}

// resolveSpot picks the spot price: an explicit --spot wins, otherwise
// the quote provider is asked. Returns 0 (series falls back to its
// default window) when neither is available.
func resolveSpot(ctx context.Context, app *App, output *Output, symbol string, spot float64) float64 {
	if spot > 0 {
		return spot
	}
	if symbol == "" {
		return 0
	}

	quote, err := app.Provider.GetQuote(ctx, symbol)
	if err != nil {
		output.Warning("Quote lookup failed for %s: %v", symbol, err)
		output.Dim("Falling back to the default price window")
		return 0
	}
	return quote.Price
}

func newPayoffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Compute and display a payoff diagram",
		Long: `Compute the at-expiry intrinsic payoff of a set of option legs and
render it as a terminal diagram, JSON series, or SVG file.

Payoffs exclude premium: they are exercise values, not net returns.`,
		Example: `  payoff-studio payoff --leg LONG:CALL:1:500 --spot 500
  payoff-studio payoff --leg LONG:CALL:1:500 --leg SHORT:CALL:1:520 --symbol SPY
  payoff-studio payoff --leg LONG:PUT:2:480 --spot 500 --svg out.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			legSpecs, _ := cmd.Flags().GetStringArray("leg")
			spot, _ := cmd.Flags().GetFloat64("spot")
			symbol, _ := cmd.Flags().GetString("symbol")
			svgPath, _ := cmd.Flags().GetString("svg")

			legs := make([]models.Leg, 0, len(legSpecs))
			for _, spec := range legSpecs {
				leg, err := parseLegSpec(spec)
				if err != nil {
					output.Error("%v", err)
					return err
				}
				legs = append(legs, leg)
			}

			spot = resolveSpot(ctx, app, output, strings.ToUpper(symbol), spot)
			series := payoff.BuildSeries(legs, spot)
			analysis := payoff.Analyze(series)

			if svgPath != "" {
				svg := chart.RenderSVG(series, spot, chart.Options{
					Width:   app.Config.Chart.Width,
					Height:  app.Config.Chart.Height,
					Padding: app.Config.Chart.Padding,
				})
				if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
					output.Error("Failed to write SVG: %v", err)
					return err
				}
				output.Success("Chart written to %s", svgPath)
			}

			if output.IsJSON() {
				return output.JSON(struct {
					payoff.Series
					Analysis payoff.Analysis `json:"analysis"`
				}{series, analysis})
			}

			displayPayoff(output, legs, series, analysis)
			return nil
		},
	}

	cmd.Flags().StringArray("leg", nil, "leg as SIDE:TYPE:QTY:STRIKE[:EXPIRY] (repeatable)")
	cmd.Flags().Float64("spot", 0, "spot price (skips quote lookup)")
	cmd.Flags().String("symbol", "", "underlying symbol for quote lookup")
	cmd.Flags().String("svg", "", "write the chart as SVG to this file")

	return cmd
}

func displayPayoff(output *Output, legs []models.Leg, series payoff.Series, analysis payoff.Analysis) {
	output.Bold("Payoff Diagram")
	output.Println()
	for _, line := range chart.RenderASCII(series, 64, 16) {
		output.Println(line)
	}
	output.Println()

	if len(legs) > 0 {
		table := NewTable(output, "Side", "Type", "Qty", "Strike", "Expiry")
		for _, leg := range legs {
			table.AddRow(
				string(leg.Side),
				string(leg.Type),
				utils.FormatQuantity(leg.Quantity),
				utils.FormatPrice(leg.Strike),
				leg.Expiry,
			)
		}
		table.Render()
		output.Println()
	}

	if len(analysis.Breakevens) > 0 {
		bes := make([]string, len(analysis.Breakevens))
		for i, be := range analysis.Breakevens {
			bes[i] = utils.FormatPrice(be)
		}
		output.Printf("  Breakevens: %s\n", strings.Join(bes, ", "))
	}
	output.Printf("  Max Profit (window): %s at %s\n",
		output.FormatPnL(analysis.MaxProfit), utils.FormatPrice(analysis.ProfitAt))
	output.Printf("  Max Loss (window):   %s at %s\n",
		output.FormatPnL(analysis.MaxLoss), utils.FormatPrice(analysis.LossAt))
}

func newQuoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quote <symbol>",
		Short: "Fetch the spot price for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			quote, err := app.Provider.GetQuote(ctx, symbol)
			if err != nil {
				output.Error("Quote lookup failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(quote)
			}
			output.Printf("%s  %s\n", quote.Symbol, utils.FormatPrice(quote.Price))
			return nil
		},
	}
}

func newExpirationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "expirations <symbol>",
		Short: "List option expirations for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			symbol := strings.ToUpper(args[0])
			exps, err := app.Provider.GetExpirations(ctx, symbol)
			if err != nil {
				output.Error("Expirations lookup failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"symbol": symbol, "expirations": exps})
			}
			output.Bold("Expirations - %s", symbol)
			for _, e := range exps {
				output.Printf("  %s\n", e)
			}
			return nil
		},
	}
}
