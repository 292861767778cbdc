package payoff

import (
	"gonum.org/v1/gonum/floats"

	"payoff-studio/internal/models"
)

// Analysis summarizes a sampled payoff curve over its window.
// Figures are intrinsic-only, consistent with the rest of the package.
type Analysis struct {
	Breakevens []float64 `json:"breakevens"`
	MaxProfit  float64   `json:"maxProfit"`
	MaxLoss    float64   `json:"maxLoss"`
	ProfitAt   float64   `json:"profitAt"`
	LossAt     float64   `json:"lossAt"`
}

// Analyze computes breakevens and max profit/loss from a series.
// Breakevens are found by linear interpolation between adjacent samples;
// extremes only reflect the sampled window, so an unbounded long call
// reports the profit at the window's upper edge, not infinity.
func Analyze(s Series) Analysis {
	a := Analysis{Breakevens: []float64{}}
	if len(s.Ys) == 0 {
		return a
	}

	maxIdx := floats.MaxIdx(s.Ys)
	minIdx := floats.MinIdx(s.Ys)
	a.MaxProfit = s.Ys[maxIdx]
	a.MaxLoss = s.Ys[minIdx]
	a.ProfitAt = s.Xs[maxIdx]
	a.LossAt = s.Xs[minIdx]

	appendBE := func(x float64) {
		// A curve touching zero exactly at a sample point produces the
		// same x from both adjacent pairs; keep it once.
		if n := len(a.Breakevens); n > 0 && a.Breakevens[n-1] == x {
			return
		}
		a.Breakevens = append(a.Breakevens, x)
	}

	for i := 1; i < len(s.Ys); i++ {
		y0, y1 := s.Ys[i-1], s.Ys[i]
		switch {
		case y0 == 0 && y1 == 0:
			// Flat zero stretch, not a crossing.
		case y0 == 0 && y1 != 0:
			appendBE(s.Xs[i-1])
		case y0 != 0 && y1 == 0:
			appendBE(s.Xs[i])
		case (y0 < 0) != (y1 < 0):
			t := -y0 / (y1 - y0)
			appendBE(s.Xs[i-1] + t*(s.Xs[i]-s.Xs[i-1]))
		}
	}

	return a
}

// Contributions returns each leg's payoff at the given price, in input
// order. Useful for per-row display next to the aggregate curve.
func Contributions(legs []models.Leg, price float64) []float64 {
	out := make([]float64, len(legs))
	for i, leg := range legs {
		out[i] = ComputeAtPrice(leg, price)
	}
	return out
}
