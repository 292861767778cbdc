// Package payoff implements intrinsic option payoff computation.
//
// All payoffs are at-expiry intrinsic values. Premium paid or received is
// deliberately excluded; breakevens and profit figures therefore describe
// the exercise value of the position, not its net return.
package payoff

import (
	"math"

	"payoff-studio/internal/models"
)

const (
	// ContractMultiplier encodes the one-contract-equals-100-shares convention.
	ContractMultiplier = 100.0

	// Steps is the number of equal partitions of the sampling window,
	// giving Steps+1 sample points.
	Steps = 200

	// fallbackCenter centers the sampling window when no usable spot
	// price is available yet.
	fallbackCenter = 100.0

	// floorPrice keeps the window's lower bound away from non-positive,
	// economically meaningless prices.
	floorPrice = 1.0
)

// Sanitize returns v if it is finite, otherwise fallback. Every numeric
// input crosses this boundary so NaN and Inf never reach a computation.
func Sanitize(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Intrinsic returns the exercise value of an option at underlying price s.
func Intrinsic(typ models.OptionType, strike, s float64) float64 {
	if typ == models.OptionPut {
		return math.Max(0, strike-s)
	}
	return math.Max(0, s-strike)
}

// ComputeAtPrice returns the signed dollar payoff of one leg at expiry.
// The function is total: any real inputs produce a finite result.
func ComputeAtPrice(leg models.Leg, price float64) float64 {
	qty := Sanitize(leg.Quantity, 0)
	strike := Sanitize(leg.Strike, 0)
	s := Sanitize(price, 0)
	return leg.Side.Sign() * qty * Intrinsic(leg.Type, strike, s) * ContractMultiplier
}

// Series holds a sampled aggregate payoff curve. Xs is strictly
// increasing and Ys[i] is the payoff at Xs[i].
type Series struct {
	Xs   []float64 `json:"xs"`
	Ys   []float64 `json:"ys"`
	MinS float64   `json:"minS"`
	MaxS float64   `json:"maxS"`
}

// BuildSeries samples the aggregate payoff of legs over a price window
// centered on spot. A non-positive or non-finite spot falls back to a
// center of 100 so the curve stays usable before a live quote arrives.
// An empty leg list yields a flat zero curve.
func BuildSeries(legs []models.Leg, spot float64) Series {
	center := Sanitize(spot, 0)
	if center <= 0 {
		center = fallbackCenter
	}

	minS := math.Max(floorPrice, center*0.5)
	maxS := center * 1.5
	if maxS <= minS {
		// Tiny spots can put the whole [0.5x, 1.5x] window under the
		// price floor. Widen upward so Xs stays strictly increasing.
		maxS = minS + floorPrice
	}
	step := (maxS - minS) / Steps

	xs := make([]float64, Steps+1)
	ys := make([]float64, Steps+1)
	for i := 0; i <= Steps; i++ {
		s := minS + step*float64(i)
		var total float64
		for _, leg := range legs {
			total += ComputeAtPrice(leg, s)
		}
		xs[i] = s
		ys[i] = total
	}

	return Series{Xs: xs, Ys: ys, MinS: minS, MaxS: maxS}
}
