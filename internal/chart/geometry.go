// Package chart converts sampled payoff series into drawable geometry.
package chart

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CommandKind distinguishes path drawing commands.
type CommandKind byte

const (
	MoveTo CommandKind = 'M'
	LineTo CommandKind = 'L'
)

// PathCommand is one drawing command in pixel space.
type PathCommand struct {
	Kind CommandKind
	X    float64
	Y    float64
}

// Bounds holds the axis ranges of a mapped series and the coordinate
// transforms needed to place overlays (zero line, spot marker) on the
// same axes without recomputing them.
type Bounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64

	// YZero is the pixel y-coordinate of payoff = 0.
	YZero float64

	XToPixel func(float64) float64
	YToPixel func(float64) float64
}

// MapSeries linearly maps parallel price/payoff series into pixel space.
// The y-range always includes 0 so the zero-payoff axis stays visible.
// Empty input returns an empty path and nil bounds. A flat series maps
// without producing non-finite coordinates: the zero-height range falls
// back to a divisor of 1.
func MapSeries(xs, ys []float64, width, height, padding float64) ([]PathCommand, *Bounds) {
	if len(xs) == 0 || len(ys) == 0 || len(xs) != len(ys) {
		return nil, nil
	}

	xMin := floats.Min(xs)
	xMax := floats.Max(xs)
	yMin := math.Min(0, floats.Min(ys))
	yMax := math.Max(0, floats.Max(ys))

	xSpan := xMax - xMin
	if xSpan == 0 {
		xSpan = 1
	}
	ySpan := yMax - yMin
	if ySpan == 0 {
		ySpan = 1
	}

	innerW := width - 2*padding
	innerH := height - 2*padding

	xToPixel := func(s float64) float64 {
		return padding + (s-xMin)/xSpan*innerW
	}
	// Drawing coordinates grow downward, so y is inverted.
	yToPixel := func(v float64) float64 {
		return padding + (1-(v-yMin)/ySpan)*innerH
	}

	path := make([]PathCommand, len(xs))
	for i := range xs {
		kind := LineTo
		if i == 0 {
			kind = MoveTo
		}
		path[i] = PathCommand{Kind: kind, X: xToPixel(xs[i]), Y: yToPixel(ys[i])}
	}

	bounds := &Bounds{
		XMin:     xMin,
		XMax:     xMax,
		YMin:     yMin,
		YMax:     yMax,
		YZero:    yToPixel(0),
		XToPixel: xToPixel,
		YToPixel: yToPixel,
	}
	return path, bounds
}
