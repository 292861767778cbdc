package chart

import (
	"fmt"
	"math"
	"strings"

	"payoff-studio/internal/payoff"
)

// Options controls SVG rendering dimensions.
type Options struct {
	Width   float64
	Height  float64
	Padding float64
}

// DefaultOptions returns the default chart dimensions.
func DefaultOptions() Options {
	return Options{Width: 640, Height: 360, Padding: 24}
}

// PathData encodes path commands as an SVG path "d" attribute.
func PathData(cmds []PathCommand) string {
	var b strings.Builder
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c%.2f,%.2f", c.Kind, c.X, c.Y)
	}
	return b.String()
}

// RenderSVG renders a payoff series as a standalone SVG document with the
// payoff curve, the zero-payoff axis, window price labels, and a marker
// at the spot price when one is available inside the window. An empty
// series renders as an empty chart frame.
func RenderSVG(s payoff.Series, spot float64, opt Options) string {
	if opt.Width <= 0 || opt.Height <= 0 {
		opt = DefaultOptions()
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`,
		opt.Width, opt.Height, opt.Width, opt.Height)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>`)

	path, bounds := MapSeries(s.Xs, s.Ys, opt.Width, opt.Height, opt.Padding)
	if bounds != nil {
		// Zero-payoff reference axis.
		fmt.Fprintf(&b,
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#999999" stroke-dasharray="4 3"/>`,
			opt.Padding, bounds.YZero, opt.Width-opt.Padding, bounds.YZero)

		fmt.Fprintf(&b,
			`<path d="%s" fill="none" stroke="#2563eb" stroke-width="2"/>`,
			PathData(path))

		spot = payoff.Sanitize(spot, 0)
		if spot >= bounds.XMin && spot <= bounds.XMax {
			x := bounds.XToPixel(spot)
			fmt.Fprintf(&b,
				`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#dc2626" stroke-dasharray="2 2"/>`,
				x, opt.Padding, x, opt.Height-opt.Padding)
			fmt.Fprintf(&b,
				`<circle cx="%.2f" cy="%.2f" r="3" fill="#dc2626"/>`,
				x, bounds.YZero)
		}

		labelY := opt.Height - opt.Padding/4
		fmt.Fprintf(&b,
			`<text x="%.2f" y="%.2f" font-size="11" fill="#555555">%s</text>`,
			opt.Padding, labelY, formatLabel(bounds.XMin))
		fmt.Fprintf(&b,
			`<text x="%.2f" y="%.2f" font-size="11" fill="#555555" text-anchor="end">%s</text>`,
			opt.Width-opt.Padding, labelY, formatLabel(bounds.XMax))
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func formatLabel(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
