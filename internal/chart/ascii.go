package chart

import (
	"fmt"
	"strings"

	"payoff-studio/internal/payoff"
)

// RenderASCII renders a payoff series as a terminal diagram of the given
// character dimensions. The curve reuses the same geometry mapping as
// the SVG renderer, just on a rune grid. Returns one string per row.
func RenderASCII(s payoff.Series, cols, rows int) []string {
	if cols < 20 {
		cols = 60
	}
	if rows < 5 {
		rows = 15
	}

	// Map onto cell centers so the extremes land on the first and last
	// rows instead of one past them.
	path, bounds := MapSeries(s.Xs, s.Ys, float64(cols-1), float64(rows-1), 0)
	if bounds == nil {
		return []string{"(no data)"}
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	plot := func(x, y float64, ch rune) {
		c := int(x + 0.5)
		r := int(y + 0.5)
		if c < 0 || c >= cols || r < 0 || r >= rows {
			return
		}
		grid[r][c] = ch
	}

	zeroRow := int(bounds.YZero + 0.5)
	if zeroRow >= 0 && zeroRow < rows {
		for c := 0; c < cols; c++ {
			grid[zeroRow][c] = '─'
		}
	}
	for _, cmd := range path {
		plot(cmd.X, cmd.Y, '•')
	}

	lines := make([]string, 0, rows+2)
	for r, row := range grid {
		label := "       "
		switch r {
		case zeroRow:
			label = "     0 "
		case 0:
			label = "Profit "
		case rows - 1:
			label = "Loss   "
		}
		lines = append(lines, label+"│"+string(row))
	}
	lines = append(lines, "       └"+strings.Repeat("─", cols))

	lo := formatLabel(bounds.XMin)
	hi := formatLabel(bounds.XMax)
	gap := cols - len(lo) - len(hi) - len("  Price")
	if gap < 1 {
		gap = 1
	}
	lines = append(lines, fmt.Sprintf("        %s%s%s  Price", lo, strings.Repeat(" ", gap), hi))
	return lines
}
