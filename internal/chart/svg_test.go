package chart

import (
	"strings"
	"testing"

	"payoff-studio/internal/models"
	"payoff-studio/internal/payoff"
)

func straddleSeries() payoff.Series {
	legs := []models.Leg{
		{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
		{Side: models.SideLong, Type: models.OptionPut, Quantity: 1, Strike: 500},
	}
	return payoff.BuildSeries(legs, 500)
}

func TestRenderSVG(t *testing.T) {
	svg := RenderSVG(straddleSeries(), 500, DefaultOptions())

	for _, want := range []string{"<svg", "</svg>", "<path d=\"M", "stroke-dasharray"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	// Spot marker appears because 500 is inside the window.
	if !strings.Contains(svg, "<circle") {
		t.Error("SVG missing spot marker")
	}
}

func TestRenderSVG_SpotOutsideWindow(t *testing.T) {
	svg := RenderSVG(straddleSeries(), 10000, DefaultOptions())
	if strings.Contains(svg, "<circle") {
		t.Error("spot marker drawn outside the price window")
	}
}

func TestRenderSVG_EmptySeries(t *testing.T) {
	svg := RenderSVG(payoff.Series{}, 0, DefaultOptions())
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty series should still render a valid SVG frame")
	}
	if strings.Contains(svg, "<path") {
		t.Error("empty series should not render a curve")
	}
}

func TestRenderSVG_ZeroOptionsDefaulted(t *testing.T) {
	svg := RenderSVG(straddleSeries(), 500, Options{})
	if !strings.Contains(svg, `width="640"`) {
		t.Error("zero options should fall back to default dimensions")
	}
}

func TestPathData(t *testing.T) {
	cmds := []PathCommand{
		{Kind: MoveTo, X: 1, Y: 2},
		{Kind: LineTo, X: 3.5, Y: 4.25},
	}
	got := PathData(cmds)
	want := "M1.00,2.00 L3.50,4.25"
	if got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
}

func TestRenderASCII(t *testing.T) {
	lines := RenderASCII(straddleSeries(), 64, 16)
	if len(lines) < 16 {
		t.Fatalf("got %d lines, want at least 16", len(lines))
	}

	var hasCurve, hasAxis bool
	for _, line := range lines {
		if strings.ContainsRune(line, '•') {
			hasCurve = true
		}
		if strings.Contains(line, "0 │") {
			hasAxis = true
		}
	}
	if !hasCurve {
		t.Error("ASCII chart has no curve points")
	}
	if !hasAxis {
		t.Error("ASCII chart has no zero-axis label")
	}

	last := lines[len(lines)-1]
	if !strings.Contains(last, "Price") {
		t.Errorf("last line %q missing price labels", last)
	}
}

func TestRenderASCII_EmptySeries(t *testing.T) {
	lines := RenderASCII(payoff.Series{}, 64, 16)
	if len(lines) != 1 || lines[0] != "(no data)" {
		t.Errorf("RenderASCII(empty) = %v, want [(no data)]", lines)
	}
}

func TestRenderASCII_FlatCurve(t *testing.T) {
	// Empty legs: flat zero line must render without panicking.
	lines := RenderASCII(payoff.BuildSeries(nil, 500), 64, 16)
	if len(lines) == 0 {
		t.Fatal("no output for flat curve")
	}
}
