package payoff

import (
	"math"
	"testing"

	"payoff-studio/internal/models"
)

func TestAnalyze_CallSpread(t *testing.T) {
	legs := []models.Leg{
		{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
		{Side: models.SideShort, Type: models.OptionCall, Quantity: 1, Strike: 520},
	}
	s := BuildSeries(legs, 500)
	a := Analyze(s)

	// Intrinsic-only spread: flat zero below 500, then rises to a 2000 cap.
	if a.MaxLoss != 0 {
		t.Errorf("MaxLoss = %v, want 0", a.MaxLoss)
	}
	if a.MaxProfit != 2000 {
		t.Errorf("MaxProfit = %v, want 2000", a.MaxProfit)
	}
	if len(a.Breakevens) != 1 {
		t.Fatalf("Breakevens = %v, want exactly one", a.Breakevens)
	}
	if math.Abs(a.Breakevens[0]-500) > 3 {
		t.Errorf("breakeven = %v, want ~500 (within one sample step)", a.Breakevens[0])
	}
}

func TestAnalyze_ShortStraddle(t *testing.T) {
	legs := []models.Leg{
		{Side: models.SideShort, Type: models.OptionCall, Quantity: 1, Strike: 100},
		{Side: models.SideShort, Type: models.OptionPut, Quantity: 1, Strike: 100},
	}
	s := BuildSeries(legs, 100)
	a := Analyze(s)

	// Peak of zero exactly at the strike, losses on both sides.
	if a.MaxProfit != 0 {
		t.Errorf("MaxProfit = %v, want 0", a.MaxProfit)
	}
	if a.MaxLoss >= 0 {
		t.Errorf("MaxLoss = %v, want negative", a.MaxLoss)
	}
	if len(a.Breakevens) == 0 {
		t.Error("expected at least one breakeven at the strike touch point")
	}
}

func TestAnalyze_EmptySeries(t *testing.T) {
	a := Analyze(Series{})
	if len(a.Breakevens) != 0 || a.MaxProfit != 0 || a.MaxLoss != 0 {
		t.Errorf("Analyze(empty) = %+v, want zero value", a)
	}
}

func TestAnalyze_FlatZeroCurve(t *testing.T) {
	s := BuildSeries(nil, 500)
	a := Analyze(s)
	if len(a.Breakevens) != 0 {
		t.Errorf("flat zero curve breakevens = %v, want none", a.Breakevens)
	}
	if a.MaxProfit != 0 || a.MaxLoss != 0 {
		t.Errorf("flat zero curve extremes = (%v, %v), want (0, 0)", a.MaxProfit, a.MaxLoss)
	}
}

func TestContributions(t *testing.T) {
	legs := []models.Leg{
		{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
		{Side: models.SideShort, Type: models.OptionCall, Quantity: 1, Strike: 520},
	}
	got := Contributions(legs, 530)
	if len(got) != 2 || got[0] != 3000 || got[1] != -1000 {
		t.Errorf("Contributions = %v, want [3000 -1000]", got)
	}
}
