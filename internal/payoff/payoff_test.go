package payoff

import (
	"math"
	"testing"

	"payoff-studio/internal/models"
)

func TestComputeAtPrice(t *testing.T) {
	tests := []struct {
		name  string
		leg   models.Leg
		price float64
		want  float64
	}{
		{
			name:  "long call in the money",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
			price: 550,
			want:  5000,
		},
		{
			name:  "long call out of the money",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
			price: 450,
			want:  0,
		},
		{
			name:  "long call at the strike",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
			price: 500,
			want:  0,
		},
		{
			name:  "short call in the money",
			leg:   models.Leg{Side: models.SideShort, Type: models.OptionCall, Quantity: 1, Strike: 520},
			price: 530,
			want:  -1000,
		},
		{
			name:  "long put in the money",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionPut, Quantity: 1, Strike: 500},
			price: 450,
			want:  5000,
		},
		{
			name:  "long put out of the money",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionPut, Quantity: 1, Strike: 500},
			price: 550,
			want:  0,
		},
		{
			name:  "short put scales with quantity",
			leg:   models.Leg{Side: models.SideShort, Type: models.OptionPut, Quantity: 3, Strike: 100},
			price: 90,
			want:  -3000,
		},
		{
			name:  "zero quantity",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionCall, Quantity: 0, Strike: 500},
			price: 600,
			want:  0,
		},
		{
			name:  "NaN quantity coerced to zero",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionCall, Quantity: math.NaN(), Strike: 500},
			price: 600,
			want:  0,
		},
		{
			name:  "infinite strike coerced to zero",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: math.Inf(1)},
			price: 600,
			want:  60000, // strike 0, fully in the money
		},
		{
			name:  "NaN price coerced to zero",
			leg:   models.Leg{Side: models.SideLong, Type: models.OptionPut, Quantity: 1, Strike: 50},
			price: math.NaN(),
			want:  5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAtPrice(tt.leg, tt.price)
			if got != tt.want {
				t.Errorf("ComputeAtPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeAtPrice_CallSpreadExample(t *testing.T) {
	// Call spread 500/520, sampled at 530: 3000 - 1000 = 2000.
	legs := []models.Leg{
		{Side: models.SideLong, Type: models.OptionCall, Quantity: 1, Strike: 500},
		{Side: models.SideShort, Type: models.OptionCall, Quantity: 1, Strike: 520},
	}
	var total float64
	for _, leg := range legs {
		total += ComputeAtPrice(leg, 530)
	}
	if total != 2000 {
		t.Errorf("call spread payoff at 530 = %v, want 2000", total)
	}
}

func TestBuildSeries_SampleCount(t *testing.T) {
	s := BuildSeries(nil, 500)
	if len(s.Xs) != Steps+1 {
		t.Fatalf("len(Xs) = %d, want %d", len(s.Xs), Steps+1)
	}
	if len(s.Ys) != Steps+1 {
		t.Fatalf("len(Ys) = %d, want %d", len(s.Ys), Steps+1)
	}
}

func TestBuildSeries_Window(t *testing.T) {
	s := BuildSeries(nil, 500)
	if s.MinS != 250 {
		t.Errorf("MinS = %v, want 250", s.MinS)
	}
	if s.MaxS != 750 {
		t.Errorf("MaxS = %v, want 750", s.MaxS)
	}
	if s.Xs[0] != s.MinS || s.Xs[len(s.Xs)-1] != s.MaxS {
		t.Errorf("Xs endpoints = [%v, %v], want [%v, %v]",
			s.Xs[0], s.Xs[len(s.Xs)-1], s.MinS, s.MaxS)
	}
}

func TestBuildSeries_SpotFallback(t *testing.T) {
	for _, spot := range []float64{0, -10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := BuildSeries(nil, spot)
		if s.MinS != 50 || s.MaxS != 150 {
			t.Errorf("spot %v: window [%v, %v], want [50, 150]", spot, s.MinS, s.MaxS)
		}
	}
}

func TestBuildSeries_PriceFloor(t *testing.T) {
	for _, spot := range []float64{0.5, 1, 1.5, 0.001} {
		s := BuildSeries(nil, spot)
		if s.MinS < 1 {
			t.Errorf("spot %v: MinS = %v, want >= 1", spot, s.MinS)
		}
		for i := 1; i < len(s.Xs); i++ {
			if s.Xs[i] <= s.Xs[i-1] {
				t.Fatalf("spot %v: Xs not strictly increasing at %d: %v <= %v",
					spot, i, s.Xs[i], s.Xs[i-1])
			}
		}
	}
}

func TestBuildSeries_EmptyLegs(t *testing.T) {
	s := BuildSeries(nil, 500)
	for i, y := range s.Ys {
		if y != 0 {
			t.Fatalf("Ys[%d] = %v, want 0 for empty legs", i, y)
		}
	}
}

func TestBuildSeries_Finite(t *testing.T) {
	legs := []models.Leg{
		{Side: models.SideLong, Type: models.OptionCall, Quantity: math.NaN(), Strike: math.Inf(1)},
		{Side: models.SideShort, Type: models.OptionPut, Quantity: 2, Strike: math.NaN()},
	}
	s := BuildSeries(legs, math.Inf(1))
	for i := range s.Xs {
		if math.IsNaN(s.Xs[i]) || math.IsInf(s.Xs[i], 0) {
			t.Fatalf("Xs[%d] = %v, not finite", i, s.Xs[i])
		}
		if math.IsNaN(s.Ys[i]) || math.IsInf(s.Ys[i], 0) {
			t.Fatalf("Ys[%d] = %v, not finite", i, s.Ys[i])
		}
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize(5, 1); got != 5 {
		t.Errorf("Sanitize(5, 1) = %v, want 5", got)
	}
	if got := Sanitize(math.NaN(), 7); got != 7 {
		t.Errorf("Sanitize(NaN, 7) = %v, want 7", got)
	}
	if got := Sanitize(math.Inf(-1), 7); got != 7 {
		t.Errorf("Sanitize(-Inf, 7) = %v, want 7", got)
	}
}
