package payoff

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"payoff-studio/internal/models"
)

// legGen generates legs with realistic quantities and strikes.
func legGen() gopter.Gen {
	return gen.Struct(reflect.TypeOf(models.Leg{}), map[string]gopter.Gen{
		"Side":     gen.OneConstOf(models.SideLong, models.SideShort),
		"Type":     gen.OneConstOf(models.OptionCall, models.OptionPut),
		"Quantity": gen.Float64Range(0, 100),
		"Strike":   gen.Float64Range(0, 2000),
	})
}

func legSliceGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, legGen())
}

func TestProperty_ZeroQuantityZeroPayoff(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("zero-quantity legs pay zero at every price", prop.ForAll(
		func(leg models.Leg, price float64) bool {
			leg.Quantity = 0
			return ComputeAtPrice(leg, price) == 0
		},
		legGen(),
		gen.Float64Range(0, 5000),
	))

	properties.TestingRun(t)
}

func TestProperty_CallSlope(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("call is zero at or below strike, linear above", prop.ForAll(
		func(leg models.Leg, below, above float64) bool {
			leg.Type = models.OptionCall
			if ComputeAtPrice(leg, leg.Strike-below) != 0 {
				return false
			}
			got := ComputeAtPrice(leg, leg.Strike+above)
			want := leg.Side.Sign() * leg.Quantity * above * ContractMultiplier
			return math.Abs(got-want) < 1e-6*(1+math.Abs(want))
		},
		legGen(),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 1000),
	))

	properties.Property("put mirrors below the strike", prop.ForAll(
		func(leg models.Leg, above, below float64) bool {
			leg.Type = models.OptionPut
			if ComputeAtPrice(leg, leg.Strike+above) != 0 {
				return false
			}
			got := ComputeAtPrice(leg, leg.Strike-below)
			want := leg.Side.Sign() * leg.Quantity * below * ContractMultiplier
			return math.Abs(got-want) < 1e-6*(1+math.Abs(want))
		},
		legGen(),
		gen.Float64Range(0, 1000),
		gen.Float64Range(0, 1000),
	))

	properties.TestingRun(t)
}

func TestProperty_SeriesShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("series always has 201 strictly increasing finite samples", prop.ForAll(
		func(legs []models.Leg, spot float64) bool {
			s := BuildSeries(legs, spot)
			if len(s.Xs) != Steps+1 || len(s.Ys) != Steps+1 {
				return false
			}
			if s.MinS < 1 {
				return false
			}
			for i := range s.Xs {
				if math.IsNaN(s.Ys[i]) || math.IsInf(s.Ys[i], 0) {
					return false
				}
				if i > 0 && s.Xs[i] <= s.Xs[i-1] {
					return false
				}
			}
			return true
		},
		legSliceGen(6),
		gen.Float64Range(-100, 10000),
	))

	properties.TestingRun(t)
}
