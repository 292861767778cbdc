package chart

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// seriesGen generates parallel xs/ys slices with increasing xs.
func seriesGen() gopter.Gen {
	return gen.SliceOf(gen.Float64Range(-1e6, 1e6)).Map(func(ys []float64) [][]float64 {
		xs := make([]float64, len(ys))
		for i := range xs {
			xs[i] = 1 + float64(i)*2.5
		}
		return [][]float64{xs, ys}
	})
}

func TestProperty_MappedCoordinatesFinite(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("all pixel coordinates are finite and inside the padded box", prop.ForAll(
		func(series [][]float64) bool {
			xs, ys := series[0], series[1]
			path, bounds := MapSeries(xs, ys, 640, 360, 24)
			if len(xs) == 0 {
				return path == nil && bounds == nil
			}
			if bounds == nil {
				return false
			}
			if bounds.YMin > 0 || bounds.YMax < 0 {
				return false
			}
			const eps = 1e-6
			for _, cmd := range path {
				if math.IsNaN(cmd.X) || math.IsInf(cmd.X, 0) ||
					math.IsNaN(cmd.Y) || math.IsInf(cmd.Y, 0) {
					return false
				}
				if cmd.X < 24-eps || cmd.X > 640-24+eps {
					return false
				}
				if cmd.Y < 24-eps || cmd.Y > 360-24+eps {
					return false
				}
			}
			return true
		},
		seriesGen(),
	))

	properties.TestingRun(t)
}
