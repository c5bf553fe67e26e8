package physics

import (
	"math"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/rng"
)

// Generate draws a resting initial condition with both angles in
// [π/2, 3π/2): a1 first, then a2.
func Generate(r *rng.SplitMix64) dynamo.State {
	return GenerateWithin(r, math.Pi/2, math.Pi)
}

// GenerateWithin draws both angles as uniform·width + lo with zero momenta.
func GenerateWithin(r *rng.SplitMix64, lo, width float64) dynamo.State {
	a1 := r.Uniform()*width + lo
	a2 := r.Uniform()*width + lo
	return dynamo.State{A1: a1, A2: a2}
}
