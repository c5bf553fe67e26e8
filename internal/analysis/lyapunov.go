package analysis

import (
	"math"

	"github.com/san-kum/dpend/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// two-trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Perturb a1 by d0 and step both trajectories together
// 2. After every step add ln(|δx|/d0) and pull the companion back to
// distance d0 along δx
// 3. λ ≈ Σ ln(|δx|/d0) / (steps·dt)
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt float64,
	steps int,
	d0 float64,
) float64 {
	if steps <= 0 || dt <= 0 || d0 <= 0 {
		return 0
	}

	x := x0
	xp := x0
	xp.A1 += d0

	sumLog := 0.0
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, dt)
		xp = integ.Step(dyn, xp, dt)

		sep := xp.Sub(x).Norm()
		if sep == 0 || math.IsNaN(sep) || math.IsInf(sep, 0) {
			continue
		}
		sumLog += math.Log(sep / d0)

		xp = x.Add(xp.Sub(x).Scale(d0 / sep))
	}

	return sumLog / (float64(steps) * dt)
}
