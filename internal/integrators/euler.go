package integrators

import "github.com/san-kum/dpend/internal/dynamo"

// Euler is the explicit first-order stepper, kept as a baseline for
// integrator comparisons.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, dt float64) dynamo.State {
	return advance(x, dyn.Derive(x), dt)
}
