package integrators

import "github.com/san-kum/dpend/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta stepper. Every stage is a
// fresh value, so Step is a pure function of (dyn, x, dt).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, dt float64) dynamo.State {
	k1 := dyn.Derive(x)
	k2 := dyn.Derive(advance(x, k1, dt/2))
	k3 := dyn.Derive(advance(x, k2, dt/2))
	k4 := dyn.Derive(advance(x, k3, dt))

	return dynamo.State{
		A1: x.A1 + (k1.A1+2*k2.A1+2*k3.A1+k4.A1)*dt/6,
		A2: x.A2 + (k1.A2+2*k2.A2+2*k3.A2+k4.A2)*dt/6,
		P1: x.P1 + (k1.P1+2*k2.P1+2*k3.P1+k4.P1)*dt/6,
		P2: x.P2 + (k1.P2+2*k2.P2+2*k3.P2+k4.P2)*dt/6,
	}
}

// advance returns x + k·h field by field.
func advance(x, k dynamo.State, h float64) dynamo.State {
	return dynamo.State{
		A1: x.A1 + k.A1*h,
		A2: x.A2 + k.A2*h,
		P1: x.P1 + k.P1*h,
		P2: x.P2 + k.P2*h,
	}
}
