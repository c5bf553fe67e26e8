package physics

import (
	"math"

	"github.com/san-kum/dpend/internal/dynamo"
)

// Physical constants of the point-mass double pendulum.
const (
	G  = 3.0
	M1 = 1.5
	M2 = 1.0
	L1 = 1.0
	L2 = 1.25
)

// Derive returns the Hamiltonian vector field (da1, da2, dp1, dp2) of the
// point-mass double pendulum in its widely circulated closed form. Its c2
// cross term carries coefficient 1 where the exact Hamiltonian has 2; see
// Canonical.
//
// Degenerate inputs are not guarded: non-finite results follow IEEE-754.
func Derive(s dynamo.State) dynamo.State {
	return derive(s, 1)
}

// Energy is the total mechanical energy, with the angle rates taken from
// Derive.
func Energy(s dynamo.State) float64 {
	return energy(s, Derive(s))
}

func derive(s dynamo.State, cross float64) dynamo.State {
	a1, a2, p1, p2 := s.A1, s.A2, s.P1, s.P2

	cos12 := math.Cos(a1 - a2)
	sin12 := math.Sin(a1 - a2)
	den := M1 + M2*sin12*sin12

	c1 := (p1 * p2 * sin12) / (L1 * L2 * den)
	c2 := math.Sin(2*(a1-a2)) *
		(L2*L2*M2*p1*p1 + L1*L1*(M1+M2)*p2*p2 - cross*L1*L2*M2*p1*p2*cos12) /
		(2 * L1 * L1 * L2 * L2 * den * den)

	return dynamo.State{
		A1: (L2*p1 - L1*p2*cos12) / (L1 * L1 * L2 * den),
		A2: (L1*(M1+M2)*p2 - L2*M2*p1*cos12) / (L1 * L2 * L2 * M2 * den),
		P1: -(M1+M2)*G*L1*math.Sin(a1) - c1 + c2,
		P2: -M2*G*L2*math.Sin(a2) + c1 - c2,
	}
}

// energy evaluates PE + KE given the angle rates d.A1, d.A2.
func energy(s dynamo.State, d dynamo.State) float64 {
	pe := -(M1+M2)*G*L1*math.Cos(s.A1) - M2*G*L2*math.Cos(s.A2)
	ke := M1/2*L1*L1*d.A1*d.A1 +
		M2/2*(L1*L1*d.A1*d.A1+
			L2*L2*d.A2*d.A2+
			2*L1*L2*d.A1*d.A2*math.Cos(s.A1-s.A2))
	return pe + ke
}

// DoublePendulum is the point-mass model built on Derive and Energy.
type DoublePendulum struct{}

func NewDoublePendulum() *DoublePendulum {
	return &DoublePendulum{}
}

func (d *DoublePendulum) Derive(x dynamo.State) dynamo.State { return Derive(x) }
func (d *DoublePendulum) Energy(x dynamo.State) float64      { return Energy(x) }
func (d *DoublePendulum) Lengths() (float64, float64)        { return L1, L2 }
func (d *DoublePendulum) Params() map[string]float64         { return pointParams() }

// Canonical is the point-mass model with the exact Hamiltonian cross term
// (coefficient 2). Its energy is a true invariant of the flow, so RK4 drift
// measures integration error only.
type Canonical struct{}

func NewCanonical() *Canonical {
	return &Canonical{}
}

func (c *Canonical) Derive(x dynamo.State) dynamo.State { return derive(x, 2) }

func (c *Canonical) Energy(x dynamo.State) float64 {
	return energy(x, derive(x, 2))
}

func (c *Canonical) Lengths() (float64, float64) { return L1, L2 }
func (c *Canonical) Params() map[string]float64  { return pointParams() }

func pointParams() map[string]float64 {
	return map[string]float64{
		"gravity": G,
		"m1":      M1,
		"m2":      M2,
		"l1":      L1,
		"l2":      L2,
	}
}
