package physics

import (
	"math"

	"github.com/san-kum/dpend/internal/dynamo"
)

// Constants of the compound pendulum: two identical uniform rods.
const (
	CompoundGravity = 1.2
	CompoundMass    = 1.0
	CompoundLength  = 1.0
)

// Compound models two uniform rods hinged end to end.
// p1 = ml²/6·(8ω1 + 3ω2·cos(a1−a2)), p2 = ml²/6·(2ω2 + 3ω1·cos(a1−a2)).
type Compound struct{}

func NewCompound() *Compound {
	return &Compound{}
}

func (c *Compound) Derive(s dynamo.State) dynamo.State {
	const (
		ml2 = CompoundMass * CompoundLength * CompoundLength
		gl  = CompoundGravity / CompoundLength
	)
	cos12 := math.Cos(s.A1 - s.A2)
	sin12 := math.Sin(s.A1 - s.A2)
	den := 16 - 9*cos12*cos12

	da1 := 6 / ml2 * (2*s.P1 - 3*cos12*s.P2) / den
	da2 := 6 / ml2 * (8*s.P2 - 3*cos12*s.P1) / den

	return dynamo.State{
		A1: da1,
		A2: da2,
		P1: -ml2 / 2 * (da1*da2*sin12 + 3*gl*math.Sin(s.A1)),
		P2: -ml2 / 2 * (-da1*da2*sin12 + gl*math.Sin(s.A2)),
	}
}

func (c *Compound) Energy(s dynamo.State) float64 {
	d := c.Derive(s)
	ke := CompoundMass * CompoundLength * CompoundLength / 6 *
		(d.A2*d.A2 + 4*d.A1*d.A1 + 3*d.A1*d.A2*math.Cos(s.A1-s.A2))
	pe := -CompoundMass * CompoundGravity * CompoundLength / 2 *
		(3*math.Cos(s.A1) + math.Cos(s.A2))
	return ke + pe
}

func (c *Compound) Lengths() (float64, float64) { return CompoundLength, CompoundLength }

func (c *Compound) Params() map[string]float64 {
	return map[string]float64{
		"gravity": CompoundGravity,
		"mass":    CompoundMass,
		"length":  CompoundLength,
	}
}
