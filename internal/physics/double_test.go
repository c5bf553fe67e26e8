package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/integrators"
	"github.com/san-kum/dpend/internal/physics"
	"github.com/san-kum/dpend/internal/rng"
)

type model interface {
	dynamo.System
	dynamo.Hamiltonian
}

// gradient returns dH/dq for each coordinate by central differences.
func gradient(h func(dynamo.State) float64, s dynamo.State) dynamo.State {
	const eps = 1e-6
	d := func(shift dynamo.State) float64 {
		return (h(s.Add(shift.Scale(eps))) - h(s.Sub(shift.Scale(eps)))) / (2 * eps)
	}
	return dynamo.State{
		A1: d(dynamo.State{A1: 1}),
		A2: d(dynamo.State{A2: 1}),
		P1: d(dynamo.State{P1: 1}),
		P2: d(dynamo.State{P2: 1}),
	}
}

func maxDrift(m model, x dynamo.State, dt float64, steps int) float64 {
	rk4 := integrators.NewRK4()
	e0 := m.Energy(x)
	drift := 0.0
	for i := 0; i < steps; i++ {
		x = rk4.Step(m, x, dt)
		drift = math.Max(drift, math.Abs(m.Energy(x)-e0)/math.Abs(e0))
	}
	return drift
}

var _ = Describe("DoublePendulum", func() {
	dp := physics.NewDoublePendulum()

	It("matches the package-level functions", func() {
		s := dynamo.State{A1: 2, A2: 2.5, P1: 0.7, P2: -0.4}
		Expect(dp.Derive(s)).To(Equal(physics.Derive(s)))
		Expect(dp.Energy(s)).To(Equal(physics.Energy(s)))
	})

	It("has exactly zero angle rates at rest with a1 = a2 = π", func() {
		d := physics.Derive(dynamo.State{A1: math.Pi, A2: math.Pi})
		Expect(d.A1).To(BeZero())
		Expect(d.A2).To(BeZero())
		Expect(d.P1).To(BeNumerically("~", 0, 1e-14))
		Expect(d.P2).To(BeNumerically("~", 0, 1e-14))
	})

	It("has zero rates when hanging straight down at rest", func() {
		Expect(physics.Derive(dynamo.State{})).To(Equal(dynamo.State{}))
		Expect(physics.Energy(dynamo.State{})).To(BeNumerically("~", -(physics.M1+physics.M2)*physics.G*physics.L1-physics.M2*physics.G*physics.L2, 1e-12))
	})

	It("is a pure function", func() {
		s := dynamo.State{A1: 1.1, A2: -0.3, P1: 2, P2: 0.5}
		before := s
		first := physics.Derive(s)
		Expect(physics.Derive(s)).To(Equal(first))
		Expect(s).To(Equal(before))
	})

	It("returns angle rates consistent with the energy's momentum gradient", func() {
		s := dynamo.State{A1: 2, A2: 2.5, P1: 0.7, P2: -0.4}
		d := physics.Derive(s)
		g := gradient(physics.Energy, s)
		Expect(d.A1).To(BeNumerically("~", g.P1, 1e-6))
		Expect(d.A2).To(BeNumerically("~", g.P2, 1e-6))
	})

	It("propagates non-finite input without panicking", func() {
		d := physics.Derive(dynamo.State{A1: math.NaN()})
		Expect(d.IsValid()).To(BeFalse())
	})

	It("reproduces the 60-step run of seed 12345", func() {
		x := physics.Generate(rng.New(12345))
		Expect(x.A1).To(BeNumerically("~", 1.9888784362038003, 1e-12))
		Expect(x.A2).To(BeNumerically("~", 2.2142467574968787, 1e-12))
		Expect(physics.Energy(x)).To(BeNumerically("~", 5.294911709179857, 1e-9))

		rk4 := integrators.NewRK4()
		for i := 0; i < 60; i++ {
			x = rk4.Step(dp, x, 1.0/60.0)
		}

		Expect(x.IsValid()).To(BeTrue())
		Expect(x.A1).To(BeNumerically("~", 0.6012937539004305, 1e-8))
		Expect(x.A2).To(BeNumerically("~", 1.9344970300989153, 1e-8))
		Expect(x.P1).To(BeNumerically("~", -6.281824862345364, 1e-7))
		Expect(x.P2).To(BeNumerically("~", -3.5705206094803517, 1e-7))
		Expect(physics.Energy(x)).To(BeNumerically("~", 5.66500245976859, 1e-8))
	})

	It("drifts in energy even with tiny steps", func() {
		x := physics.Generate(rng.New(12345))
		Expect(maxDrift(dp, x, 1.0/600.0, 600)).To(BeNumerically(">", 1e-2))
	})
})

var _ = Describe("Canonical", func() {
	c := physics.NewCanonical()
	s := dynamo.State{A1: 2, A2: 2.5, P1: 0.7, P2: -0.4}

	It("shares the angle rates of the point model", func() {
		d, ref := c.Derive(s), physics.Derive(s)
		Expect(d.A1).To(Equal(ref.A1))
		Expect(d.A2).To(Equal(ref.A2))
		Expect(d.P1).NotTo(Equal(ref.P1))
	})

	It("is Hamilton's equations for its energy", func() {
		d := c.Derive(s)
		g := gradient(c.Energy, s)
		Expect(d.A1).To(BeNumerically("~", g.P1, 1e-6))
		Expect(d.A2).To(BeNumerically("~", g.P2, 1e-6))
		Expect(d.P1).To(BeNumerically("~", -g.A1, 1e-6))
		Expect(d.P2).To(BeNumerically("~", -g.A2, 1e-6))
	})

	It("conserves energy under RK4 over 1000 steps at dt = 1/60", func() {
		x := physics.Generate(rng.New(12345))
		Expect(maxDrift(c, x, 1.0/60.0, 1000)).To(BeNumerically("<", 1e-3))
	})

	It("reports the same constants as the point model", func() {
		Expect(c.Params()).To(Equal(physics.NewDoublePendulum().Params()))
		l1, l2 := c.Lengths()
		Expect(l1).To(Equal(physics.L1))
		Expect(l2).To(Equal(physics.L2))
	})
})

var _ = Describe("Compound", func() {
	c := physics.NewCompound()

	It("is Hamilton's equations for its energy", func() {
		s := dynamo.State{A1: 2, A2: 2.5, P1: 0.7, P2: -0.4}
		d := c.Derive(s)
		g := gradient(c.Energy, s)
		Expect(d.A1).To(BeNumerically("~", g.P1, 1e-6))
		Expect(d.A2).To(BeNumerically("~", g.P2, 1e-6))
		Expect(d.P1).To(BeNumerically("~", -g.A1, 1e-6))
		Expect(d.P2).To(BeNumerically("~", -g.A2, 1e-6))
	})

	It("is at rest hanging down", func() {
		d := c.Derive(dynamo.State{})
		Expect(d.Norm()).To(BeNumerically("~", 0, 1e-15))
	})

	It("conserves energy under RK4", func() {
		Expect(maxDrift(c, dynamo.State{A1: 2, A2: 2.5}, 1.0/60.0, 1000)).To(BeNumerically("<", 1e-3))
	})
})
