package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dpend/internal/physics"
	"github.com/san-kum/dpend/internal/rng"
)

var _ = Describe("Generate", func() {
	It("draws angles in [π/2, 3π/2) with zero momenta for every seed", func() {
		for seed := uint64(0); seed < 2000; seed++ {
			r := rng.New(seed * 7919)
			for i := 0; i < 5; i++ {
				s := physics.Generate(r)
				Expect(s.A1).To(BeNumerically(">=", math.Pi/2))
				Expect(s.A1).To(BeNumerically("<", 3*math.Pi/2))
				Expect(s.A2).To(BeNumerically(">=", math.Pi/2))
				Expect(s.A2).To(BeNumerically("<", 3*math.Pi/2))
				Expect(s.P1).To(BeZero())
				Expect(s.P2).To(BeZero())
			}
		}
	})

	It("draws a1 before a2", func() {
		r := rng.New(99)
		u1, u2 := r.Uniform(), r.Uniform()
		s := physics.Generate(rng.New(99))
		Expect(s.A1).To(BeNumerically("~", u1*math.Pi+math.Pi/2, 1e-15))
		Expect(s.A2).To(BeNumerically("~", u2*math.Pi+math.Pi/2, 1e-15))
	})

	It("is reproducible from a seed", func() {
		Expect(physics.Generate(rng.New(12345))).To(Equal(physics.Generate(rng.New(12345))))
		Expect(physics.Generate(rng.New(1))).NotTo(Equal(physics.Generate(rng.New(2))))
	})

	It("supports narrower windows", func() {
		r := rng.New(5)
		for i := 0; i < 100; i++ {
			s := physics.GenerateWithin(r, 3*math.Pi/4, math.Pi/2)
			Expect(s.A1).To(BeNumerically(">=", 3*math.Pi/4))
			Expect(s.A1).To(BeNumerically("<=", 5*math.Pi/4))
		}
	})
})
