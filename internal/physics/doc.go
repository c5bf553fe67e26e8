// Package physics provides the double pendulum models and their initial
// condition sampler.
//
// Every model implements [dynamo.System] and [dynamo.Hamiltonian] over the
// canonical coordinates (a1, a2, p1, p2):
//
//   - [DoublePendulum]: point masses in the widely circulated closed form ([Derive], [Energy])
//   - [Canonical]: point masses with the exact Hamiltonian coupling term
//   - [Compound]: two uniform rods
//
// Constants are fixed at compile time. Angles are never wrapped and
// degenerate configurations are not guarded; NaN and Inf propagate.
//
// # Energy Conservation
//
// [Energy] is the total mechanical energy. Under [Derive] it is only
// approximately conserved even for tiny steps, because the coupling term of
// the momentum rates is off by a factor of two. [Canonical] conserves its energy
// up to integrator error:
//
//	dyn := physics.NewCanonical()
//	e0 := dyn.Energy(x)
package physics
