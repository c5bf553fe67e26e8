// Package dynamo provides the simulation primitives shared by every model.
//
//   - [State]: value type holding angles a1, a2 and momenta p1, p2
//   - [System]: a Hamiltonian vector field (dX/dt = f(X))
//   - [Integrator]: fixed-step numerical stepper
//   - [Simulator]: bounded runs ([Simulator.Run]) and unbounded streams ([Simulator.Stream])
//   - [Ensemble]: independent runs executed concurrently
//
// # Example
//
//	sim := dynamo.New(physics.NewDoublePendulum(), integrators.NewRK4())
//	err := sim.Stream(ctx, x0, dynamo.Config{Dt: dynamo.DefaultDt}, sink)
//
// # Thread Safety
//
// States are values and integrators are stateless, but a Simulator owns its
// metrics and observers and is NOT safe for concurrent use. Use [Ensemble]
// for parallel runs.
package dynamo
