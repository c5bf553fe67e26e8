package dynamo

import (
	"fmt"
	"math"
)

// State is the canonical state of a double pendulum: the two arm angles
// (radians from vertical, never wrapped) and their conjugate momenta.
// The same shape carries rates when returned from System.Derive.
type State struct {
	A1, A2 float64
	P1, P2 float64
}

func (s State) IsValid() bool {
	for _, v := range s.Vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	return math.Sqrt(s.A1*s.A1 + s.A2*s.A2 + s.P1*s.P1 + s.P2*s.P2)
}

func (s State) Add(other State) State {
	return State{s.A1 + other.A1, s.A2 + other.A2, s.P1 + other.P1, s.P2 + other.P2}
}

func (s State) Sub(other State) State {
	return State{s.A1 - other.A1, s.A2 - other.A2, s.P1 - other.P1, s.P2 - other.P2}
}

func (s State) Scale(factor float64) State {
	return State{s.A1 * factor, s.A2 * factor, s.P1 * factor, s.P2 * factor}
}

// Vector returns the fields in a1, a2, p1, p2 order.
func (s State) Vector() []float64 {
	return []float64{s.A1, s.A2, s.P1, s.P2}
}

func (s State) String() string {
	return fmt.Sprintf("{a1=%g a2=%g p1=%g p2=%g}", s.A1, s.A2, s.P1, s.P2)
}

type System interface {
	Derive(x State) State
}

type Hamiltonian interface {
	Energy(x State) float64
}

// Integrator advances a state by dt. Implementations must not retain or
// mutate anything between calls so one value can be shared across goroutines.
type Integrator interface {
	Step(dyn System, x State, dt float64) State
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, t float64)
}

// Sample is one emitted integration step.
type Sample struct {
	Step   int
	Time   float64
	State  State
	Energy float64
}

// Sink receives samples from Simulator.Stream.
type Sink interface {
	Write(s Sample) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Sample) error

func (f SinkFunc) Write(s Sample) error { return f(s) }

type Config struct {
	Dt            float64
	Steps         int
	Seed          uint64
	ValidateState bool
}

// DefaultDt is the fixed 60 Hz step of the driving loop.
const DefaultDt = 1.0 / 60.0

func DefaultConfig() Config {
	return Config{
		Dt:    DefaultDt,
		Steps: 600,
	}
}

type Result struct {
	States      []State
	Times       []float64
	Energies    []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
}

// Final returns the last recorded state.
func (r *Result) Final() State {
	if len(r.States) == 0 {
		return State{}
	}
	return r.States[len(r.States)-1]
}
