package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	dyn        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(dyn System, integrator Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Energy evaluates the system's energy, or 0 if it is not Hamiltonian.
func (s *Simulator) Energy(x State) float64 {
	if h, ok := s.dyn.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

// Metrics returns the current value of every attached metric.
func (s *Simulator) Metrics() map[string]float64 {
	values := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		values[m.Name()] = m.Value()
	}
	return values
}

// Run integrates cfg.Steps steps from x0 and records every state.
func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Steps == 0 {
		return nil, fmt.Errorf("%w: run needs a positive step count", ErrInvalidConfig)
	}

	result := &Result{
		States:   make([]State, 0, cfg.Steps+1),
		Times:    make([]float64, 0, cfg.Steps+1),
		Energies: make([]float64, 0, cfg.Steps+1),
	}

	initialEnergy := s.Energy(x0)
	result.States = append(result.States, x0)
	result.Times = append(result.Times, 0)
	result.Energies = append(result.Energies, initialEnergy)

	err := s.loop(ctx, x0, cfg, func(smp Sample) error {
		result.States = append(result.States, smp.State)
		result.Times = append(result.Times, smp.Time)
		result.Energies = append(result.Energies, smp.Energy)
		result.StepsTaken++
		return nil
	})

	if initialEnergy != 0 {
		final := result.Energies[len(result.Energies)-1]
		result.EnergyDrift = math.Abs(final-initialEnergy) / math.Abs(initialEnergy)
	}
	result.Metrics = s.Metrics()

	return result, err
}

// Stream integrates from x0 and writes one sample per step to sink.
// cfg.Steps == 0 streams until ctx is cancelled.
func (s *Simulator) Stream(ctx context.Context, x0 State, cfg Config, sink Sink) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return s.loop(ctx, x0, cfg, sink.Write)
}

func (s *Simulator) loop(ctx context.Context, x0 State, cfg Config, emit func(Sample) error) error {
	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0
	t := 0.0
	for _, m := range s.metrics {
		m.Observe(x, t)
	}

	for i := 0; cfg.Steps == 0 || i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		next := s.integrator.Step(s.dyn, x, cfg.Dt)
		if cfg.ValidateState && !next.IsValid() {
			return &SimulationError{Step: i, Time: t, State: next, Wrapped: ErrInvalidState}
		}

		x = next
		t += cfg.Dt

		for _, m := range s.metrics {
			m.Observe(x, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}

		if err := emit(Sample{Step: i + 1, Time: t, State: x, Energy: s.Energy(x)}); err != nil {
			return err
		}
	}

	return nil
}

func validateConfig(cfg Config) error {
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", ErrInvalidConfig, cfg.Steps)
	}
	return nil
}
