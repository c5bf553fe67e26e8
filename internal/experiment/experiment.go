package experiment

import (
	"context"

	"github.com/san-kum/dpend/internal/config"
	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/export"
	"github.com/san-kum/dpend/internal/rng"
)

// Experiment is one fully resolved run: model, integrator and initial
// condition, all fixed by the config and its seed.
type Experiment struct {
	cfg        config.Config
	registry   *Registry
	model      Model
	integrator dynamo.Integrator
	initial    dynamo.State
	simulator  *dynamo.Simulator
}

func New(cfg *config.Config, registry *Registry) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	model, err := registry.GetModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	integrator, err := registry.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	e := &Experiment{
		cfg:        *cfg,
		registry:   registry,
		model:      model,
		integrator: integrator,
		initial:    cfg.InitialState(rng.New(cfg.Seed)),
	}
	e.simulator = dynamo.New(model, integrator)
	for _, m := range registry.DefaultMetrics(model) {
		e.simulator.AddMetric(m)
	}
	return e, nil
}

func (e *Experiment) Config() config.Config        { return e.cfg }
func (e *Experiment) Model() Model                  { return e.model }
func (e *Experiment) Integrator() dynamo.Integrator { return e.integrator }
func (e *Experiment) Initial() dynamo.State         { return e.initial }
func (e *Experiment) Simulator() *dynamo.Simulator  { return e.simulator }

// Run integrates a bounded number of steps from the initial condition.
func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	return e.simulator.Run(ctx, e.initial, e.cfg.SimConfig())
}

// Stream writes one sample per step to sink until the configured step
// count is reached, or forever when it is zero.
func (e *Experiment) Stream(ctx context.Context, sink dynamo.Sink) error {
	return e.simulator.Stream(ctx, e.initial, e.cfg.SimConfig(), sink)
}

// Ensemble runs n consecutive seeds starting at the configured one.
func (e *Experiment) Ensemble(ctx context.Context, n, workers int) ([]dynamo.State, []*dynamo.Result, error) {
	x0s := make([]dynamo.State, n)
	for i := range x0s {
		x0s[i] = e.cfg.InitialState(rng.New(e.cfg.Seed + uint64(i)))
	}

	ens := dynamo.NewEnsemble(e.model, e.integrator, func() []dynamo.Metric {
		return e.registry.DefaultMetrics(e.model)
	})
	if workers > 0 {
		ens.SetWorkers(workers)
	}

	results, err := ens.Run(ctx, x0s, e.cfg.SimConfig())
	return x0s, results, err
}

// Meta describes the run for export writers.
func (e *Experiment) Meta() export.Meta {
	return export.Meta{
		Model:         e.cfg.Model,
		Integrator:    e.cfg.Integrator,
		Seed:          e.cfg.Seed,
		Dt:            e.cfg.Dt,
		Steps:         e.cfg.Steps,
		Initial:       e.initial,
		InitialEnergy: e.model.Energy(e.initial),
	}
}
