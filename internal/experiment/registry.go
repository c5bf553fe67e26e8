package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/integrators"
	"github.com/san-kum/dpend/internal/metrics"
	"github.com/san-kum/dpend/internal/physics"
)

// Model is what every registered pendulum provides.
type Model interface {
	dynamo.System
	dynamo.Hamiltonian
	physics.Linkage
	Params() map[string]float64
}

type Registry struct {
	models      map[string]func() Model
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func() Model),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.models["point"] = func() Model { return physics.NewDoublePendulum() }
	r.models["canonical"] = func() Model { return physics.NewCanonical() }
	r.models["compound"] = func() Model { return physics.NewCompound() }

	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }

	return r
}

func (r *Registry) GetModel(name string) (Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownModel, name, r.ListModels())
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownIntegrator, name, r.ListIntegrators())
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	return sortedKeys(r.models)
}

func (r *Registry) ListIntegrators() []string {
	return sortedKeys(r.integrators)
}

// DefaultMetrics returns fresh metric instances for one run of dyn.
func (r *Registry) DefaultMetrics(dyn dynamo.Hamiltonian) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewEnergy(dyn),
		metrics.NewEnergyDrift(dyn),
		metrics.NewFlips(),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
