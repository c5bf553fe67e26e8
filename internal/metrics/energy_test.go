package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/physics"
)

func TestEnergyMean(t *testing.T) {
	dp := physics.NewDoublePendulum()
	m := NewEnergy(dp)

	a := dynamo.State{A1: math.Pi / 4}
	b := dynamo.State{A1: math.Pi / 2, A2: 1}

	m.Observe(a, 0)
	m.Observe(b, 0.1)

	expected := (dp.Energy(a) + dp.Energy(b)) / 2
	if math.Abs(m.Value()-expected) > 1e-12 {
		t.Errorf("expected mean energy %f, got %f", expected, m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy(physics.NewDoublePendulum())

	m.Observe(dynamo.State{A1: 1.0, P1: 1.0}, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

type scripted []float64

func (s *scripted) Energy(x dynamo.State) float64 {
	e := (*s)[0]
	*s = (*s)[1:]
	return e
}

func TestEnergyDrift(t *testing.T) {
	energies := scripted{10, 11, 9.5, 10.2}
	m := NewEnergyDrift(&energies)

	for i := 0; i < 4; i++ {
		m.Observe(dynamo.State{}, float64(i))
	}

	if math.Abs(m.Value()-0.1) > 1e-12 {
		t.Errorf("expected max drift 0.1, got %f", m.Value())
	}
	if m.Current() != 10.2 {
		t.Errorf("expected current energy 10.2, got %f", m.Current())
	}

	m.Reset()
	if m.Value() != 0 || m.Current() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestEnergyDrift_ZeroInitialEnergy(t *testing.T) {
	energies := scripted{0, 5}
	m := NewEnergyDrift(&energies)
	m.Observe(dynamo.State{}, 0)
	m.Observe(dynamo.State{}, 1)
	if m.Value() != 0 {
		t.Errorf("drift relative to zero energy should stay 0, got %f", m.Value())
	}
}
