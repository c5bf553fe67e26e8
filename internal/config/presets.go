package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	// Random resting start with both angles in [π/2, 3π/2).
	"classic": {
		Model: "point", Integrator: "rk4", Dt: DefaultDt, Format: DefaultFormat,
	},
	"gentle": {
		Model: "canonical", Integrator: "rk4", Dt: DefaultDt, Steps: 1200, Format: DefaultFormat,
		InitState: &InitStateConfig{A1: 0.3, A2: 0.3},
	},
	"rest": {
		Model: "canonical", Integrator: "rk4", Dt: DefaultDt, Steps: 600, Format: DefaultFormat,
		InitState: &InitStateConfig{},
	},
	"upright-tilt": {
		Model: "canonical", Integrator: "rk4", Dt: DefaultDt, Steps: 3600, Format: DefaultFormat,
		InitState: &InitStateConfig{A1: math.Pi, A2: math.Pi + 0.01},
	},
	"compound": {
		Model: "compound", Integrator: "rk4", Dt: DefaultDt, Format: DefaultFormat,
		Draw: &DrawConfig{Low: 3 * math.Pi / 4, Width: math.Pi / 2},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
