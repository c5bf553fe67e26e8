package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/rng"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "point" {
		t.Errorf("expected model point, got %s", cfg.Model)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("expected integrator rk4, got %s", cfg.Integrator)
	}
	if cfg.Dt != 1.0/60.0 {
		t.Errorf("expected dt 1/60, got %v", cfg.Dt)
	}
	if cfg.Steps != 0 {
		t.Error("default run should be unbounded")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`model: canonical
steps: 120
seed: 12345
init_state:
  a1: 1.5
  a2: -0.5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "canonical" || cfg.Steps != 120 || cfg.Seed != 12345 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Integrator != "rk4" || cfg.Dt != DefaultDt {
		t.Error("unset keys should keep their defaults")
	}
	if cfg.InitState == nil || cfg.InitState.A1 != 1.5 || cfg.InitState.A2 != -0.5 {
		t.Errorf("unexpected init state %+v", cfg.InitState)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("dt: -1\n"), 0644)
	if _, err := Load(bad); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}

	garbled := filepath.Join(dir, "garbled.yaml")
	os.WriteFile(garbled, []byte("steps: [1, 2\n"), 0644)
	if _, err := Load(garbled); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadOver_KeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.yaml")
	os.WriteFile(path, []byte("steps: 42\n"), 0644)

	base := GetPreset("gentle")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Steps != 42 || cfg.Model != "canonical" || cfg.InitState == nil || cfg.InitState.A1 != 0.3 {
		t.Errorf("unexpected merge %+v", cfg)
	}
	if base.Steps != 1200 {
		t.Error("LoadOver modified its base")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := GetPreset("upright-tilt")
	cfg.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != cfg.Model || loaded.Steps != cfg.Steps || loaded.Seed != 7 {
		t.Errorf("round trip changed config: %+v", loaded)
	}
	if loaded.InitState == nil || loaded.InitState.A2 != cfg.InitState.A2 {
		t.Errorf("round trip lost init state: %+v", loaded.InitState)
	}
}

func TestInitialState(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *Config
		check func(dynamo.State) bool
	}{
		{
			"fixed",
			&Config{InitState: &InitStateConfig{A1: 1, A2: 2, P1: 3, P2: 4}},
			func(s dynamo.State) bool { return s == dynamo.State{A1: 1, A2: 2, P1: 3, P2: 4} },
		},
		{
			"default draw",
			&Config{},
			func(s dynamo.State) bool {
				return math.Abs(s.A1-1.9888784362038003) < 1e-12 && math.Abs(s.A2-2.2142467574968787) < 1e-12
			},
		},
		{
			"narrow draw",
			&Config{Draw: &DrawConfig{Low: 3 * math.Pi / 4, Width: math.Pi / 2}},
			func(s dynamo.State) bool {
				return s.A1 >= 3*math.Pi/4 && s.A1 < 5*math.Pi/4 && s.P1 == 0 && s.P2 == 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.cfg.InitialState(rng.New(12345))
			if !tt.check(s) {
				t.Errorf("unexpected state %v", s)
			}
		})
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Steps = 10
	cfg.Seed = 3
	cfg.ValidateState = true

	sc := cfg.SimConfig()
	if sc.Dt != cfg.Dt || sc.Steps != 10 || sc.Seed != 3 || !sc.ValidateState {
		t.Errorf("unexpected sim config %+v", sc)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("gentle")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.InitState.A1 != 0.3 {
		t.Errorf("expected a1 0.3, got %f", cfg.InitState.A1)
	}

	cfg.InitState.A1 = 9
	if GetPreset("gentle").InitState.A1 != 0.3 {
		t.Error("GetPreset must return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresets(t *testing.T) {
	want := []string{"classic", "compound", "gentle", "rest", "upright-tilt"}
	got := ListPresets()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
