package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dpend/internal/dynamo"
	"github.com/san-kum/dpend/internal/physics"
	"github.com/san-kum/dpend/internal/rng"
)

const (
	DefaultModel      = "point"
	DefaultIntegrator = "rk4"
	DefaultDt         = dynamo.DefaultDt
	DefaultFormat     = "text"
)

type Config struct {
	Model         string           `yaml:"model"`
	Integrator    string           `yaml:"integrator"`
	Dt            float64          `yaml:"dt"`
	Steps         int              `yaml:"steps"`
	Seed          uint64           `yaml:"seed"`
	Format        string           `yaml:"format"`
	ValidateState bool             `yaml:"validate"`
	InitState     *InitStateConfig `yaml:"init_state,omitempty"`
	Draw          *DrawConfig      `yaml:"draw,omitempty"`
}

// InitStateConfig fixes the initial condition instead of drawing it.
type InitStateConfig struct {
	A1 float64 `yaml:"a1"`
	A2 float64 `yaml:"a2"`
	P1 float64 `yaml:"p1"`
	P2 float64 `yaml:"p2"`
}

// DrawConfig narrows the random angle draw to [Low, Low+Width).
type DrawConfig struct {
	Low   float64 `yaml:"low"`
	Width float64 `yaml:"width"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Integrator: DefaultIntegrator,
		Dt:         DefaultDt,
		Format:     DefaultFormat,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base. Keys absent from the file keep
// base's values; base itself is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cfg := *c
	if c.InitState != nil {
		st := *c.InitState
		cfg.InitState = &st
	}
	if c.Draw != nil {
		draw := *c.Draw
		cfg.Draw = &draw
	}
	return &cfg
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the simulator cannot recover from.
func (c *Config) Validate() error {
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", dynamo.ErrInvalidConfig, c.Dt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: steps must be >= 0, got %d", dynamo.ErrInvalidConfig, c.Steps)
	}
	if c.Draw != nil && c.Draw.Width <= 0 {
		return fmt.Errorf("%w: draw width must be positive, got %v", dynamo.ErrInvalidConfig, c.Draw.Width)
	}
	return nil
}

// InitialState returns the configured initial condition, or draws one
// from r when none is fixed.
func (c *Config) InitialState(r *rng.SplitMix64) dynamo.State {
	if c.InitState != nil {
		return dynamo.State{A1: c.InitState.A1, A2: c.InitState.A2, P1: c.InitState.P1, P2: c.InitState.P2}
	}
	if c.Draw != nil {
		return physics.GenerateWithin(r, c.Draw.Low, c.Draw.Width)
	}
	return physics.Generate(r)
}

// SimConfig converts to the simulator's run parameters.
func (c *Config) SimConfig() dynamo.Config {
	return dynamo.Config{
		Dt:            c.Dt,
		Steps:         c.Steps,
		Seed:          c.Seed,
		ValidateState: c.ValidateState,
	}
}
