// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation parameters.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Cell       CellConfig       `yaml:"cell"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Food       FoodConfig       `yaml:"food"`
	Population PopulationConfig `yaml:"population"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WorldConfig holds the food grid dimensions. Cell positions are unbounded;
// the grid wraps toroidally underneath them.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CellConfig holds per-cell defaults applied at spawn.
type CellConfig struct {
	Footprint     int     `yaml:"footprint"`      // side length of the absorbed square
	MetabolicRate float64 `yaml:"metabolic_rate"` // energy cost per tick
}

// ScheduleConfig holds schedule assignment parameters for spawning.
type ScheduleConfig struct {
	RandomFraction float64 `yaml:"random_fraction"` // share of spawns with a random schedule
}

// FoodConfig holds food field generation and regrowth parameters.
type FoodConfig struct {
	Density          float64 `yaml:"density"`           // peak energy per tile
	RegrowRate       float64 `yaml:"regrow_rate"`       // deficit fraction restored per tick
	NoiseScale       float64 `yaml:"noise_scale"`       // base noise frequency
	NoiseOctaves     int     `yaml:"noise_octaves"`
	NoisePersistence float64 `yaml:"noise_persistence"`
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Initial int `yaml:"initial"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func (c *Config) validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Cell.Footprint <= 0 {
		return fmt.Errorf("config: cell footprint must be positive, got %d", c.Cell.Footprint)
	}
	if c.Cell.MetabolicRate <= 0 {
		return fmt.Errorf("config: metabolic rate must be positive, got %g", c.Cell.MetabolicRate)
	}
	if c.Schedule.RandomFraction < 0 || c.Schedule.RandomFraction > 1 {
		return fmt.Errorf("config: schedule random_fraction must be in [0,1], got %g", c.Schedule.RandomFraction)
	}
	if c.Population.Initial < 0 {
		return fmt.Errorf("config: initial population must be non-negative, got %d", c.Population.Initial)
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("config: stats window must be positive, got %d", c.Telemetry.StatsWindow)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
