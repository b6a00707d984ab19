package darwin

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is returned for settings a world cannot be built from.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a world. It is fixed once the world is created.
type Config struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`

	PlantEnergy        uint32  `yaml:"plant_energy"`          // energy per unit of plant eaten
	EnergyToReproduce  uint32  `yaml:"energy_to_reproduce"`   // reproduction needs strictly more
	PlantsPerDay       uint32  `yaml:"plants_per_day"`        // spawned anywhere on the grid
	PlantsPerDayForest uint32  `yaml:"plants_per_day_forest"` // spawned inside the forest
	ForestPercent      float32 `yaml:"forest_percent"`        // forest size as a fraction of the grid

	InitialEnergy uint32 `yaml:"initial_energy"` // energy of the founder
	Seed          int64  `yaml:"seed"`           // 0 picks a random seed
}

// DefaultConfig returns the reference settings.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("darwin: parsing embedded defaults: %v", err))
	}
	return cfg
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default value. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that would break the grid invariants.
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("%w: grid is %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ForestPercent < 0 || c.ForestPercent > 1 {
		return fmt.Errorf("%w: forest_percent %v outside [0, 1]", ErrInvalidConfig, c.ForestPercent)
	}
	if c.InitialEnergy == 0 {
		return fmt.Errorf("%w: initial_energy must be positive", ErrInvalidConfig)
	}
	return nil
}

// forest returns the origin and size of the centered forest rectangle.
func (c Config) forest() (x0, y0, w, h uint32) {
	w = uint32(float32(c.Width) * c.ForestPercent)
	h = uint32(float32(c.Height) * c.ForestPercent)
	x0 = c.Width/2 - w/2
	y0 = c.Height/2 - h/2
	return x0, y0, w, h
}
