package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// MaxArenaSize bounds the arena edge length; a dense full-grid scan
	// is rebuilt every frame, so anything past this is unusable anyway.
	MaxArenaSize = 128
	minArenaSize = 4
)

// Config holds the runtime parameters for the simulation and frontends.
type Config struct {
	ArenaSize    int     `yaml:"arena_size"`
	CellSize     float64 `yaml:"cell_size"`
	TickInterval float64 `yaml:"tick_interval"`
	Seed         int64   `yaml:"seed"`
	Density      float64 `yaml:"density"`
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	FrameRate    int     `yaml:"frame_rate"`
	Headless     bool    `yaml:"headless"`
}

// Default returns the configuration used when no file or flags override it.
func Default() *Config {
	return &Config{
		ArenaSize:    32,
		CellSize:     1.0,
		TickInterval: 0.25,
		Seed:         42,
		Density:      0.1,
		WindowWidth:  1280,
		WindowHeight: 720,
		FrameRate:    30,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write config %q", path)
	}
	return nil
}

// Validate clamps every field into its usable range.
func (c *Config) Validate() {
	if c.ArenaSize < minArenaSize {
		c.ArenaSize = minArenaSize
	}
	if c.ArenaSize > MaxArenaSize {
		c.ArenaSize = MaxArenaSize
	}
	if c.CellSize <= 0 {
		c.CellSize = 1.0
	}
	if c.TickInterval <= 0 {
		c.TickInterval = 0.25
	}
	if c.Density < 0 {
		c.Density = 0
	}
	if c.Density > 1 {
		c.Density = 1
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = 1280
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 720
	}
	if c.FrameRate < 1 {
		c.FrameRate = 1
	}
	if c.FrameRate > 120 {
		c.FrameRate = 120
	}
}
