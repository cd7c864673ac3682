// Package config loads demo application configuration from the
// environment.
package config

import "github.com/kelseyhightower/envconfig"

// Config holds the demo application settings.
type Config struct {
	GridWidth  int    `envconfig:"SCULPT_GRID_WIDTH" default:"256"`
	GridHeight int    `envconfig:"SCULPT_GRID_HEIGHT" default:"256"`
	Scale      int    `envconfig:"SCULPT_SCALE" default:"3"`
	Seed       int64  `envconfig:"SCULPT_SEED" default:"1"`
	BrushDir   string `envconfig:"SCULPT_BRUSH_DIR" default:""`
}

// Load reads configuration from environment variables, falling back to
// the defaults above.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.GridWidth < 1 {
		cfg.GridWidth = 1
	}
	if cfg.GridHeight < 1 {
		cfg.GridHeight = 1
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg, nil
}
