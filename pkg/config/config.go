package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/df07/weekend-raytracer/pkg/integrator"
)

// Prefix is prepended to every environment variable name, e.g. RT_SCENE
const Prefix = "RT"

// Config holds render settings read from the environment. Zero image
// settings leave the scene's own values in place.
type Config struct {
	Scene      string `envconfig:"SCENE" default:"default"`
	ScenesDir  string `envconfig:"SCENES_DIR" default:"scenes"`
	Integrator string `envconfig:"INTEGRATOR"` // Empty uses the scene's integrator
	Width      int    `envconfig:"WIDTH"`
	Samples    int    `envconfig:"SAMPLES"`
	Depth      int    `envconfig:"DEPTH"`
	Workers    int    `envconfig:"WORKERS"`
	Seed       int64  `envconfig:"SEED" default:"1"`
	Output     string `envconfig:"OUTPUT"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the RT_* environment variables, applying the defaults above
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no render can use
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}
	if c.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.Integrator != "" && !slices.Contains(integrator.Names, c.Integrator) {
		return fmt.Errorf("unknown integrator %q (want one of %v)", c.Integrator, integrator.Names)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error)
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
