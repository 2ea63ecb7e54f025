package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name
const Prefix = "RAYTRACER"

var ErrInvalidConfig = errors.New("invalid config")

// Config holds settings shared by the CLI and the web server. Zero
// Width, Height, Samples or MaxDepth means "use the scene's own value".
type Config struct {
	Width     int    `envconfig:"WIDTH" default:"0"`
	Height    int    `envconfig:"HEIGHT" default:"0"`
	Samples   int    `envconfig:"SAMPLES" default:"0"`
	MaxDepth  int    `envconfig:"MAX_DEPTH" default:"0"`
	Seed      int64  `envconfig:"SEED" default:"42"`
	Scene     string `envconfig:"SCENE" default:"default"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"output"`
	Port      int    `envconfig:"PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// Web server limits
	MaxPixels  int `envconfig:"MAX_PIXELS" default:"640000"`
	MaxSamples int `envconfig:"MAX_SAMPLES" default:"500"`
	MaxRenders int `envconfig:"MAX_RENDERS" default:"2"` // Renders allowed to run at once
}

// Load reads RAYTRACER_* environment variables over the defaults
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no render could use
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Samples < 0 {
		return fmt.Errorf("%w: negative samples %d", ErrInvalidConfig, c.Samples)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Samples > c.MaxSamples && c.MaxSamples > 0 {
		return fmt.Errorf("%w: %d samples exceeds limit %d", ErrInvalidConfig, c.Samples, c.MaxSamples)
	}
	if c.Scene == "" {
		return fmt.Errorf("%w: empty scene name", ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
