package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/staticmode/painter"
)

// Config holds presentation settings only. Modes are never read from it:
// combinations are composed in code, where they are checked at init.
type Config struct {
	// Length is the number of body glyphs per line.
	Length int `yaml:"length"`
	// Labels prints the expression above each drawn line.
	Labels bool `yaml:"labels"`
	// LabelColor is a lipgloss color (ANSI index or "#rrggbb").
	LabelColor string `yaml:"label_color"`
}

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("linedraw: invalid config")

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Length:     painter.DefaultLength,
		Labels:     true,
		LabelColor: "63",
	}
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects settings the painter would refuse.
func (c Config) Validate() error {
	if c.Length < painter.MinLength {
		return fmt.Errorf("length must be >= %d, got %d: %w", painter.MinLength, c.Length, ErrInvalidConfig)
	}

	return nil
}
