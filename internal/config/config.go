// Package config loads and validates run configuration.
package config

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Seed strategy names understood by the seed package.
const (
	StrategyPattern = "pattern"
	StrategyImage   = "image"
	StrategyRandom  = "random"
)

// Config holds everything a run needs besides the presentation backend.
type Config struct {
	Width         int           `yaml:"width"`
	Height        int           `yaml:"height"`
	Scale         int           `yaml:"scale"`
	FrameInterval time.Duration `yaml:"frame_interval"`
	Title         string        `yaml:"title"`
	Colors        Colors        `yaml:"colors"`
	Seed          Seed          `yaml:"seed"`
	Log           Log           `yaml:"log"`
}

// Colors selects the palette used for live and dead cells.
type Colors struct {
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

// Seed selects and parameterizes the initial-board strategy.
type Seed struct {
	Strategy string   `yaml:"strategy"`
	Pattern  string   `yaml:"pattern"`
	Cells    [][2]int `yaml:"cells"` // [row, col]
	Offset   [2]int   `yaml:"offset"`
	Image    string   `yaml:"image"`
	Random   Random   `yaml:"random"`
	Fallback string   `yaml:"fallback"`
}

// Random parameterizes the random-fill strategy.
type Random struct {
	Seed    int64   `yaml:"seed"`
	Density float64 `yaml:"density"`
}

// Log configures the logger.
type Log struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Width:         100,
		Height:        100,
		Scale:         8,
		FrameInterval: 100 * time.Millisecond,
		Title:         "Game of Life",
		Colors:        Colors{Alive: "#ffffff", Dead: "#000000"},
		Seed: Seed{
			Strategy: StrategyPattern,
			Pattern:  "default",
			Random:   Random{Seed: 42, Density: 0.25},
		},
		Log: Log{Level: "info"},
	}
}

// Validate reports the first configuration error found.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.FrameInterval < 0 {
		return errors.Errorf("frame_interval must not be negative, got %s", c.FrameInterval)
	}
	for _, col := range []string{c.Colors.Alive, c.Colors.Dead} {
		if _, err := colorful.Hex(col); err != nil {
			return errors.Wrapf(err, "color %q", col)
		}
	}
	if err := c.Seed.validate(); err != nil {
		return errors.Wrap(err, "seed")
	}
	return nil
}

func (s Seed) validate() error {
	if err := validateStrategy(s.Strategy); err != nil {
		return err
	}
	if s.Fallback != "" {
		if err := validateStrategy(s.Fallback); err != nil {
			return errors.Wrap(err, "fallback")
		}
		if s.Fallback == s.Strategy {
			return errors.Errorf("fallback %q repeats the primary strategy", s.Fallback)
		}
	}
	if (s.Strategy == StrategyImage || s.Fallback == StrategyImage) && s.Image == "" {
		return errors.New("image strategy requires an image path")
	}
	if s.Random.Density < 0 || s.Random.Density > 1 {
		return errors.Errorf("random density must be within [0,1], got %g", s.Random.Density)
	}
	return nil
}

func validateStrategy(name string) error {
	switch name {
	case StrategyPattern, StrategyImage, StrategyRandom:
		return nil
	}
	return errors.Errorf("unknown strategy %q", name)
}
