// Package config loads runtime settings from the environment.
// Site copy lives in the content package; this covers only knobs that vary
// per machine or per run.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime knobs
type Config struct {
	// FPS caps the frame loop rate
	FPS int `env:"LUMEN_FPS" envDefault:"60"`
	// Audio enables synthesized interaction cues
	Audio bool `env:"LUMEN_AUDIO" envDefault:"true"`
	// ReducedMotion renders every reveal at its resting pose immediately
	ReducedMotion bool `env:"LUMEN_REDUCED_MOTION" envDefault:"false"`
	// LogPath appends diagnostics to a file; empty disables logging.
	// Terminal UIs own stdout, so there is no console fallback.
	LogPath string `env:"LUMEN_LOG"`
	// NavScrollThreshold is the offset in cells past which the navbar
	// switches to its scrolled style
	NavScrollThreshold int `env:"LUMEN_NAV_THRESHOLD" envDefault:"50"`
	// RevealThreshold is the intersection fraction that counts as visible
	RevealThreshold float64 `env:"LUMEN_REVEAL_THRESHOLD" envDefault:"0.1"`
}

// Load parses the environment and clamps values to sane ranges
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.clamp()
	return cfg, nil
}

func (c *Config) clamp() {
	if c.FPS < 1 {
		c.FPS = 1
	}
	if c.FPS > 240 {
		c.FPS = 240
	}
	if c.NavScrollThreshold < 0 {
		c.NavScrollThreshold = 0
	}
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		c.RevealThreshold = 0.1
	}
}
