// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ZTypeConfig contains all configuration for the ZType game.
type ZTypeConfig struct {
	Canvas   ZTypeCanvas `yaml:"canvas"`
	Words    ZTypeWords  `yaml:"words"`
	TickRate int         `yaml:"tick_rate"` // Ticks per second driven by the platform
}

// ZTypeCanvas defines the logical playfield. The terminal renderer scales it
// to whatever size the window has.
type ZTypeCanvas struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	BottomThreshold int `yaml:"bottom_threshold"` // y at which a word ends the game
}

// ZTypeWords defines word generation and pacing.
type ZTypeWords struct {
	Length        int    `yaml:"length"`
	InitialCount  int    `yaml:"initial_count"`
	SpawnInterval int    `yaml:"spawn_interval"` // Ticks between new words
	SpawnMargin   int    `yaml:"spawn_margin"`   // Spawn x is in [0, width-margin)
	Alphabet      string `yaml:"alphabet"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a game.
func (c ZTypeConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Canvas.Width > 0, "canvas.width must be positive, got %d", c.Canvas.Width)
	check(c.Canvas.Height > 0, "canvas.height must be positive, got %d", c.Canvas.Height)
	check(c.Canvas.BottomThreshold > 0, "canvas.bottom_threshold must be positive, got %d", c.Canvas.BottomThreshold)
	check(c.Words.Length > 0, "words.length must be positive, got %d", c.Words.Length)
	check(c.Words.InitialCount >= 0, "words.initial_count must not be negative, got %d", c.Words.InitialCount)
	check(c.Words.SpawnInterval > 0, "words.spawn_interval must be positive, got %d", c.Words.SpawnInterval)
	check(c.Words.SpawnMargin >= 0 && c.Words.SpawnMargin < c.Canvas.Width,
		"words.spawn_margin must be in [0, canvas.width), got %d", c.Words.SpawnMargin)
	check(c.Words.Alphabet != "", "words.alphabet must not be empty")
	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)

	return errors.Join(errs...)
}
