// Package config provides YAML-based configuration loading for the twisty
// player.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-twisty/internal/puzzle"
	"github.com/vovakirdan/tui-twisty/internal/tween"
)

// Config contains all settings of the player.
type Config struct {
	Puzzle              string     `yaml:"puzzle"`                // Registry id of the puzzle to open
	SpeedMS             int        `yaml:"speed_ms"`              // Animation duration per move
	Easing              string     `yaml:"easing"`                // linear, easeInOutQuad, easeInOutQuint
	FPS                 int        `yaml:"fps"`                   // Host tick rate
	Animate             bool       `yaml:"animate"`               // Animate moves in play and run
	EnforceSwapLegality bool       `yaml:"enforce_swap_legality"` // Square rejects swaps through corners
	View                ViewConfig `yaml:"view"`
}

// ViewConfig controls the terminal projection.
type ViewConfig struct {
	Rotation   [3]float64 `yaml:"rotation"`   // Camera rotation in degrees: x (tilt), y (orbit), z (roll)
	Hover      bool       `yaml:"hover"`      // Also draw the puzzle seen from behind
	Background string     `yaml:"background"` // Lipgloss color of the puzzle body, empty for none
}

// Speed returns the animation duration.
func (c Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// Validate checks value ranges and names. Puzzle ids are checked against
// the set of known ids passed in, when non-nil.
func (c Config) Validate(known func(id string) bool) error {
	if c.Puzzle == "" {
		return fmt.Errorf("config: puzzle is empty")
	}
	if known != nil && !known(c.Puzzle) {
		return fmt.Errorf("config: unknown puzzle %q", c.Puzzle)
	}
	if c.SpeedMS < 0 {
		return fmt.Errorf("config: speed_ms must be >= 0, got %d", c.SpeedMS)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be > 0, got %d", c.FPS)
	}
	if _, err := tween.EasingByName(c.Easing); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts the config into puzzle options. The easing must be
// valid; call Validate first.
func (c Config) Options() puzzle.Options {
	opts := puzzle.DefaultOptions()
	opts.Speed = c.Speed()
	if f, err := tween.EasingByName(c.Easing); err == nil {
		opts.Easing = f
	}
	opts.EnforceSwapLegality = c.EnforceSwapLegality
	return opts
}
