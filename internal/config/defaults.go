package config

import (
	_ "embed"
)

//go:embed defaults/twisty.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Puzzle:  "3x3x3",
		SpeedMS: 500,
		Easing:  "easeInOutQuad",
		FPS:     60,
		Animate: true,
		View: ViewConfig{
			Rotation: [3]float64{30, 30, 0},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
