package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			SurfaceSize: 400,
			CellSize:    20,
			CellWidth:   2,
		},
		Timing: TimingConfig{
			TickMillis: 100,
		},
		Start: StartConfig{
			X:         10,
			Y:         10,
			Direction: "right",
		},
		Theme: ThemeConfig{
			Background: "#1a252f",
			Food:       "#e74c3c",
			Snake:      "#2ecc71",
			Head:       "#27ae60",
			Text:       "#ecf0f1",
			Border:     "#34495e",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
