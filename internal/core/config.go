package core

import "time"

// RuntimeConfig contains configuration passed to the game at start.
// The platform fills it from CLI flags and the terminal size.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	TickPeriod time.Duration // Time between simulation ticks
	Seed       int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickPeriod: 100 * time.Millisecond,
		Seed:       0, // 0 means use current time in platform layer
	}
}
