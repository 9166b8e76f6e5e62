// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// BoardConfig defines the drawing surface and how tiles map to terminal cells.
type BoardConfig struct {
	SurfaceSize int `yaml:"surface_size"`
	CellSize    int `yaml:"cell_size"`
	CellWidth   int `yaml:"cell_width"` // Terminal columns per tile
}

// TimingConfig defines the tick period.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// StartConfig defines where and how a new game begins.
type StartConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"`
}

// ThemeConfig holds lipgloss color strings (hex or ANSI codes).
type ThemeConfig struct {
	Background string `yaml:"background"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
	Head       string `yaml:"head"`
	Text       string `yaml:"text"`
	Border     string `yaml:"border"`
}

// Grid returns the board grid.
func (c SnakeConfig) Grid() (snake.Grid, error) {
	return snake.NewGrid(c.Board.SurfaceSize, c.Board.CellSize)
}

// TickPeriod returns the tick period as a duration.
func (c SnakeConfig) TickPeriod() time.Duration {
	return time.Duration(c.Timing.TickMillis) * time.Millisecond
}

// ControllerOptions builds the game controller options from the config.
func (c SnakeConfig) ControllerOptions(seed int64) (snake.Options, error) {
	grid, err := c.Grid()
	if err != nil {
		return snake.Options{}, err
	}
	dir, err := snake.ParseDirection(c.Start.Direction)
	if err != nil {
		return snake.Options{}, err
	}
	return snake.Options{
		Grid:      grid,
		Start:     snake.Cell{X: c.Start.X, Y: c.Start.Y},
		Direction: dir,
		Seed:      seed,
	}, nil
}

// Validate checks the configuration and reports every problem found.
func (c SnakeConfig) Validate() error {
	var problems []string

	grid, err := c.Grid()
	if err != nil {
		problems = append(problems, err.Error())
	}
	if c.Board.CellWidth < 1 || c.Board.CellWidth > 4 {
		problems = append(problems, fmt.Sprintf("board.cell_width must be 1..4, got %d", c.Board.CellWidth))
	}
	if c.Timing.TickMillis <= 0 {
		problems = append(problems, fmt.Sprintf("timing.tick_ms must be positive, got %d", c.Timing.TickMillis))
	}
	if err == nil && !grid.Contains(snake.Cell{X: c.Start.X, Y: c.Start.Y}) {
		problems = append(problems, fmt.Sprintf("start (%d,%d) is outside the %dx%d grid",
			c.Start.X, c.Start.Y, grid.TileCount, grid.TileCount))
	}
	if _, dirErr := snake.ParseDirection(c.Start.Direction); dirErr != nil {
		problems = append(problems, dirErr.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
