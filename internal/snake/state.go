package snake

import (
	"fmt"
	"strings"
)

// FoodPoints is the score awarded per food eaten.
const FoodPoints = 10

// Cell is a tile coordinate on the grid.
type Cell struct {
	X, Y int
}

// Add returns the cell one step away in direction d.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit movement vector.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsZero reports whether d is the zero vector.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Horizontal reports whether d moves along the x axis.
func (d Direction) Horizontal() bool {
	return d.DY == 0 && d.DX != 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "down", "left" or "right" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Direction{}, fmt.Errorf("snake: unknown direction %q", s)
	}
}

// Status is the lifecycle phase of a game.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is the complete mutable state of one game.
// It is passed to and returned from Steer and Step; callers own their copy.
type State struct {
	Snake   []Cell    // Head at index 0, no duplicates while running
	Heading Direction // Direction applied by the last tick
	Pending Direction // Direction the next tick will apply
	Food    Cell
	HasFood bool // False only when the snake covers the whole board
	Score   int
	Status  Status
	Ticks   uint64
}

// NewState returns a fresh running game with a one-cell snake at start.
// Food is not placed yet; see PlaceFood.
func NewState(start Cell, dir Direction) State {
	return State{
		Snake:   []Cell{start},
		Heading: dir,
		Pending: dir,
		Status:  StatusRunning,
	}
}

// Head returns the snake's head cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake segment is at c.
func (s State) Occupies(c Cell) bool {
	return occupied(s.Snake, c)
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	c := s
	c.Snake = append([]Cell(nil), s.Snake...)
	return c
}

func occupied(snake []Cell, c Cell) bool {
	for _, seg := range snake {
		if seg == c {
			return true
		}
	}
	return false
}
