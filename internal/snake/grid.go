// Package snake implements the snake game model: the grid, the entity state,
// the step function, food placement, rendering into a core.Screen and the
// lifecycle controller that owns the live state.
package snake

import (
	"errors"
	"fmt"
)

// ErrGridAlignment is returned when the surface size is not a whole number of cells.
var ErrGridAlignment = errors.New("snake: surface size must be a positive multiple of the cell size")

// Grid is the fixed-size square board all coordinates are expressed in.
type Grid struct {
	SurfaceSize int // Drawing surface size in surface units
	CellSize    int // Size of one tile in surface units
	TileCount   int // Tiles per side
}

// NewGrid derives the tile count from the surface and cell sizes.
func NewGrid(surfaceSize, cellSize int) (Grid, error) {
	if surfaceSize <= 0 || cellSize <= 0 || surfaceSize%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w (surface %d, cell %d)", ErrGridAlignment, surfaceSize, cellSize)
	}
	return Grid{
		SurfaceSize: surfaceSize,
		CellSize:    cellSize,
		TileCount:   surfaceSize / cellSize,
	}, nil
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.TileCount && c.Y >= 0 && c.Y < g.TileCount
}

// Area returns the number of tiles on the board.
func (g Grid) Area() int {
	return g.TileCount * g.TileCount
}
