package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Rune used for filled tiles.
const tileRune = '█'

// BoardSize returns the screen size in characters needed to draw grid
// with tiles cellWidth columns wide.
func BoardSize(grid Grid, cellWidth int) (w, h int) {
	return grid.TileCount * cellWidth, grid.TileCount
}

// Render draws st into dst with the board's top-left corner at the screen origin.
// The board area is cleared to the background first, then food, then the snake,
// so the output depends only on the arguments.
func Render(st State, grid Grid, dst *core.Screen, cellWidth int) {
	if cellWidth < 1 {
		cellWidth = 1
	}
	w, h := BoardSize(grid, cellWidth)
	dst.FillRect(core.NewRect(0, 0, w, h), ' ', core.ColorBackground)

	if st.HasFood {
		drawTile(dst, st.Food, cellWidth, core.ColorFood)
	}

	// Tail first so the head wins if anything overlaps.
	for i := len(st.Snake) - 1; i >= 0; i-- {
		color := core.ColorSnake
		if i == 0 {
			color = core.ColorSnakeHead
		}
		drawTile(dst, st.Snake[i], cellWidth, color)
	}
}

func drawTile(dst *core.Screen, c Cell, cellWidth int, color core.Color) {
	dst.FillRect(core.NewRect(c.X*cellWidth, c.Y, cellWidth, 1), tileRune, color)
}
