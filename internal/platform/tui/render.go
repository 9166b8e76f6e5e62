package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Styles holds the lipgloss styles derived from the configured theme.
type Styles struct {
	cells  map[core.Color]lipgloss.Style
	Title  lipgloss.Style
	Score  lipgloss.Style
	Status lipgloss.Style
	Notice lipgloss.Style
	Board  lipgloss.Style
}

// NewStyles builds styles for the given theme.
func NewStyles(theme config.ThemeConfig) Styles {
	bg := lipgloss.Color(theme.Background)
	text := lipgloss.Color(theme.Text)

	return Styles{
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:    lipgloss.NewStyle(),
			core.ColorBackground: lipgloss.NewStyle().Background(bg),
			core.ColorFood:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Food)).Background(bg),
			core.ColorSnake:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Snake)).Background(bg),
			core.ColorSnakeHead:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Head)).Background(bg),
		},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Snake)),
		Score:  lipgloss.NewStyle().Foreground(text),
		Status: lipgloss.NewStyle().Foreground(text).Faint(true),
		Notice: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Food)),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles.cells[startColor]
			if !ok {
				style = styles.cells[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
