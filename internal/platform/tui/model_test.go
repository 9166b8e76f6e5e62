package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyShot  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Config == (config.SnakeConfig{}) {
		opts.Config = config.DefaultSnakeConfig()
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = 42
	}
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestStartTrigger(t *testing.T) {
	m := newTestModel(t, Options{})

	if cmd := m.Init(); cmd != nil {
		t.Error("Init without autostart should not schedule ticks")
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("idle view should prompt for start")
	}

	m, cmd := update(t, m, keyEnter)
	if cmd == nil {
		t.Fatal("start should schedule the first tick")
	}
	if !m.Controller().Running() {
		t.Fatalf("status = %s, expected running", m.Controller().Status())
	}
	epoch := m.Controller().Epoch()

	// The start trigger is disabled while running.
	m, cmd = update(t, m, keyEnter)
	if cmd != nil || m.Controller().Epoch() != epoch {
		t.Error("start must be ignored while a game is running")
	}
}

func TestAutoStartDisablesStartKey(t *testing.T) {
	m := newTestModel(t, Options{AutoStart: true})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("autostart should schedule the first tick")
	}
	epoch := m.Controller().Epoch()
	m, _ = update(t, m, TickMsg{Epoch: epoch})

	if strings.Contains(m.View(), "enter start") {
		t.Error("help should not offer start while a game is running")
	}

	m, cmd := update(t, m, keyEnter)
	if cmd != nil {
		t.Error("start key must not schedule ticks while running")
	}
	if got := m.Controller().Epoch(); got != epoch {
		t.Errorf("epoch = %d after enter, expected %d", got, epoch)
	}
	if got := m.Controller().State().Ticks; got != 1 {
		t.Errorf("ticks = %d after enter, expected 1 (game was reset)", got)
	}
}

func TestScoreReadoutAfterEating(t *testing.T) {
	// A 2x2 board starting in the top-left corner heading right: food is
	// always reachable by moving right and then down.
	cfg := config.DefaultSnakeConfig()
	cfg.Board.SurfaceSize = 2
	cfg.Board.CellSize = 1
	cfg.Start.X, cfg.Start.Y = 0, 0
	cfg.Start.Direction = "right"

	m := newTestModel(t, Options{Config: cfg})
	m, _ = update(t, m, keyEnter)
	epoch := m.Controller().Epoch()

	if !strings.Contains(m.View(), "Score: 0") {
		t.Fatalf("initial readout should show zero:\n%s", m.View())
	}

	for i := 0; i < 3 && m.Controller().Score() == 0; i++ {
		st := m.Controller().State()
		if !st.HasFood {
			t.Fatal("food should be on the board")
		}
		if st.Food.X > st.Head().X {
			m, _ = update(t, m, keyRight)
		} else if st.Food.Y > st.Head().Y {
			m, _ = update(t, m, keyDown)
		}
		m, _ = update(t, m, TickMsg{Epoch: epoch})
	}

	if got := m.Controller().Score(); got != snake.FoodPoints {
		t.Fatalf("score = %d, expected %d", got, snake.FoodPoints)
	}
	if !strings.Contains(m.View(), "Score: 10") {
		t.Errorf("readout should update after eating:\n%s", m.View())
	}
}

func TestTickScheduling(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, keyEnter)
	epoch := m.Controller().Epoch()

	m, cmd := update(t, m, TickMsg{Epoch: epoch})
	if cmd == nil {
		t.Error("current tick should schedule its successor")
	}
	if got := m.Controller().State().Ticks; got != 1 {
		t.Errorf("ticks = %d, expected 1", got)
	}

	_, cmd = update(t, m, TickMsg{Epoch: epoch - 1})
	if cmd != nil {
		t.Error("stale tick must not be rescheduled")
	}
	if got := m.Controller().State().Ticks; got != 1 {
		t.Errorf("stale tick advanced the game to %d ticks", got)
	}
}

func TestSteeringKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, keyEnter)

	// Heading right: left is a reversal, up is a turn.
	m, _ = update(t, m, keyLeft)
	if got := m.Controller().State().Pending; got != snake.Right {
		t.Errorf("pending = %s after reversal attempt, expected right", got)
	}
	m, _ = update(t, m, keyUp)
	if got := m.Controller().State().Pending; got != snake.Up {
		t.Errorf("pending = %s, expected up", got)
	}
}

func TestGameOverNotification(t *testing.T) {
	m := newTestModel(t, Options{AutoStart: true})
	if cmd := m.Init(); cmd == nil {
		t.Fatal("autostart should schedule the first tick")
	}
	epoch := m.Controller().Epoch()

	// Default start is (10,10) heading right; the wall is ten moves away.
	var cmd tea.Cmd
	for i := 0; i < 20 && m.Controller().Running(); i++ {
		m, cmd = update(t, m, TickMsg{Epoch: epoch})
	}

	if m.Controller().Status() != snake.StatusGameOver {
		t.Fatalf("status = %s, expected game_over", m.Controller().Status())
	}
	if cmd != nil {
		t.Error("the colliding tick must not schedule another tick")
	}

	view := m.View()
	if !strings.Contains(view, "Game Over! Final Score:") {
		t.Errorf("view should show the final score:\n%s", view)
	}

	m, cmd = update(t, m, keyEnter)
	if cmd == nil || !m.Controller().Running() {
		t.Error("start should be enabled again after game over")
	}
	if m.Controller().Score() != 0 {
		t.Errorf("score = %d after restart, expected 0", m.Controller().Score())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := update(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestWindowTooSmall(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the resize notice")
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if strings.Contains(m.View(), "Window too small") {
		t.Error("large window should show the board")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{ScreenshotDir: dir, AutoStart: true})
	m.Init()

	m, _ = update(t, m, keyShot)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one screenshot, found %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Score: 0\n") {
		t.Errorf("screenshot should start with the score, got %q", string(data)[:20])
	}
	if !strings.Contains(string(data), "██") {
		t.Error("screenshot should contain the snake")
	}
	if !strings.Contains(m.View(), "Saved") {
		t.Error("view should confirm the screenshot")
	}
}

func TestRuntimeTickPeriodOverride(t *testing.T) {
	rt := core.DefaultConfig()
	rt.Seed = 1
	rt.TickPeriod = 0
	m := newTestModel(t, Options{Runtime: rt})
	if m.period != config.DefaultSnakeConfig().TickPeriod() {
		t.Errorf("period = %v, expected config default", m.period)
	}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", keyUp, core.ActionUp},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, core.ActionDown},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", keyEnter, core.ActionStart},
		{"ctrl+s", keyShot, core.ActionScreenshot},
		{"q", keyQuit, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %s, expected %s", tc.msg.String(), got, tc.want)
			}
		})
	}

	km.Start.SetEnabled(false)
	if got := km.Action(keyEnter); got != core.ActionNone {
		t.Errorf("disabled start binding matched as %s", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, 'a', core.ColorSnake)
	s.SetCell(1, 0, 'b', core.ColorSnake)

	out := RenderScreen(s, NewStyles(config.DefaultSnakeConfig().Theme))
	if !strings.Contains(out, "ab") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected two rows, got %q", out)
	}
}
