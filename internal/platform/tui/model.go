package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Rows used around the board: border (2), HUD, status and help lines.
const chromeRows = 5

// Options configures the game model.
type Options struct {
	Config        config.SnakeConfig
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	AutoStart     bool   // Start a game as soon as the program runs
	ScreenshotDir string // Where ctrl+s writes board captures; empty disables them
}

// Model is the Bubble Tea model for the game. It is the lifecycle layer:
// it forwards key presses to the controller, schedules ticks for the current
// epoch only and renders the controller's state.
type Model struct {
	ctrl      *snake.Controller
	board     *core.Screen
	cellWidth int
	period    time.Duration
	styles    Styles
	keys      KeyMap
	help      help.Model
	logger    *log.Logger

	autoStart     bool
	screenshotDir string

	width    int
	height   int
	notice   string // Game-over notification
	flash    string // Transient message (screenshot path, errors)
	quitting bool
}

// NewModel creates a new model from validated configuration.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickPeriod <= 0 {
		rt.TickPeriod = opts.Config.TickPeriod()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrlOpts, err := opts.Config.ControllerOptions(rt.Seed)
	if err != nil {
		return Model{}, err
	}
	ctrlOpts.Logger = logger

	ctrl, err := snake.NewController(ctrlOpts)
	if err != nil {
		return Model{}, err
	}

	cellWidth := opts.Config.Board.CellWidth
	if cellWidth < 1 {
		cellWidth = 1
	}

	m := Model{
		ctrl:          ctrl,
		board:         core.NewScreen(snake.BoardSize(ctrlOpts.Grid, cellWidth)),
		cellWidth:     cellWidth,
		period:        rt.TickPeriod,
		styles:        NewStyles(opts.Config.Theme),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		autoStart:     opts.AutoStart,
		screenshotDir: opts.ScreenshotDir,
		width:         rt.ScreenW,
		height:        rt.ScreenH,
	}
	m.syncKeys()
	return m, nil
}

// Init starts the first game when autostart is set.
func (m Model) Init() tea.Cmd {
	if !m.autoStart {
		return nil
	}
	epoch := m.ctrl.Start()
	return tickCmd(m.period, epoch)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Init may have started a game without touching the bindings.
	m.syncKeys()
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.flash = "Screenshot failed"
		} else {
			m.flash = "Saved " + path
		}
		return m, nil

	case core.ActionStart:
		if !m.ctrl.CanStart() {
			return m, nil
		}
		epoch := m.ctrl.Start()
		m.notice = ""
		m.flash = ""
		m.syncKeys()
		return m, tickCmd(m.period, epoch)
	}

	if !action.IsDirectional() {
		return m, nil
	}
	dir, _ := directionFor(action)
	if !m.ctrl.Steer(dir) {
		m.logger.Debug("turn rejected", "dir", dir, "status", m.ctrl.Status())
	}
	return m, nil
}

// handleTick advances the game. Stale ticks end their stream by not
// scheduling a successor.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	ev, ok := m.ctrl.Tick(msg.Epoch)
	if !ok {
		return m, nil
	}

	if ev.Collision != snake.CollisionNone {
		m.notice = fmt.Sprintf("Game Over! Final Score: %d", m.ctrl.FinalScore())
		m.syncKeys()
		return m, nil
	}

	return m, tickCmd(m.period, msg.Epoch)
}

// syncKeys enables the start trigger only while no game is running.
func (m *Model) syncKeys() {
	m.keys.Start.SetEnabled(m.ctrl.CanStart())
}

// Controller exposes the game controller.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// saveScreenshot writes the current board as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("screenshots disabled")
	}
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	snake.Render(m.ctrl.State(), m.ctrl.Grid(), m.board, m.cellWidth)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d\n", m.ctrl.Score())
	for y := 0; y < m.board.Height(); y++ {
		sb.WriteString(m.board.Row(y))
		sb.WriteByte('\n')
	}
	content := sb.String()

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardW, boardH := m.board.Width(), m.board.Height()
	if m.width > 0 && m.height > 0 && (m.width < boardW+2 || m.height < boardH+chromeRows) {
		msg := fmt.Sprintf("Window too small\nNeed %dx%d, have %dx%d", boardW+2, boardH+chromeRows, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.Notice.Render(msg))
	}

	// Value receiver: syncing here only affects this render's help line.
	m.syncKeys()

	// Render game to screen buffer
	snake.Render(m.ctrl.State(), m.ctrl.Grid(), m.board, m.cellWidth)

	hud := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("SNAKE"),
		m.styles.Score.Render(fmt.Sprintf("  Score: %d", m.ctrl.Score())),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		hud,
		m.styles.Board.Render(RenderScreen(m.board, m.styles)),
		m.statusLine(),
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// statusLine describes the lifecycle phase and the start trigger.
func (m Model) statusLine() string {
	var line string
	switch m.ctrl.Status() {
	case snake.StatusIdle:
		line = m.styles.Status.Render("Press Enter to start")
	case snake.StatusRunning:
		line = m.styles.Status.Render(fmt.Sprintf("Length %d", len(m.ctrl.State().Snake)))
	case snake.StatusGameOver:
		line = m.styles.Notice.Render(m.notice) + m.styles.Status.Render("  Press Enter to restart")
	}
	if m.flash != "" {
		line += m.styles.Status.Render("  " + m.flash)
	}
	return line
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.ctrl.Status() == snake.StatusGameOver {
		fm.logger.Info("session ended", "final_score", fm.ctrl.FinalScore())
	}
	return nil
}
