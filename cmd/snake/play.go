package main

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagTick        time.Duration
	flagAutoStart   bool
	flagScreenshots string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD/hjkl - Steer
  Enter/Space      - Start (disabled while a game is running)
  Ctrl+S           - Save the board to a text file
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play --autostart
  snake play --tick 150ms
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick period (0 = use config)")
	cmd.Flags().BoolVar(&flagAutoStart, "autostart", false, "Start a game immediately")
	cmd.Flags().StringVar(&flagScreenshots, "screenshots", "~/.snake/screenshots", "Directory for ctrl+s board captures")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	if source != "" {
		logger.Info("loaded config", "path", source)
	}

	rt := core.DefaultConfig()
	rt.TickPeriod = cfg.TickPeriod()
	if flagTick > 0 {
		rt.TickPeriod = flagTick
	}
	rt.Seed = flagSeed
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	shotDir, err := expandHome(flagScreenshots)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Config:        cfg,
		Runtime:       rt,
		Logger:        logger,
		AutoStart:     flagAutoStart,
		ScreenshotDir: shotDir,
	})
}
