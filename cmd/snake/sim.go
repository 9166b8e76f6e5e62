package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

var (
	flagTicks int
	flagMoves string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game and print the result",
	Long: `Run one game without a terminal UI and print the final snapshot as YAML
followed by the board.

The move script is read one character per tick: u, d, l, r steer the snake,
'.' keeps the current heading. Whitespace is ignored. When the script runs
out the snake keeps going until --ticks is reached or the game ends.

Examples:
  snake sim --seed 7 --ticks 30
  snake sim --seed 7 --moves "....uuuu.llll"`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Maximum number of ticks to run")
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script (u/d/l/r/.)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	cfg, _, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	opts, err := cfg.ControllerOptions(seed)
	if err != nil {
		return err
	}
	opts.Logger = logger

	ctrl, err := snake.NewController(opts)
	if err != nil {
		return err
	}

	runScript(ctrl, moves, flagTicks)

	snap, err := yaml.Marshal(ctrl.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	board := core.NewScreen(snake.BoardSize(ctrl.Grid(), cfg.Board.CellWidth))
	snake.Render(ctrl.State(), ctrl.Grid(), board, cfg.Board.CellWidth)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(snap))
	fmt.Fprintln(out, "---")
	fmt.Fprintln(out, board.String())
	return nil
}

// runScript starts a game and feeds it one scripted move per tick.
// A zero direction means no input for that tick.
func runScript(ctrl *snake.Controller, moves []snake.Direction, maxTicks int) {
	epoch := ctrl.Start()
	for i := 0; i < maxTicks && ctrl.Running(); i++ {
		if i < len(moves) && !moves[i].IsZero() {
			ctrl.Steer(moves[i])
		}
		ctrl.Tick(epoch)
	}
}

// parseMoves decodes a move script into per-tick directions.
func parseMoves(script string) ([]snake.Direction, error) {
	moves := make([]snake.Direction, 0, len(script))
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		switch unicode.ToLower(r) {
		case 'u':
			moves = append(moves, snake.Up)
		case 'd':
			moves = append(moves, snake.Down)
		case 'l':
			moves = append(moves, snake.Left)
		case 'r':
			moves = append(moves, snake.Right)
		case '.':
			moves = append(moves, snake.Direction{})
		default:
			return nil, fmt.Errorf("invalid move %q at offset %d (want u, d, l, r or .)", r, i)
		}
	}
	return moves, nil
}
