package snake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Options configures a Controller.
type Options struct {
	Grid      Grid
	Start     Cell      // Spawn cell of the one-segment snake
	Direction Direction // Initial heading
	Seed      int64     // RNG seed for food placement
	Logger    *log.Logger
}

// Controller owns the single live game state and the tick epoch.
//
// The epoch is the cancellation handle of the repeating tick: every tick
// message carries the epoch it was scheduled under, and Start and stop advance
// the epoch so that ticks from an older stream are dropped instead of
// driving a second concurrent tick stream.
//
// A Controller is not safe for concurrent use; the platform calls it from a
// single event loop.
type Controller struct {
	grid   Grid
	start  Cell
	dir    Direction
	rng    *rand.Rand
	logger *log.Logger

	state      State
	epoch      uint64
	finalScore int
}

// NewController creates an idle controller.
func NewController(opts Options) (*Controller, error) {
	if opts.Grid.TileCount <= 0 {
		return nil, fmt.Errorf("snake: grid has no tiles")
	}
	if !opts.Grid.Contains(opts.Start) {
		return nil, fmt.Errorf("snake: start cell %s outside %dx%d grid", opts.Start, opts.Grid.TileCount, opts.Grid.TileCount)
	}
	if opts.Direction.IsZero() {
		return nil, fmt.Errorf("snake: initial direction must not be zero")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		grid:   opts.Grid,
		start:  opts.Start,
		dir:    opts.Direction,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
		state:  State{Status: StatusIdle},
	}, nil
}

// Grid returns the board the controller plays on.
func (c *Controller) Grid() Grid {
	return c.grid
}

// Start cancels any running tick stream, resets the game and returns the
// epoch new ticks must be scheduled under.
func (c *Controller) Start() uint64 {
	if c.state.Status == StatusRunning {
		c.logger.Debug("restarting running game", "epoch", c.epoch)
	}
	c.epoch++

	st := NewState(c.start, c.dir)
	st.Food, st.HasFood = PlaceFood(st.Snake, c.grid, c.rng)
	c.state = st
	c.finalScore = 0

	c.logger.Info("game started", "epoch", c.epoch, "head", c.start, "food", st.Food)
	return c.epoch
}

// Tick advances the game if epoch is current and the game is running.
// The boolean is false for stale or late ticks, which must not be rescheduled.
func (c *Controller) Tick(epoch uint64) (Event, bool) {
	if epoch != c.epoch || c.state.Status != StatusRunning {
		return Event{}, false
	}

	next, ev := Step(c.state, c.grid, c.rng)
	c.state = next

	if ev.Ate {
		c.logger.Debug("food eaten", "score", next.Score, "len", len(next.Snake), "food", next.Food)
	}
	if ev.Collision != CollisionNone {
		c.stop(ev.Collision)
	}
	return ev, true
}

// stop ends the game: the tick stream is cancelled and the final score kept.
func (c *Controller) stop(reason Collision) {
	c.epoch++
	c.state.Status = StatusGameOver
	c.finalScore = c.state.Score
	c.logger.Info("game over", "reason", reason, "score", c.finalScore, "ticks", c.state.Ticks)
}

// Steer forwards a direction request to the live state.
func (c *Controller) Steer(d Direction) bool {
	var ok bool
	c.state, ok = Steer(c.state, d)
	return ok
}

// State returns a copy of the live state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Status returns the lifecycle phase.
func (c *Controller) Status() Status {
	return c.state.Status
}

// Running reports whether ticks are being accepted.
func (c *Controller) Running() bool {
	return c.state.Status == StatusRunning
}

// CanStart reports whether the start trigger is enabled.
func (c *Controller) CanStart() bool {
	return c.state.Status != StatusRunning
}

// Epoch returns the current tick epoch.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// Score returns the live score.
func (c *Controller) Score() int {
	return c.state.Score
}

// FinalScore returns the score of the last finished game.
func (c *Controller) FinalScore() int {
	return c.finalScore
}
