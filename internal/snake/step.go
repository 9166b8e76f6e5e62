package snake

import "math/rand"

// Collision describes why a game ended.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Event reports what happened during one tick.
type Event struct {
	Ate       bool
	Collision Collision
}

// Steer requests a new direction for the next tick.
// The request is rejected when the game is not running, when d is already
// pending, or when d reverses the heading of the last tick. Comparing against
// the heading rather than the pending direction keeps two consecutive ticks
// from ever moving in opposite directions, while still letting a turn be
// cancelled before the tick that would apply it.
func Steer(st State, d Direction) (State, bool) {
	if st.Status != StatusRunning || d.IsZero() || d == st.Pending {
		return st, false
	}
	if d == st.Heading.Opposite() {
		return st, false
	}
	st.Pending = d
	return st, true
}

// Step advances the game by one tick and returns the new state.
// The input state is not modified. Steps on a game that is not running are no-ops.
func Step(st State, grid Grid, rng *rand.Rand) (State, Event) {
	if st.Status != StatusRunning || len(st.Snake) == 0 {
		return st, Event{}
	}

	next := st.Clone()
	next.Heading = st.Pending
	next.Ticks++

	newHead := st.Head().Add(next.Heading)

	switch {
	case !grid.Contains(newHead):
		next.Status = StatusGameOver
		return next, Event{Collision: CollisionWall}
	case occupied(st.Snake, newHead):
		next.Status = StatusGameOver
		return next, Event{Collision: CollisionSelf}
	}

	next.Snake = append([]Cell{newHead}, next.Snake...)

	if st.HasFood && newHead == st.Food {
		next.Score += FoodPoints
		next.Food, next.HasFood = PlaceFood(next.Snake, grid, rng)
		return next, Event{Ate: true}
	}

	next.Snake = next.Snake[:len(next.Snake)-1]
	return next, Event{}
}

// PlaceFood picks a uniformly random free cell by rejection sampling.
// It returns false only when the snake covers the whole board.
func PlaceFood(snake []Cell, grid Grid, rng *rand.Rand) (Cell, bool) {
	if len(snake) >= grid.Area() {
		return Cell{X: -1, Y: -1}, false
	}
	for {
		c := Cell{X: rng.Intn(grid.TileCount), Y: rng.Intn(grid.TileCount)}
		if !occupied(snake, c) {
			return c, true
		}
	}
}
