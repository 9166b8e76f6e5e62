package snake

// Snapshot captures the observable game state for determinism testing and
// the headless simulator output.
type Snapshot struct {
	Tick     uint64 `yaml:"tick"`
	Status   string `yaml:"status"`
	Score    int    `yaml:"score"`
	SnakeLen int    `yaml:"snake_len"`
	HeadX    int    `yaml:"head_x"`
	HeadY    int    `yaml:"head_y"`
	Heading  string `yaml:"heading"`
	FoodX    int    `yaml:"food_x"`
	FoodY    int    `yaml:"food_y"`
	Epoch    uint64 `yaml:"epoch"`
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot() Snapshot {
	st := c.state

	headX, headY := 0, 0
	if len(st.Snake) > 0 {
		headX = st.Snake[0].X
		headY = st.Snake[0].Y
	}
	foodX, foodY := -1, -1
	if st.HasFood {
		foodX, foodY = st.Food.X, st.Food.Y
	}

	return Snapshot{
		Tick:     st.Ticks,
		Status:   st.Status.String(),
		Score:    st.Score,
		SnakeLen: len(st.Snake),
		HeadX:    headX,
		HeadY:    headY,
		Heading:  st.Heading.String(),
		FoodX:    foodX,
		FoodY:    foodY,
		Epoch:    c.epoch,
	}
}
