package core

// Color is the role of a screen cell. The platform layer maps roles to
// concrete terminal colors from the active theme.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBackground
	ColorFood
	ColorSnake
	ColorSnakeHead
)

// String returns the role name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBackground:
		return "background"
	case ColorFood:
		return "food"
	case ColorSnake:
		return "snake"
	case ColorSnakeHead:
		return "head"
	default:
		return "unknown"
	}
}
