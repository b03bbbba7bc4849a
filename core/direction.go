package core

// Direction is the heading of the snake head
type Direction int

const (
	DirNone Direction = iota // no key pressed yet, snake is stationary
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the row and column offset of a single step
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
