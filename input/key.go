package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/core"
)

// Key is a recognized game keystroke
type Key int

const (
	KeyNone Key = iota // nothing pending, or a key the game does not use
	KeyQuit
	KeyGrow
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Direction returns the heading selected by an arrow key
func (k Key) Direction() (core.Direction, bool) {
	switch k {
	case KeyUp:
		return core.DirUp, true
	case KeyDown:
		return core.DirDown, true
	case KeyLeft:
		return core.DirLeft, true
	case KeyRight:
		return core.DirRight, true
	default:
		return core.DirNone, false
	}
}

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyGrow:
		return "grow"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "none"
	}
}

// TranslateKey maps a tcell key event to a game key
func TranslateKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return KeyQuit
		case 'a':
			return KeyGrow
		}
	}
	return KeyNone
}
