package components

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Snake holds the body segments, head first
type Snake []Segment

// NewSnake creates a single segment snake with its head at pos
func NewSnake(pos core.Point) Snake {
	return Snake{NewSegment(pos, constants.HeadGlyph)}
}

// Head returns the first segment, panics on an empty snake
func (s Snake) Head() Segment {
	if len(s) == 0 {
		panic("components: head of empty snake")
	}
	return s[0]
}

// Grow appends an unplaced segment to the tail
// The new segment receives the previous tail position on the following Move
func (s Snake) Grow() Snake {
	return append(s, NewUnplacedSegment(constants.GrowGlyph))
}

// Move returns the snake advanced one step in dir
// The head steps along dir; every other segment takes the previous position of the segment before it.
// Glyphs stay with their segments and the receiver is not modified.
func (s Snake) Move(dir core.Direction) Snake {
	if len(s) == 0 {
		panic("components: move of empty snake")
	}

	next := make(Snake, len(s))
	head := s[0]
	next[0] = Segment{Pos: head.Pos.Move(dir), Placed: head.Placed, Glyph: head.Glyph}
	for i := 1; i < len(s); i++ {
		next[i] = Segment{Pos: s[i-1].Pos, Placed: s[i-1].Placed, Glyph: s[i].Glyph}
	}
	return next
}

// BodyContains reports whether any segment behind the head is placed on p
func (s Snake) BodyContains(p core.Point) bool {
	for i := 1; i < len(s); i++ {
		if s[i].At(p) {
			return true
		}
	}
	return false
}
