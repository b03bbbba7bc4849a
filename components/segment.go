package components

import "github.com/lixenwraith/vi-snake/core"

// Segment is one cell of the snake body
// A segment created by growth has no position until the next move places it
type Segment struct {
	Pos    core.Point
	Placed bool
	Glyph  rune
}

// NewSegment creates a placed segment
func NewSegment(pos core.Point, glyph rune) Segment {
	return Segment{Pos: pos, Placed: true, Glyph: glyph}
}

// NewUnplacedSegment creates a segment without a position
func NewUnplacedSegment(glyph rune) Segment {
	return Segment{Glyph: glyph}
}

// Position returns the segment coordinate and whether it has one
func (s Segment) Position() (core.Point, bool) {
	return s.Pos, s.Placed
}

// At reports whether the segment is placed on p
func (s Segment) At(p core.Point) bool {
	return s.Placed && s.Pos == p
}
