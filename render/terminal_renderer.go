package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

// TerminalRenderer draws a fixed size play window at the top-left of a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	height int
	width  int
}

// NewTerminalRenderer creates a renderer for a height x width window
func NewTerminalRenderer(screen tcell.Screen, height, width int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		height: height,
		width:  width,
	}
}

// Clear blanks the play window
func (r *TerminalRenderer) Clear() {
	style := GlyphStyle(' ')
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawBorder outlines the window, the border cells are outside the interior
func (r *TerminalRenderer) DrawBorder() {
	if r.height < 2 || r.width < 2 {
		return
	}
	last := r.height - 1
	right := r.width - 1

	for col := 1; col < right; col++ {
		r.set(0, col, constants.BorderHorizontal)
		r.set(last, col, constants.BorderHorizontal)
	}
	for row := 1; row < last; row++ {
		r.set(row, 0, constants.BorderVertical)
		r.set(row, right, constants.BorderVertical)
	}
	r.set(0, 0, constants.BorderCorner)
	r.set(0, right, constants.BorderCorner)
	r.set(last, 0, constants.BorderCorner)
	r.set(last, right, constants.BorderCorner)
}

// DrawGlyph puts glyph at row, col; cells outside the window are dropped
func (r *TerminalRenderer) DrawGlyph(row, col int, glyph rune) {
	if row < 0 || row >= r.height || col < 0 || col >= r.width {
		return
	}
	r.set(row, col, glyph)
}

// Refresh flushes pending changes to the terminal
func (r *TerminalRenderer) Refresh() {
	r.screen.Show()
}

// HideCursor hides the terminal cursor
func (r *TerminalRenderer) HideCursor() {
	r.screen.HideCursor()
}

func (r *TerminalRenderer) set(row, col int, glyph rune) {
	r.screen.SetContent(col, row, glyph, nil, GlyphStyle(glyph))
}
