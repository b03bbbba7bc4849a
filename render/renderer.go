package render

// Renderer draws the play window
// The game calls Clear, DrawBorder, DrawGlyph for every snake segment and prize, then Refresh, once per tick
type Renderer interface {
	Clear()
	DrawBorder()
	DrawGlyph(row, col int, glyph rune)
	Refresh()
	HideCursor()
}
