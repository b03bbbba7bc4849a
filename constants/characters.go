package constants

// Glyphs
const (
	HeadGlyph  = 'X'
	GrowGlyph  = '0' // placeholder for segments added by growth
	PrizeGlyph = '$'
)

// Border Glyphs
const (
	BorderVertical   = '|'
	BorderHorizontal = '-'
	BorderCorner     = '+'
)
