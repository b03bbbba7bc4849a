package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSnakeHead  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbPrize      = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbDefault    = tcell.NewRGBColor(255, 255, 255) // White
)

// GlyphStyle returns the style a glyph is drawn with
func GlyphStyle(glyph rune) tcell.Style {
	base := tcell.StyleDefault.Background(RgbBackground)
	switch glyph {
	case constants.HeadGlyph:
		return base.Foreground(RgbSnakeHead).Bold(true)
	case constants.GrowGlyph:
		return base.Foreground(RgbSnakeBody)
	case constants.PrizeGlyph:
		return base.Foreground(RgbPrize).Bold(true)
	case constants.BorderVertical, constants.BorderHorizontal, constants.BorderCorner:
		return base.Foreground(RgbBorder)
	default:
		return base.Foreground(RgbDefault)
	}
}
