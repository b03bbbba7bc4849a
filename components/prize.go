package components

import (
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Prize is a collectible that grows the snake when the head reaches it
type Prize struct {
	Pos   core.Point
	Glyph rune
}

// NewPrize creates a prize with the default glyph
func NewPrize(pos core.Point) Prize {
	return Prize{Pos: pos, Glyph: constants.PrizeGlyph}
}

// PrizeSet holds outstanding prizes keyed by value
type PrizeSet map[Prize]struct{}

// NewPrizeSet creates an empty prize set
func NewPrizeSet() PrizeSet {
	return make(PrizeSet)
}

// Add inserts p, a prize equal to an existing one is absorbed
func (ps PrizeSet) Add(p Prize) {
	ps[p] = struct{}{}
}

// Remove deletes p and reports whether it was present
func (ps PrizeSet) Remove(p Prize) bool {
	if _, ok := ps[p]; !ok {
		return false
	}
	delete(ps, p)
	return true
}

// At returns the prize located on pos, if any
func (ps PrizeSet) At(pos core.Point) (Prize, bool) {
	for p := range ps {
		if p.Pos == pos {
			return p, true
		}
	}
	return Prize{}, false
}

// Len returns the number of outstanding prizes
func (ps PrizeSet) Len() int {
	return len(ps)
}
