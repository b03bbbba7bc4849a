package systems

import (
	"log"
	"math/rand"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// SpawnSystem keeps the prize set topped up
// Positions are drawn uniformly over the interior with no check against the snake or other prizes
type SpawnSystem struct {
	area      core.Area
	maxPrizes int
	rng       *rand.Rand
}

// NewSpawnSystem creates a spawn system placing prizes inside area
func NewSpawnSystem(area core.Area, maxPrizes int, rng *rand.Rand) *SpawnSystem {
	// Equal prizes collapse in the set, so the cap cannot exceed the number of cells
	if cells := area.Width * area.Height; maxPrizes > cells {
		maxPrizes = cells
	}
	if maxPrizes < 0 {
		maxPrizes = 0
	}
	return &SpawnSystem{
		area:      area,
		maxPrizes: maxPrizes,
		rng:       rng,
	}
}

// TopUp adds prizes until the set holds the configured maximum, returns the number added
func (s *SpawnSystem) TopUp(prizes components.PrizeSet) int {
	added := 0
	for prizes.Len() < s.maxPrizes {
		before := prizes.Len()
		prizes.Add(components.NewPrize(s.randomPoint()))
		if prizes.Len() > before {
			added++
		}
	}
	if added > 0 {
		log.Printf("spawn: added %d prizes, outstanding %d", added, prizes.Len())
	}
	return added
}

// randomPoint returns a uniformly distributed point inside the area
func (s *SpawnSystem) randomPoint() core.Point {
	return core.Point{
		Row: s.area.Row + s.rng.Intn(s.area.Height),
		Col: s.area.Col + s.rng.Intn(s.area.Width),
	}
}
