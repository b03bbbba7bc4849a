package systems

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

func newTestSpawner(seed int64) *SpawnSystem {
	area := core.Interior(constants.GridHeight, constants.GridWidth)
	return NewSpawnSystem(area, constants.MaxPrizes, rand.New(rand.NewSource(seed)))
}

func TestTopUpFillsToMax(t *testing.T) {
	s := newTestSpawner(1)
	prizes := components.NewPrizeSet()

	added := s.TopUp(prizes)
	if prizes.Len() != constants.MaxPrizes {
		t.Errorf("Expected %d prizes, got %d", constants.MaxPrizes, prizes.Len())
	}
	if added != constants.MaxPrizes {
		t.Errorf("Expected %d added, got %d", constants.MaxPrizes, added)
	}
}

func TestTopUpAfterConsumption(t *testing.T) {
	s := newTestSpawner(2)
	prizes := components.NewPrizeSet()
	s.TopUp(prizes)

	for p := range prizes {
		prizes.Remove(p)
		break
	}

	if added := s.TopUp(prizes); added != 1 {
		t.Errorf("Expected 1 prize added, got %d", added)
	}
	if prizes.Len() != constants.MaxPrizes {
		t.Errorf("Expected %d prizes, got %d", constants.MaxPrizes, prizes.Len())
	}
}

func TestTopUpFullSetIsNoop(t *testing.T) {
	s := newTestSpawner(3)
	prizes := components.NewPrizeSet()
	s.TopUp(prizes)

	if added := s.TopUp(prizes); added != 0 {
		t.Errorf("Expected no prizes added to a full set, got %d", added)
	}
}

func TestTopUpStaysInInterior(t *testing.T) {
	area := core.Interior(constants.GridHeight, constants.GridWidth)
	for seed := int64(0); seed < 50; seed++ {
		s := newTestSpawner(seed)
		prizes := components.NewPrizeSet()
		s.TopUp(prizes)

		for p := range prizes {
			if !area.Contains(p.Pos) {
				t.Fatalf("Expected prize inside interior, got %v (seed %d)", p.Pos, seed)
			}
			if p.Glyph != constants.PrizeGlyph {
				t.Errorf("Expected glyph %q, got %q", constants.PrizeGlyph, p.Glyph)
			}
		}
	}
}

func TestTopUpCapsAtAreaCells(t *testing.T) {
	area := core.Area{Row: 1, Col: 1, Height: 1, Width: 2}
	s := NewSpawnSystem(area, 5, rand.New(rand.NewSource(7)))
	prizes := components.NewPrizeSet()

	s.TopUp(prizes)
	if prizes.Len() != 2 {
		t.Errorf("Expected cap at 2 cells, got %d", prizes.Len())
	}
}

func TestTopUpMayOverlapSnake(t *testing.T) {
	// Single cell interior: the only spawn point is where the snake sits
	area := core.Area{Row: 1, Col: 1, Height: 1, Width: 1}
	s := NewSpawnSystem(area, 1, rand.New(rand.NewSource(1)))
	prizes := components.NewPrizeSet()
	snake := components.NewSnake(core.Point{Row: 1, Col: 1})

	s.TopUp(prizes)
	if _, ok := PrizeUnderHead(snake, prizes); !ok {
		t.Error("Expected prize spawned under the snake head")
	}
}

func TestHitsWall(t *testing.T) {
	interior := core.Interior(constants.GridHeight, constants.GridWidth)
	tests := []struct {
		name     string
		head     core.Point
		expected bool
	}{
		{"Center", core.Point{Row: 5, Col: 50}, false},
		{"TopEdge", core.Point{Row: 1, Col: 50}, false},
		{"TopBorder", core.Point{Row: 0, Col: 50}, true},
		{"BottomBorder", core.Point{Row: constants.GridHeight - 1, Col: 50}, true},
		{"LeftBorder", core.Point{Row: 5, Col: 0}, true},
		{"RightEdge", core.Point{Row: 5, Col: constants.GridWidth - 2}, false},
		{"RightBorder", core.Point{Row: 5, Col: constants.GridWidth - 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snake := components.NewSnake(tt.head)
			if got := HitsWall(snake, interior); got != tt.expected {
				t.Errorf("Expected HitsWall = %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestHitsSelf(t *testing.T) {
	head := core.Point{Row: 3, Col: 3}
	tests := []struct {
		name     string
		snake    components.Snake
		expected bool
	}{
		{"HeadOnly", components.Snake{components.NewSegment(head, 'X')}, false},
		{"Clear", components.Snake{
			components.NewSegment(head, 'X'),
			components.NewSegment(core.Point{Row: 3, Col: 4}, '0'),
		}, false},
		{"OnTail", components.Snake{
			components.NewSegment(head, 'X'),
			components.NewSegment(core.Point{Row: 3, Col: 4}, '0'),
			components.NewSegment(head, '0'),
		}, true},
		{"UnplacedTail", components.Snake{
			components.NewSegment(head, 'X'),
			components.NewUnplacedSegment('0'),
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HitsSelf(tt.snake); got != tt.expected {
				t.Errorf("Expected HitsSelf = %v, got %v", tt.expected, got)
			}
		})
	}
}
