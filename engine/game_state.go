package engine

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// GameState is the mutable state of one game, owned by the Game that runs it
type GameState struct {
	Snake     components.Snake
	Prizes    components.PrizeSet
	Direction core.Direction // DirNone until the first arrow key
	Speed     core.Speed
	Ticks     int // completed ticks
}

// NewGameState creates the initial state: a one segment snake at the window center, no prizes
func NewGameState(height, width int, speed core.Speed) *GameState {
	return &GameState{
		Snake:     components.NewSnake(core.Point{Row: height / 2, Col: width / 2}),
		Prizes:    components.NewPrizeSet(),
		Direction: core.DirNone,
		Speed:     speed,
	}
}
