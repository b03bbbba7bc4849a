package systems

import (
	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// HitsWall reports whether the head has left the interior
func HitsWall(snake components.Snake, interior core.Area) bool {
	return !interior.Contains(snake.Head().Pos)
}

// HitsSelf reports whether the head shares a cell with any other segment
func HitsSelf(snake components.Snake) bool {
	return snake.BodyContains(snake.Head().Pos)
}

// PrizeUnderHead returns the prize the head currently sits on
func PrizeUnderHead(snake components.Snake, prizes components.PrizeSet) (components.Prize, bool) {
	return prizes.At(snake.Head().Pos)
}
