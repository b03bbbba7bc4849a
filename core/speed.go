package core

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Speed is a tick rate tier in ticks per second
type Speed int

const (
	SpeedSlow Speed = constants.SpeedSlow
	SpeedFast Speed = constants.SpeedFast
)

// Interval returns the delay between two ticks
func (s Speed) Interval() time.Duration {
	if s <= 0 {
		panic("core: non-positive speed")
	}
	return time.Second / time.Duration(s)
}

func (s Speed) String() string {
	switch s {
	case SpeedSlow:
		return "slow"
	case SpeedFast:
		return "fast"
	default:
		return "custom"
	}
}
