package constants

// Play Window
const (
	// GridHeight is the number of rows in the play window, border included
	GridHeight = 10

	// GridWidth is the number of columns in the play window, border included
	GridWidth = 100
)

// Prize Limits
const (
	// MaxPrizes is the number of prizes kept outstanding at once
	MaxPrizes = 5
)

// Speed Tiers (ticks per second)
const (
	SpeedSlow = 5
	SpeedFast = 10
)
