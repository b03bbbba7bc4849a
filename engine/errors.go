package engine

import "errors"

// Game over conditions returned by Tick and Run
var (
	ErrQuit          = errors.New("quit requested")
	ErrWallCollision = errors.New("wall collision")
	ErrSelfCollision = errors.New("self collision")
)

// IsGameOver reports whether err ends the game
func IsGameOver(err error) bool {
	return errors.Is(err, ErrQuit) ||
		errors.Is(err, ErrWallCollision) ||
		errors.Is(err, ErrSelfCollision)
}
