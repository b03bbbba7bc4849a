package engine

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/systems"
)

// SoundPlayer receives gameplay sound cues
type SoundPlayer interface {
	PlayPrize()
	PlayGrow()
}

type silentPlayer struct{}

func (silentPlayer) PlayPrize() {}
func (silentPlayer) PlayGrow()  {}

// Config holds the fixed parameters of a game
type Config struct {
	Height    int // play window rows, border included
	Width     int // play window columns, border included
	MaxPrizes int
	Speed     core.Speed
	Seed      int64 // prize placement seed, 0 picks a time based seed
}

// DefaultConfig returns the compiled-in game configuration
func DefaultConfig() Config {
	return Config{
		Height:    constants.GridHeight,
		Width:     constants.GridWidth,
		MaxPrizes: constants.MaxPrizes,
		Speed:     core.SpeedSlow,
	}
}

// Game runs the tick loop over a GameState
type Game struct {
	State *GameState

	renderer render.Renderer
	input    input.Source
	sleeper  Sleeper
	sound    SoundPlayer
	spawner  *systems.SpawnSystem
	interior core.Area
}

// NewGame creates a game with fresh state; sound may be nil
func NewGame(cfg Config, renderer render.Renderer, in input.Source, sleeper Sleeper, sound SoundPlayer) *Game {
	if sound == nil {
		sound = silentPlayer{}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	interior := core.Interior(cfg.Height, cfg.Width)

	return &Game{
		State:    NewGameState(cfg.Height, cfg.Width, cfg.Speed),
		renderer: renderer,
		input:    in,
		sleeper:  sleeper,
		sound:    sound,
		spawner:  systems.NewSpawnSystem(interior, cfg.MaxPrizes, rand.New(rand.NewSource(seed))),
		interior: interior,
	}
}

// Run hides the cursor and ticks until the game ends, returning the game over reason
func (g *Game) Run() error {
	g.renderer.HideCursor()
	log.Printf("game: start, speed %v, head at %v", g.State.Speed, g.State.Snake.Head().Pos)

	for {
		if err := g.Tick(); err != nil {
			log.Printf("game: over after %d ticks, length %d: %v", g.State.Ticks, len(g.State.Snake), err)
			return err
		}
	}
}

// Tick runs one iteration: spawn, draw, wait, read one key, check collisions, then advance
func (g *Game) Tick() error {
	s := g.State

	g.spawner.TopUp(s.Prizes)
	g.draw()

	g.sleeper.Sleep(s.Speed.Interval())

	switch key := g.input.PollKey(); key {
	case input.KeyQuit:
		return ErrQuit
	case input.KeyGrow:
		s.Snake = s.Snake.Grow()
		g.sound.PlayGrow()
	default:
		if dir, ok := key.Direction(); ok {
			s.Direction = dir
		}
	}

	head := s.Snake.Head().Pos

	if systems.HitsWall(s.Snake, g.interior) {
		return fmt.Errorf("%w: head at %v", ErrWallCollision, head)
	}
	if systems.HitsSelf(s.Snake) {
		return fmt.Errorf("%w: head at %v", ErrSelfCollision, head)
	}

	if prize, ok := systems.PrizeUnderHead(s.Snake, s.Prizes); ok {
		s.Snake = s.Snake.Grow()
		s.Prizes.Remove(prize)
		g.sound.PlayPrize()
		log.Printf("game: prize at %v, length %d", head, len(s.Snake))
	}

	s.Snake = s.Snake.Move(s.Direction)
	s.Ticks++
	return nil
}

// draw renders border, snake and prizes in that order
func (g *Game) draw() {
	g.renderer.Clear()
	g.renderer.DrawBorder()
	for _, seg := range g.State.Snake {
		if pos, ok := seg.Position(); ok {
			g.renderer.DrawGlyph(pos.Row, pos.Col, seg.Glyph)
		}
	}
	for p := range g.State.Prizes {
		g.renderer.DrawGlyph(p.Pos.Row, p.Pos.Col, p.Glyph)
	}
	g.renderer.Refresh()
}
