package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	fastFlag  = flag.Bool("fast", false, "Run at the fast speed tier")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	seedFlag  = flag.Int64("seed", 0, "Prize placement seed (0 = time based)")
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	code := run()
	if logFile != nil {
		logFile.Close()
	}
	// Every game ends in a loss or a quit
	os.Exit(code)
}

// run plays one game and returns the process exit status
func run() int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg := engine.DefaultConfig()
	if *fastFlag {
		cfg.Speed = core.SpeedFast
	}
	cfg.Seed = *seedFlag

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	// Non-fatal, game can run without sound
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	poller := input.NewPoller(screen)
	defer poller.Close()

	renderer := render.NewTerminalRenderer(screen, cfg.Height, cfg.Width)
	game := engine.NewGame(cfg, renderer, poller, engine.NewTimeSleeper(), sound)

	err = game.Run()
	if engine.IsGameOver(err) {
		log.Printf("Game over: %v", err)
	} else {
		log.Printf("Game stopped: %v", err)
	}
	return 1
}
