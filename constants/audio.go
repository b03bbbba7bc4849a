package constants

import "time"

// SampleRate is the default audio output rate in Hz
const SampleRate = 44100

// Bell Sound Timing
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Blip Sound Timing
const (
	BlipSoundDuration = 60 * time.Millisecond
	BlipSoundAttack   = 5 * time.Millisecond
	BlipSoundRelease  = 30 * time.Millisecond
)
