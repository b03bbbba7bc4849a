package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundBell SoundType = iota // Prize consumed
	SoundBlip                  // Manual grow
	soundTypeCount
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}
