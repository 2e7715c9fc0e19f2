package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBump
	SoundEat
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is a synthesized sound effect: a sine sweep from Freq to EndFreq with a
// linear decay.
type Tone struct {
	Freq     float64
	EndFreq  float64 // Zero keeps Freq
	Duration time.Duration
	Volume   float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundBump:       {Freq: 160, EndFreq: 90, Duration: 120 * time.Millisecond, Volume: 1.0},
			SoundEat:        {Freq: 660, EndFreq: 990, Duration: 80 * time.Millisecond, Volume: 0.6},
			SoundMenuSelect: {Freq: 880, Duration: 40 * time.Millisecond, Volume: 0.4},
		},
	}
}
