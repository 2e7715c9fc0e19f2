package systems

import (
	"log"
	"sync"

	"github.com/automoto/snakeframe/assets"
	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()
	for id := range cfg.Sound.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: Could not preload sound %d: %v", id, err)
		}
	}
}

// QueueSFX schedules a sound effect for the next UpdateAudio.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, id)
}

// UpdateAudio plays the sound effects queued since the last tick
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := getOrCreateAudio(e)
	for _, id := range audioData.PendingSFX {
		playSFX(id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// SetSFXVolume sets the effects volume, clamped to 0..1.
func SetSFXVolume(v float64) {
	globalSFXVolume = max(0, min(1, v))
}

// SFXVolume returns the effects volume.
func SFXVolume() float64 {
	return globalSFXVolume
}

// getOrCreateAudio returns the singleton Audio component, creating if needed.
func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
