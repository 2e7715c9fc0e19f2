package systems

import (
	"encoding/json"
	"log"
	"time"

	cfg "github.com/automoto/snakeframe/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen       bool    `json:"fullscreen"`
	MinSwipeDistance float64 `json:"minSwipeDistance"`
	FrameIntervalMs  int     `json:"frameIntervalMs"`
	ShowStats        bool    `json:"showStats"`
	SFXVolume        float64 `json:"sfxVolume"`
}

// settingsStore is the subset of *gdata.Manager used here.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var gdataManager settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "snakeframe",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. No store or no saved item yields nil, nil.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the live configuration.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Fullscreen:       ebiten.IsFullscreen(),
		MinSwipeDistance: cfg.Controls.MinSwipeDistance,
		FrameIntervalMs:  int(cfg.Render.FrameInterval / time.Millisecond),
		ShowStats:        cfg.Debug.ShowStats,
		SFXVolume:        SFXVolume(),
	}
}

// SaveCurrentSettings saves the live configuration
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettings copies loaded settings onto the config globals.
// Used during startup before scenes are created. Fullscreen is applied by the caller.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.MinSwipeDistance > 0 {
		cfg.Controls.MinSwipeDistance = saved.MinSwipeDistance
	}
	if saved.FrameIntervalMs > 0 {
		cfg.Render.FrameInterval = time.Duration(saved.FrameIntervalMs) * time.Millisecond
	}
	cfg.Debug.ShowStats = saved.ShowStats
	SetSFXVolume(saved.SFXVolume)
}
