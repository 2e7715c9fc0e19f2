package systems

import (
	"errors"
	"testing"
	"time"

	cfg "github.com/automoto/snakeframe/config"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s settingsStore) {
	t.Helper()
	prev := gdataManager
	controls, render, debug, volume := cfg.Controls, cfg.Render, cfg.Debug, SFXVolume()
	gdataManager = s
	t.Cleanup(func() {
		gdataManager = prev
		cfg.Controls, cfg.Render, cfg.Debug = controls, render, debug
		SetSFXVolume(volume)
	})
}

func TestSettingsRoundTrip(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{}})

	want := &SavedSettings{Fullscreen: true, MinSwipeDistance: 42, FrameIntervalMs: 33, ShowStats: true, SFXVolume: 0.25}
	if err := SaveSettings(want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || *got != *want {
		t.Fatalf("LoadSettings() = %+v, want %+v", got, want)
	}

	ApplySavedSettings(got)
	if cfg.Controls.MinSwipeDistance != 42 {
		t.Errorf("MinSwipeDistance = %v, want 42", cfg.Controls.MinSwipeDistance)
	}
	if cfg.Render.FrameInterval != 33*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 33ms", cfg.Render.FrameInterval)
	}
	if !cfg.Debug.ShowStats {
		t.Error("ShowStats not applied")
	}
	if SFXVolume() != 0.25 {
		t.Errorf("SFXVolume() = %v, want 0.25", SFXVolume())
	}
}

func TestLoadSettingsWithoutData(t *testing.T) {
	tests := []struct {
		name  string
		store settingsStore
	}{
		{"no store", nil},
		{"nothing saved", &memStore{items: map[string][]byte{}}},
		{"unreadable", &memStore{loadErr: errors.New("disk gone")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useStore(t, tt.store)
			got, err := LoadSettings()
			if got != nil || err != nil {
				t.Errorf("LoadSettings() = %v, %v, want nil, nil", got, err)
			}
		})
	}
}

func TestLoadSettingsCorrupt(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{"settings": []byte("{not json")}})
	if _, err := LoadSettings(); err == nil {
		t.Error("expected an error for corrupt settings")
	}
}

func TestApplySavedSettingsKeepsDefaultsForZeroValues(t *testing.T) {
	useStore(t, nil)
	swipe, interval := cfg.Controls.MinSwipeDistance, cfg.Render.FrameInterval

	ApplySavedSettings(&SavedSettings{})
	ApplySavedSettings(nil)

	if cfg.Controls.MinSwipeDistance != swipe || cfg.Render.FrameInterval != interval {
		t.Errorf("zero settings overwrote defaults: %v, %v", cfg.Controls.MinSwipeDistance, cfg.Render.FrameInterval)
	}
}
