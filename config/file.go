package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the tunable subset of the globals. Nil fields keep the
// built-in default.
type FileConfig struct {
	Window   WindowFileConfig   `yaml:"window"`
	Controls ControlsFileConfig `yaml:"controls"`
	Render   RenderFileConfig   `yaml:"render"`
	Snake    SnakeFileConfig    `yaml:"snake"`
	Audio    AudioFileConfig    `yaml:"audio"`
	Debug    DebugFileConfig    `yaml:"debug"`
}

type WindowFileConfig struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type ControlsFileConfig struct {
	MinSwipeDistance *float64 `yaml:"min_swipe_distance"`
	MouseAsTouch     *bool    `yaml:"mouse_as_touch"`
}

type RenderFileConfig struct {
	FrameIntervalMs *int     `yaml:"frame_interval_ms"`
	PixelRatio      *float64 `yaml:"pixel_ratio"`
}

type SnakeFileConfig struct {
	StartLength    *int `yaml:"start_length"`
	MoveEveryTicks *int `yaml:"move_every_ticks"`
}

type AudioFileConfig struct {
	SFXVolume *float64 `yaml:"sfx_volume"`
}

type DebugFileConfig struct {
	ShowStats *bool `yaml:"show_stats"`
}

// LoadFile reads a YAML config file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// Apply copies every set field onto the globals. Out-of-range values are
// rejected with an error and nothing is applied.
func (fc *FileConfig) Apply() error {
	if err := fc.validate(); err != nil {
		return err
	}

	if v := fc.Window.Width; v != nil {
		C.Width = *v
	}
	if v := fc.Window.Height; v != nil {
		C.Height = *v
	}
	if v := fc.Controls.MinSwipeDistance; v != nil {
		Controls.MinSwipeDistance = *v
	}
	if v := fc.Controls.MouseAsTouch; v != nil {
		Controls.MouseAsTouch = *v
	}
	if v := fc.Render.FrameIntervalMs; v != nil {
		Render.FrameInterval = time.Duration(*v) * time.Millisecond
	}
	if v := fc.Render.PixelRatio; v != nil {
		Render.PixelRatio = *v
	}
	if v := fc.Snake.StartLength; v != nil {
		Snake.StartLength = *v
	}
	if v := fc.Snake.MoveEveryTicks; v != nil {
		Snake.MoveEveryTicks = *v
	}
	if v := fc.Audio.SFXVolume; v != nil {
		Audio.DefaultSFXVol = *v
	}
	if v := fc.Debug.ShowStats; v != nil {
		Debug.ShowStats = *v
	}
	return nil
}

func (fc *FileConfig) validate() error {
	if v := fc.Window.Width; v != nil && *v <= 0 {
		return fmt.Errorf("window.width must be positive, got %d", *v)
	}
	if v := fc.Window.Height; v != nil && *v <= 0 {
		return fmt.Errorf("window.height must be positive, got %d", *v)
	}
	if v := fc.Controls.MinSwipeDistance; v != nil && *v < 0 {
		return fmt.Errorf("controls.min_swipe_distance must not be negative, got %v", *v)
	}
	if v := fc.Render.FrameIntervalMs; v != nil && *v < 0 {
		return fmt.Errorf("render.frame_interval_ms must not be negative, got %d", *v)
	}
	if v := fc.Snake.StartLength; v != nil && *v < 1 {
		return fmt.Errorf("snake.start_length must be at least 1, got %d", *v)
	}
	if v := fc.Snake.MoveEveryTicks; v != nil && *v < 1 {
		return fmt.Errorf("snake.move_every_ticks must be at least 1, got %d", *v)
	}
	if v := fc.Audio.SFXVolume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("audio.sfx_volume must be within 0..1, got %v", *v)
	}
	return nil
}
