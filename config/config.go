package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every archetype spawns into.
const Default ecs.LayerID = 0

// ControlsConfig contains touch/keyboard control tuning
type ControlsConfig struct {
	MinSwipeDistance float64 // Logical pixels a gesture must travel to count as a swipe
	MouseAsTouch     bool    // Treat left-button drags as single-finger touches
}

// RenderConfig contains render loop configuration
type RenderConfig struct {
	FrameInterval time.Duration // Minimum time between loop frames
	PixelRatio    float64       // Overrides the monitor scale factor when > 0
	Background    color.RGBA
}

// ArenaConfig contains arena/map configuration
type ArenaConfig struct {
	MapPath  string // Path inside the embedded assets filesystem
	Cols     int    // Fallback grid size when the map cannot be loaded
	Rows     int
	CellSize float64 // World units per grid cell for collision checks

	FloorColor color.RGBA
	GridColor  color.RGBA
	WallColor  color.RGBA
}

// SnakeConfig contains snake movement configuration
type SnakeConfig struct {
	StartLength    int
	MoveEveryTicks int // Game ticks between grid steps
	GrowPerFood    int
	FoodScore      int

	HeadColor color.RGBA
	BodyColor color.RGBA
	FoodColor color.RGBA
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
}

// ToastConfig contains collision toast configuration
type ToastConfig struct {
	Text     string
	Throttle time.Duration // Minimum time between two toasts
	Hold     float32       // Seconds at full opacity
	Fade     float32       // Seconds to fade out
	Color    color.RGBA
}

// HUDConfig contains heads-up display configuration
type HUDConfig struct {
	Margin    int
	TextColor color.RGBA
}

type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config
var Controls ControlsConfig
var Render RenderConfig
var Arena ArenaConfig
var Snake SnakeConfig
var Pause PauseConfig
var Toast ToastConfig
var HUD HUDConfig
var Debug DebugConfig

type DebugConfig struct {
	ShowStats bool // Draw frame/skip/resize counters
	NoSave    bool // Skip settings persistence
}

func init() {
	C = &Config{
		Width:  640,
		Height: 640,
		TPS:    60,
	}

	Controls = ControlsConfig{
		MinSwipeDistance: 30,
		MouseAsTouch:     true,
	}

	Render = RenderConfig{
		FrameInterval: 16 * time.Millisecond,
		Background:    color.RGBA{12, 12, 16, 255},
	}

	Arena = ArenaConfig{
		MapPath:  "levels/arena.tmx",
		Cols:     20,
		Rows:     20,
		CellSize: 16,

		FloorColor: color.RGBA{24, 28, 36, 255},
		GridColor:  color.RGBA{32, 38, 48, 255},
		WallColor:  color.RGBA{90, 96, 110, 255},
	}

	Snake = SnakeConfig{
		StartLength:    3,
		MoveEveryTicks: 8,
		GrowPerFood:    1,
		FoodScore:      10,

		HeadColor: color.RGBA{120, 230, 120, 255},
		BodyColor: color.RGBA{60, 170, 70, 255},
		FoodColor: color.RGBA{230, 80, 80, 255},
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{0, 0, 0, 160},
		TextColor:    color.RGBA{255, 255, 255, 255},
		Title:        "PAUSED",
	}

	Toast = ToastConfig{
		Text:     "Collision!",
		Throttle: time.Second,
		Hold:     0.2,
		Fade:     0.3,
		Color:    color.RGBA{255, 210, 90, 255},
	}

	HUD = HUDConfig{
		Margin:    8,
		TextColor: color.RGBA{220, 220, 220, 255},
	}
}
