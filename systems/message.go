package systems

import (
	"image/color"
	"time"

	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowToast displays msg unless another toast was shown less than
// cfg.Toast.Throttle before now. It reports whether the toast was shown.
func ShowToast(ecs *ecs.ECS, msg string, now time.Time) bool {
	toast := getOrCreateToast(ecs)
	if !toast.LastShown.IsZero() && now.Sub(toast.LastShown) <= cfg.Toast.Throttle {
		return false
	}

	toast.Text = msg
	toast.Alpha = 1
	toast.LastShown = now
	toast.Fade = gween.NewSequence(
		gween.New(1, 1, cfg.Toast.Hold, ease.Linear),
		gween.New(1, 0, cfg.Toast.Fade, ease.OutQuad),
	)
	return true
}

// UpdateToast advances the fade of the showing toast by one tick.
func UpdateToast(ecs *ecs.ECS) {
	toast := getOrCreateToast(ecs)
	if toast.Fade == nil {
		return
	}
	alpha, _, done := toast.Fade.Update(1 / float32(cfg.C.TPS))
	toast.Alpha = alpha
	if done {
		toast.Fade = nil
		toast.Alpha = 0
		toast.Text = ""
	}
}

// ToastVisible reports whether a toast is on screen.
func ToastVisible(ecs *ecs.ECS) bool {
	return getOrCreateToast(ecs).Fade != nil
}

// DrawToast renders the showing toast centered near the top of the board.
func DrawToast(ecs *ecs.ECS, screen *ebiten.Image) {
	toast := getOrCreateToast(ecs)
	if toast.Fade == nil || toast.Alpha <= 0 {
		return
	}
	vp := GetOrCreateViewport(ecs)
	board := BoardFor(1, 1, vp.Size, vp.Scale)

	face := fonts.Bold.Get()
	w, h, ascent := textSize(face, toast.Text)
	padding := 8.0
	boxW := w + padding*2
	boxH := h + padding*2
	boxX := (vp.Size - boxW) / 2
	boxY := vp.Size / 8

	fillRect(screen, board, boxX, boxY, boxW, boxH, fade(color.RGBA{0, 0, 0, 200}, toast.Alpha))
	drawText(screen, toast.Text, face, boxX+padding, boxY+padding+ascent, vp.Scale, fade(cfg.Toast.Color, toast.Alpha))
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// getOrCreateToast returns the singleton Toast component, creating if needed.
func getOrCreateToast(ecs *ecs.ECS) *components.ToastData {
	entry, ok := components.Toast.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Toast))
	}
	return components.Toast.Get(entry)
}
