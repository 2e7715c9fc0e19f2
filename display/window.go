package display

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window is the ebiten window seen as a render container. The game's Layout
// feeds it the outside size every frame; size changes notify observers.
type Window struct {
	// PixelRatio overrides the monitor's device scale factor when > 0.
	PixelRatio float64

	width, height float64
	scale         float64

	observers map[int]func()
	nextID    int
}

// NewWindow returns a window with no known size yet.
func NewWindow() *Window {
	return &Window{
		scale:     1,
		observers: make(map[int]func()),
	}
}

// Layout records the outside size in logical pixels and returns the screen size in
// device pixels, so the screen image is drawn at full display density.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := w.PixelRatio
	if scale <= 0 {
		scale = deviceScaleFactor()
	}
	width, height := float64(outsideWidth), float64(outsideHeight)
	if width != w.width || height != w.height || scale != w.scale {
		w.width, w.height, w.scale = width, height, scale
		w.notify()
	}
	return int(math.Ceil(width * scale)), int(math.Ceil(height * scale))
}

func (w *Window) notify() {
	for _, fn := range w.observers {
		fn()
	}
}

// Size implements render.Container.
func (w *Window) Size() (float64, float64) {
	return w.width, w.height
}

// DeviceScaleFactor implements render.Container.
func (w *Window) DeviceScaleFactor() float64 {
	return w.scale
}

// Observe implements render.ResizeObserver.
func (w *Window) Observe(onResize func()) func() {
	w.nextID++
	id := w.nextID
	w.observers[id] = onResize
	return func() {
		delete(w.observers, id)
	}
}

func deviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		if s := m.DeviceScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}
