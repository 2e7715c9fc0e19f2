// Package render drives a capped-rate, double-buffered render loop.
//
// A Manager owns a visible and an off-screen Surface. Each accepted frame clears
// the off-screen surface, hands it to the caller's DrawFunc, then copies it onto
// the visible surface in one blit so a partially drawn frame is never shown.
// Hosts supply the surfaces, the container they are sized from, and the frame
// scheduler; see the display and terminal packages.
package render

import "math"

// Size is the derived size of a surface.
type Size struct {
	BackingWidth  int     // physical pixels
	BackingHeight int     // physical pixels
	DisplayWidth  float64 // logical pixels
	DisplayHeight float64 // logical pixels
}

// Surface is a drawable buffer.
type Surface interface {
	SetSize(s Size)
	Clear()
	// Blit copies src onto the surface at the origin without scaling.
	Blit(src Surface)
}

// Container is the element surfaces are fitted into.
type Container interface {
	// Size returns the container's size in logical pixels.
	Size() (width, height float64)
	// DeviceScaleFactor returns physical pixels per logical pixel, or <= 0 if unknown.
	DeviceScaleFactor() float64
}

// ResizeObserver notifies about container size changes.
type ResizeObserver interface {
	Observe(onResize func()) (disconnect func())
}

// Transform maps logical drawing coordinates onto backing pixels.
type Transform struct {
	ScaleX, ScaleY float64
}

// Identity is the transform that leaves coordinates unchanged.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// Reset returns the transform to identity.
func (t *Transform) Reset() {
	*t = Identity
}

// Scale multiplies the transform by sx, sy.
func (t *Transform) Scale(sx, sy float64) {
	t.ScaleX *= sx
	t.ScaleY *= sy
}

// Apply maps a logical point into backing pixels.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return x * t.ScaleX, y * t.ScaleY
}

// DrawContext is what a DrawFunc draws with.
type DrawContext struct {
	Target    Surface
	Transform Transform
	// Size is the side of the square surface in logical pixels.
	Size float64
	// Scale is the device pixel ratio in effect.
	Scale float64
}

// DrawFunc draws one frame.
type DrawFunc func(dc *DrawContext)

// FitSquare computes the surface size for a container of w x h logical pixels:
// the largest square that fits, backed by floor(side*scale) physical pixels.
// A non-positive scale falls back to 1.
func FitSquare(w, h, scale float64) (Size, float64) {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	side := math.Max(0, math.Min(w, h))
	backing := int(math.Floor(side * scale))
	return Size{
		BackingWidth:  backing,
		BackingHeight: backing,
		DisplayWidth:  side,
		DisplayHeight: side,
	}, scale
}
