package terminal

import (
	"time"

	"github.com/automoto/snakeframe/input"
	"github.com/gdamore/tcell/v2"
)

// DefaultStickyFor is how long an arrow counts as held after its last key event.
const DefaultStickyFor = 250 * time.Millisecond

// arrowKeys maps tcell arrow keys onto the key names the tracker understands.
var arrowKeys = map[tcell.Key]string{
	tcell.KeyUp:    input.KeyArrowUp,
	tcell.KeyDown:  input.KeyArrowDown,
	tcell.KeyLeft:  input.KeyArrowLeft,
	tcell.KeyRight: input.KeyArrowRight,
}

// Host adapts a tcell screen to the render and input packages. It is the
// render.Container and render.ResizeObserver for surfaces shown on the screen
// and turns tcell events into events on an input.Target.
//
// Terminals report no key releases. An arrow stays held until another arrow is
// pressed or StickyFor passes without a repeat, at which point Tick dispatches
// the key up. A left-button mouse drag is dispatched as a single touch.
type Host struct {
	screen tcell.Screen
	target *input.Target

	// StickyFor overrides DefaultStickyFor when > 0.
	StickyFor time.Duration
	// Reserved rows at the bottom of the screen that surfaces are not sized into.
	StatusRows int

	cols, rows int
	held       string
	heldUntil  time.Time
	dragging   bool

	observers map[int]func()
	nextID    int
}

// NewHost wraps an initialised screen and dispatches into target.
func NewHost(screen tcell.Screen, target *input.Target) *Host {
	h := &Host{
		screen:    screen,
		target:    target,
		observers: make(map[int]func()),
	}
	h.cols, h.rows = screen.Size()
	return h
}

// Size implements render.Container. One logical pixel is two columns by one row.
func (h *Host) Size() (float64, float64) {
	rows := max(h.rows-h.StatusRows, 0)
	return float64(h.cols / 2), float64(rows)
}

// DeviceScaleFactor implements render.Container. Cells are never subdivided.
func (h *Host) DeviceScaleFactor() float64 {
	return 1
}

// Observe implements render.ResizeObserver.
func (h *Host) Observe(onResize func()) func() {
	h.nextID++
	id := h.nextID
	h.observers[id] = onResize
	return func() {
		delete(h.observers, id)
	}
}

// HandleEvent applies one tcell event. It reports false when the event asks
// the program to quit.
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev, now)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		if cols != h.cols || rows != h.rows {
			h.cols, h.rows = cols, rows
			for _, fn := range h.observers {
				fn()
			}
		}
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return false
		}
	}

	name, ok := arrowKeys[ev.Key()]
	if !ok {
		return true
	}
	if h.held != "" && h.held != name {
		h.target.DispatchKey(input.KeyUp, h.held)
	}
	h.held = name
	h.heldUntil = now.Add(h.stickyFor())
	h.target.DispatchKey(input.KeyDown, name)
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := input.Point{X: float64(x) / 2, Y: float64(y)}
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !h.dragging:
		h.dragging = true
		h.target.DispatchTouch(input.TouchStart, p)
	case down:
		h.target.DispatchTouch(input.TouchMove, p)
	case h.dragging:
		h.dragging = false
		h.target.DispatchTouch(input.TouchEnd, p)
	}
}

// Tick releases the held arrow once it has gone stale.
func (h *Host) Tick(now time.Time) {
	if h.held == "" || now.Before(h.heldUntil) {
		return
	}
	key := h.held
	h.held = ""
	h.target.DispatchKey(input.KeyUp, key)
}

// Held returns the arrow currently considered held, or "".
func (h *Host) Held() string {
	return h.held
}

// Origin returns the screen cell where a surface of the given logical size is
// centered horizontally at the top of the screen.
func (h *Host) Origin(width int) (col, row int) {
	return max((h.cols-2*width)/2, 0), 0
}

func (h *Host) stickyFor() time.Duration {
	if h.StickyFor > 0 {
		return h.StickyFor
	}
	return DefaultStickyFor
}
