// Package input turns raw key and touch events into movement directions.
//
// Hosts (the ebiten game, the terminal probe) translate their native input into
// Events and dispatch them on a Target. Components register listeners on the
// Target when they are created and release them on Destroy.
package input

// EventType identifies the kind of input event.
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	TouchStart
	TouchMove
	TouchEnd
)

// Key identifiers for the four meaningful direction keys.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Point is a position in logical (unscaled) pixels.
type Point struct {
	X, Y float64
}

// Event is a single input event. For touch events Touches holds the touch points
// of the event; for TouchEnd these are the points that ended.
type Event struct {
	Type    EventType
	Key     string
	Touches []Point

	defaultPrevented bool
}

// PreventDefault marks the host's default action for this event as suppressed.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener suppressed the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// FirstTouch returns the first touch point of the event.
func (e *Event) FirstTouch() (Point, bool) {
	if len(e.Touches) == 0 {
		return Point{}, false
	}
	return e.Touches[0], true
}

// Handler receives dispatched events.
type Handler func(ev *Event)

type listener struct {
	id      uint64
	handler Handler
}

// Target is a listener registry, the equivalent of a window or an element.
// It is not safe for concurrent use; hosts dispatch from their update goroutine.
type Target struct {
	listeners map[EventType][]listener
	nextID    uint64
}

// NewTarget creates an empty event target.
func NewTarget() *Target {
	return &Target{
		listeners: make(map[EventType][]listener),
	}
}

// AddListener registers h for events of type typ and returns a function that
// removes it again. The remove function is safe to call more than once.
func (t *Target) AddListener(typ EventType, h Handler) (remove func()) {
	t.nextID++
	id := t.nextID
	t.listeners[typ] = append(t.listeners[typ], listener{id: id, handler: h})

	return func() {
		ls := t.listeners[typ]
		for i, l := range ls {
			if l.id == id {
				t.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners registered for typ.
func (t *Target) ListenerCount(typ EventType) int {
	return len(t.listeners[typ])
}

// Dispatch delivers ev to every listener of its type in registration order.
// It returns false if a listener called PreventDefault, mirroring dispatchEvent.
func (t *Target) Dispatch(ev *Event) bool {
	ls := t.listeners[ev.Type]
	if len(ls) == 0 {
		return true
	}
	// Copy so listeners may remove themselves while handling.
	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		// Skip listeners removed by an earlier listener of this dispatch.
		if !t.registered(ev.Type, l.id) {
			continue
		}
		l.handler(ev)
	}
	return !ev.defaultPrevented
}

func (t *Target) registered(typ EventType, id uint64) bool {
	for _, l := range t.listeners[typ] {
		if l.id == id {
			return true
		}
	}
	return false
}

// DispatchKey is a convenience wrapper for key events.
func (t *Target) DispatchKey(typ EventType, key string) bool {
	return t.Dispatch(&Event{Type: typ, Key: key})
}

// DispatchTouch is a convenience wrapper for single-point touch events.
func (t *Target) DispatchTouch(typ EventType, p Point) bool {
	return t.Dispatch(&Event{Type: typ, Touches: []Point{p}})
}
