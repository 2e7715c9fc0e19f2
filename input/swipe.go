package input

import (
	"math"

	"github.com/automoto/snakeframe/shared/direction"
)

// DefaultMinSwipeDistance is the shortest displacement, in logical pixels, that counts as a swipe.
const DefaultMinSwipeDistance = 30.0

// SwipeFunc receives the direction of a completed swipe.
type SwipeFunc func(d direction.Direction)

// SwipeRecognizer turns a touch start/end pair into a direction.
type SwipeRecognizer struct {
	MinDistance float64

	onSwipe   SwipeFunc
	start     Point
	open      bool
	enabled   bool
	destroyed bool
	release   []func()
}

// NewSwipeRecognizer registers touch listeners on target and reports swipes to onSwipe.
// A nil target yields a recognizer driven only through the OnTouch methods.
func NewSwipeRecognizer(target *Target, onSwipe SwipeFunc) *SwipeRecognizer {
	s := &SwipeRecognizer{
		MinDistance: DefaultMinSwipeDistance,
		onSwipe:     onSwipe,
		enabled:     true,
	}
	if target != nil {
		s.release = append(s.release,
			target.AddListener(TouchStart, s.handleStart),
			target.AddListener(TouchMove, s.OnTouchMove),
			target.AddListener(TouchEnd, s.handleEnd),
		)
	}
	return s
}

func (s *SwipeRecognizer) handleStart(ev *Event) {
	if p, ok := ev.FirstTouch(); ok {
		s.OnTouchStart(p)
	}
}

func (s *SwipeRecognizer) handleEnd(ev *Event) {
	if p, ok := ev.FirstTouch(); ok {
		s.OnTouchEnd(p)
	}
}

// OnTouchStart records the start of a gesture, replacing any unresolved one.
func (s *SwipeRecognizer) OnTouchStart(p Point) {
	if !s.active() {
		return
	}
	s.start = p
	s.open = true
}

// OnTouchMove only keeps the host from scrolling while a finger is down.
func (s *SwipeRecognizer) OnTouchMove(ev *Event) {
	if !s.active() {
		return
	}
	ev.PreventDefault()
}

// OnTouchEnd closes the gesture and emits its direction if it was long enough.
// It returns the emitted direction, or None if nothing was emitted.
func (s *SwipeRecognizer) OnTouchEnd(p Point) direction.Direction {
	if !s.active() || !s.open {
		return direction.None
	}
	d := Classify(s.start, p, s.MinDistance)
	s.open = false
	s.start = Point{}
	if d != direction.None && s.onSwipe != nil {
		s.onSwipe(d)
	}
	return d
}

// Classify maps a displacement from start to end onto a direction. Displacements
// shorter than minDistance on both axes yield None. Ties go to the vertical axis.
func Classify(start, end Point, minDistance float64) direction.Direction {
	dx := end.X - start.X
	dy := end.Y - start.Y
	if math.Max(math.Abs(dx), math.Abs(dy)) < minDistance {
		return direction.None
	}
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return direction.Right
		}
		return direction.Left
	}
	if dy > 0 {
		return direction.Down
	}
	return direction.Up
}

// GestureOpen reports whether a touch start is waiting for its end.
func (s *SwipeRecognizer) GestureOpen() bool {
	return s.open
}

// SetEnabled toggles gesture handling. Disabling drops an open gesture.
func (s *SwipeRecognizer) SetEnabled(enabled bool) {
	if s.destroyed {
		return
	}
	s.enabled = enabled
	if !enabled {
		s.open = false
	}
}

func (s *SwipeRecognizer) active() bool {
	return !s.destroyed && s.enabled
}

// Destroy removes the touch listeners. Safe to call more than once.
func (s *SwipeRecognizer) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.open = false
	for _, release := range s.release {
		release()
	}
	s.release = nil
}
