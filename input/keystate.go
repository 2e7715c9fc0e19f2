package input

import (
	"sort"

	"github.com/automoto/snakeframe/shared/direction"
)

// keyDirections maps the meaningful key identifiers to directions.
var keyDirections = map[string]direction.Direction{
	KeyArrowUp:    direction.Up,
	KeyArrowDown:  direction.Down,
	KeyArrowLeft:  direction.Left,
	KeyArrowRight: direction.Right,
}

// priority is the order in which held keys win: up > down > left > right.
var priority = [...]string{KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight}

// KeyTracker tracks the held arrow keys and derives a single current direction.
type KeyTracker struct {
	keys     map[string]struct{}
	current  direction.Direction
	previous direction.Direction

	enabled   bool
	destroyed bool
	release   []func()
}

// NewKeyTracker creates a tracker and registers its key listeners on target.
// A nil target yields a tracker driven only through OnKeyDown/OnKeyUp.
func NewKeyTracker(target *Target) *KeyTracker {
	k := &KeyTracker{
		keys:    make(map[string]struct{}, len(priority)),
		enabled: true,
	}
	if target != nil {
		k.release = append(k.release,
			target.AddListener(KeyDown, k.OnKeyDown),
			target.AddListener(KeyUp, k.OnKeyUp),
		)
	}
	return k
}

// OnKeyDown handles a key press. Non-arrow keys are ignored.
func (k *KeyTracker) OnKeyDown(ev *Event) {
	if !k.active() {
		return
	}
	if _, ok := keyDirections[ev.Key]; !ok {
		return
	}
	ev.PreventDefault()
	k.keys[ev.Key] = struct{}{}
	k.update()
}

// OnKeyUp handles a key release. Non-arrow keys are ignored.
func (k *KeyTracker) OnKeyUp(ev *Event) {
	if !k.active() {
		return
	}
	if _, ok := keyDirections[ev.Key]; !ok {
		return
	}
	delete(k.keys, ev.Key)
	k.update()
}

func (k *KeyTracker) update() {
	k.previous = k.current
	k.current = direction.None
	for _, key := range priority {
		if _, held := k.keys[key]; held {
			k.current = keyDirections[key]
			return
		}
	}
}

func (k *KeyTracker) active() bool {
	return k != nil && !k.destroyed && k.enabled
}

// Direction returns the direction derived from the held keys.
func (k *KeyTracker) Direction() direction.Direction {
	return k.current
}

// Previous returns the direction before the last recomputation.
func (k *KeyTracker) Previous() direction.Direction {
	return k.previous
}

// DirectionChanged reports whether the last recomputation changed the direction.
func (k *KeyTracker) DirectionChanged() bool {
	return k.current != k.previous
}

// SetDirection overrides the current direction, e.g. from a swipe. The replaced
// value becomes Previous so DirectionChanged reflects the override.
func (k *KeyTracker) SetDirection(d direction.Direction) {
	if !k.active() {
		return
	}
	k.previous = k.current
	k.current = d
}

// HeldKeys returns the held key identifiers in priority order.
func (k *KeyTracker) HeldKeys() []string {
	held := make([]string, 0, len(k.keys))
	for key := range k.keys {
		held = append(held, key)
	}
	sort.Slice(held, func(i, j int) bool {
		return keyRank(held[i]) < keyRank(held[j])
	})
	return held
}

func keyRank(key string) int {
	for i, p := range priority {
		if p == key {
			return i
		}
	}
	return len(priority)
}

// SetEnabled toggles event handling. While disabled events are ignored and their
// default action is left alone, so a paused game can hand arrows to its menu.
// Disabling also drops the held keys, since their releases would be missed.
func (k *KeyTracker) SetEnabled(enabled bool) {
	if k.destroyed || k.enabled == enabled {
		return
	}
	k.enabled = enabled
	if !enabled {
		clear(k.keys)
		k.previous = k.current
		k.current = direction.None
	}
}

// Enabled reports whether the tracker handles events.
func (k *KeyTracker) Enabled() bool {
	return k.enabled && !k.destroyed
}

// Destroy removes the key listeners. Safe to call more than once.
func (k *KeyTracker) Destroy() {
	if k.destroyed {
		return
	}
	k.destroyed = true
	for _, release := range k.release {
		release()
	}
	k.release = nil
}
