package input

import (
	"testing"

	"github.com/automoto/snakeframe/shared/direction"
)

var arrowKeys = []string{KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight}

func TestKeyTrackerPriorityOverAllSubsets(t *testing.T) {
	for mask := 1; mask < 1<<len(arrowKeys); mask++ {
		target := NewTarget()
		tracker := NewKeyTracker(target)

		var want direction.Direction
		for i, key := range arrowKeys {
			if mask&(1<<i) == 0 {
				continue
			}
			if want == direction.None {
				want = keyDirections[key]
			}
		}
		// Press in reverse priority order so insertion order cannot decide the result.
		for i := len(arrowKeys) - 1; i >= 0; i-- {
			if mask&(1<<i) != 0 {
				target.DispatchKey(KeyDown, arrowKeys[i])
			}
		}

		if got := tracker.Direction(); got != want {
			t.Errorf("mask %04b: Direction() = %v, want %v", mask, got, want)
		}
	}
}

func TestKeyTrackerReleaseFallsBack(t *testing.T) {
	target := NewTarget()
	tracker := NewKeyTracker(target)

	target.DispatchKey(KeyDown, KeyArrowLeft)
	target.DispatchKey(KeyDown, KeyArrowUp)
	if got := tracker.Direction(); got != direction.Up {
		t.Fatalf("Direction() = %v, want up", got)
	}

	target.DispatchKey(KeyUp, KeyArrowUp)
	if got := tracker.Direction(); got != direction.Left {
		t.Fatalf("Direction() after release = %v, want left", got)
	}
	if got := tracker.Previous(); got != direction.Up {
		t.Errorf("Previous() = %v, want up", got)
	}
	if !tracker.DirectionChanged() {
		t.Error("DirectionChanged() = false, want true")
	}

	target.DispatchKey(KeyUp, KeyArrowLeft)
	if got := tracker.Direction(); got != direction.None {
		t.Errorf("Direction() with no keys = %v, want none", got)
	}
}

func TestKeyTrackerIgnoresOtherKeys(t *testing.T) {
	target := NewTarget()
	tracker := NewKeyTracker(target)

	if !target.DispatchKey(KeyDown, "KeyW") {
		t.Error("non-arrow key should keep its default action")
	}
	if got := tracker.Direction(); got != direction.None {
		t.Errorf("Direction() = %v, want none", got)
	}
	if len(tracker.HeldKeys()) != 0 {
		t.Errorf("HeldKeys() = %v, want empty", tracker.HeldKeys())
	}
}

func TestKeyTrackerPreventsDefaultOnArrowKeyDown(t *testing.T) {
	target := NewTarget()
	NewKeyTracker(target)

	if target.DispatchKey(KeyDown, KeyArrowDown) {
		t.Error("arrow key down should prevent the default action")
	}
	if !target.DispatchKey(KeyUp, KeyArrowDown) {
		t.Error("arrow key up should not prevent the default action")
	}
}

func TestKeyTrackerRepeatedKeyDownIsIdempotent(t *testing.T) {
	tracker := NewKeyTracker(nil)
	tracker.OnKeyDown(&Event{Type: KeyDown, Key: KeyArrowRight})
	tracker.OnKeyDown(&Event{Type: KeyDown, Key: KeyArrowRight})

	if got := tracker.HeldKeys(); len(got) != 1 {
		t.Fatalf("HeldKeys() = %v, want one key", got)
	}
	if tracker.DirectionChanged() {
		t.Error("a repeated key down should not report a change")
	}
}

func TestKeyTrackerHeldKeysInPriorityOrder(t *testing.T) {
	tracker := NewKeyTracker(nil)
	for _, key := range []string{KeyArrowRight, KeyArrowUp, KeyArrowLeft} {
		tracker.OnKeyDown(&Event{Type: KeyDown, Key: key})
	}
	got := tracker.HeldKeys()
	want := []string{KeyArrowUp, KeyArrowLeft, KeyArrowRight}
	if len(got) != len(want) {
		t.Fatalf("HeldKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("HeldKeys() = %v, want %v", got, want)
		}
	}
}

func TestKeyTrackerDestroy(t *testing.T) {
	target := NewTarget()
	tracker := NewKeyTracker(target)
	target.DispatchKey(KeyDown, KeyArrowLeft)

	tracker.Destroy()
	tracker.Destroy()

	if target.ListenerCount(KeyDown) != 0 || target.ListenerCount(KeyUp) != 0 {
		t.Fatal("Destroy() left listeners registered")
	}

	target.DispatchKey(KeyDown, KeyArrowUp)
	tracker.OnKeyDown(&Event{Type: KeyDown, Key: KeyArrowUp})
	tracker.OnKeyUp(&Event{Type: KeyUp, Key: KeyArrowLeft})
	tracker.SetDirection(direction.Down)
	tracker.SetEnabled(false)

	if got := tracker.Direction(); got != direction.Left {
		t.Errorf("Direction() after Destroy = %v, want left", got)
	}
}

func TestKeyTrackerDisabled(t *testing.T) {
	target := NewTarget()
	tracker := NewKeyTracker(target)
	target.DispatchKey(KeyDown, KeyArrowUp)

	tracker.SetEnabled(false)
	if got := tracker.Direction(); got != direction.None {
		t.Errorf("Direction() after disable = %v, want none", got)
	}
	if !target.DispatchKey(KeyDown, KeyArrowDown) {
		t.Error("a disabled tracker should not prevent the default action")
	}
	if got := tracker.Direction(); got != direction.None {
		t.Errorf("Direction() while disabled = %v, want none", got)
	}

	tracker.SetEnabled(true)
	target.DispatchKey(KeyDown, KeyArrowDown)
	if got := tracker.Direction(); got != direction.Down {
		t.Errorf("Direction() after enable = %v, want down", got)
	}
}

func TestKeyTrackerSetDirection(t *testing.T) {
	tracker := NewKeyTracker(nil)
	tracker.SetDirection(direction.Right)
	if tracker.Direction() != direction.Right || !tracker.DirectionChanged() {
		t.Errorf("SetDirection: got %v changed=%v", tracker.Direction(), tracker.DirectionChanged())
	}
}

func TestKeyTrackerSetDirectionWhileDisabled(t *testing.T) {
	tracker := NewKeyTracker(nil)
	tracker.SetEnabled(false)

	tracker.SetDirection(direction.Up)
	if got := tracker.Direction(); got != direction.None {
		t.Errorf("Direction() after SetDirection while disabled = %v, want none", got)
	}

	tracker.SetEnabled(true)
	tracker.SetDirection(direction.Up)
	if got := tracker.Direction(); got != direction.Up {
		t.Errorf("Direction() after enable = %v, want up", got)
	}
}
