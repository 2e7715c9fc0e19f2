package input

import (
	"math/rand"
	"testing"

	"github.com/automoto/snakeframe/shared/direction"
)

func TestValidatorRejectsReversal(t *testing.T) {
	heading := NewHeading(direction.None)
	v := NewValidator(heading)

	if !v.SetDirection(direction.Left) {
		t.Fatal("first direction should be accepted")
	}
	if v.SetDirection(direction.Right) {
		t.Error("right after left should be rejected")
	}
	if got := v.Direction(); got != direction.Left {
		t.Errorf("Direction() after rejection = %v, want left", got)
	}
	if !v.SetDirection(direction.Up) {
		t.Error("up after left should be accepted")
	}
	if got := v.Direction(); got != direction.Up {
		t.Errorf("Direction() = %v, want up", got)
	}
}

func TestValidatorNoneIsNeverRejected(t *testing.T) {
	v := NewValidator(NewHeading(direction.None))
	v.SetDirection(direction.Up)

	if !v.SetDirection(direction.None) {
		t.Fatal("none should be accepted")
	}
	if !v.SetDirection(direction.Down) {
		t.Error("down after an accepted none should be accepted")
	}
}

func TestValidatorOnReject(t *testing.T) {
	v := NewValidator(NewHeading(direction.None))
	var gotCandidate, gotLast direction.Direction
	v.OnReject = func(candidate, last direction.Direction) {
		gotCandidate, gotLast = candidate, last
	}
	v.SetDirection(direction.Down)
	v.SetDirection(direction.Up)

	if gotCandidate != direction.Up || gotLast != direction.Down {
		t.Errorf("OnReject(%v, %v), want (up, down)", gotCandidate, gotLast)
	}
}

func TestValidatorAcceptedStreamHasNoConsecutiveOpposites(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	choices := []direction.Direction{direction.None, direction.Up, direction.Down, direction.Left, direction.Right}
	v := NewValidator(NewHeading(direction.None))

	var accepted []direction.Direction
	for i := 0; i < 2000; i++ {
		d := choices[rng.Intn(len(choices))]
		if v.SetDirection(d) {
			accepted = append(accepted, d)
		}
	}
	for i := 1; i < len(accepted); i++ {
		if accepted[i].IsReversalOf(accepted[i-1]) {
			t.Fatalf("accepted %v right after %v at %d", accepted[i], accepted[i-1], i)
		}
	}
}

func TestValidatorWrapsKeyTracker(t *testing.T) {
	target := NewTarget()
	tracker := NewKeyTracker(target)
	v := NewValidator(tracker)

	v.SetDirection(direction.Up)
	if tracker.Direction() != direction.Up {
		t.Fatalf("tracker direction = %v, want up", tracker.Direction())
	}
	if !v.DirectionChanged() {
		t.Error("DirectionChanged() should proxy to the tracker")
	}

	v.SetDirection(direction.Down)
	if tracker.Direction() != direction.Up {
		t.Errorf("rejected direction reached the tracker: %v", tracker.Direction())
	}

	v.Destroy()
	if target.ListenerCount(KeyDown) != 0 {
		t.Error("Destroy() should proxy to the tracker")
	}
}

func TestValidatorReset(t *testing.T) {
	v := NewValidator(NewHeading(direction.None))
	v.SetDirection(direction.Left)
	v.Reset()
	if !v.SetDirection(direction.Right) {
		t.Error("after Reset any direction should be accepted")
	}
}

func TestValidatorDestroy(t *testing.T) {
	v := NewValidator(NewHeading(direction.None))
	rejects := 0
	v.OnReject = func(candidate, lastValid direction.Direction) { rejects++ }

	v.SetDirection(direction.Left)
	v.Destroy()
	v.Destroy()

	if v.SetDirection(direction.Up) {
		t.Error("SetDirection() after Destroy accepted up")
	}
	if v.SetDirection(direction.Right) {
		t.Error("SetDirection() after Destroy accepted right")
	}
	v.Reset()

	if got := v.LastValid(); got != direction.Left {
		t.Errorf("LastValid() after Destroy = %v, want left", got)
	}
	if got := v.Direction(); got != direction.Left {
		t.Errorf("Direction() after Destroy = %v, want left", got)
	}
	if rejects != 0 {
		t.Errorf("OnReject called %d times after Destroy, want 0", rejects)
	}
}
