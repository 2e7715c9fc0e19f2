package systems

import (
	"testing"

	"github.com/automoto/snakeframe/input"
	"github.com/automoto/snakeframe/shared/direction"
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyArrowUp, input.KeyArrowUp},
		{ebiten.KeyArrowDown, input.KeyArrowDown},
		{ebiten.KeyArrowLeft, input.KeyArrowLeft},
		{ebiten.KeyArrowRight, input.KeyArrowRight},
		{ebiten.KeyA, ebiten.KeyA.String()},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestDispatchKeysReleasesFirst(t *testing.T) {
	target := input.NewTarget()
	keys := input.NewKeyTracker(target)

	DispatchKeys(target, []ebiten.Key{ebiten.KeyArrowUp}, nil)
	DispatchKeys(target, []ebiten.Key{ebiten.KeyArrowRight}, []ebiten.Key{ebiten.KeyArrowUp})

	if got := keys.Direction(); got != direction.Right {
		t.Errorf("Direction() = %s, want right", got)
	}
}

func TestSteerFromKeys(t *testing.T) {
	e := newTestWorld(t, openArena(10, 10, leveldata.Spawn{Cell: cell(5, 5), Length: 3}))
	ctl := GetControl(e)

	DispatchKeys(ctl.Target, []ebiten.Key{ebiten.KeyArrowUp}, nil)
	SteerFromKeys(ctl)
	if got := ctl.Validator.Direction(); got != direction.Up {
		t.Fatalf("heading = %s after pressing up, want up", got)
	}

	// A swipe while the arrow is still held wins until the keys change
	ctl.Validator.SetDirection(direction.Left)
	SteerFromKeys(ctl)
	if got := ctl.Validator.Direction(); got != direction.Left {
		t.Fatalf("held key overrode the swipe: heading = %s", got)
	}

	// Releasing every arrow keeps the heading
	DispatchKeys(ctl.Target, nil, []ebiten.Key{ebiten.KeyArrowUp})
	SteerFromKeys(ctl)
	if got := ctl.Validator.Direction(); got != direction.Left {
		t.Fatalf("heading = %s after release, want left", got)
	}
}

func TestSteerFromKeysRejectsReversal(t *testing.T) {
	e := newTestWorld(t, openArena(10, 10, leveldata.Spawn{Cell: cell(5, 5), Heading: direction.Right, Length: 3}))
	ctl := GetControl(e)

	DispatchKeys(ctl.Target, []ebiten.Key{ebiten.KeyArrowLeft}, nil)
	SteerFromKeys(ctl)

	if got := ctl.Validator.Direction(); got != direction.Right {
		t.Errorf("heading = %s, want right", got)
	}
	if ctl.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", ctl.Rejected)
	}
}

func TestSwipeSteersThroughValidator(t *testing.T) {
	e := newTestWorld(t, openArena(10, 10, leveldata.Spawn{Cell: cell(5, 5), Heading: direction.Right, Length: 3}))
	ctl := GetControl(e)
	dist := ctl.Swipe.MinDistance + 1

	ctl.Target.DispatchTouch(input.TouchStart, input.Point{X: 100, Y: 100})
	ctl.Target.DispatchTouch(input.TouchEnd, input.Point{X: 100, Y: 100 + dist})
	if got := ctl.Validator.Direction(); got != direction.Down {
		t.Fatalf("heading = %s after a downward swipe, want down", got)
	}

	ctl.Target.DispatchTouch(input.TouchStart, input.Point{X: 100, Y: 100})
	ctl.Target.DispatchTouch(input.TouchEnd, input.Point{X: 100, Y: 100 - dist})
	if got := ctl.Validator.Direction(); got != direction.Down {
		t.Errorf("reversing swipe accepted: heading = %s", got)
	}
	if ctl.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", ctl.Rejected)
	}
}

func TestPauseDisablesControls(t *testing.T) {
	e := newTestWorld(t, openArena(10, 10, leveldata.Spawn{Cell: cell(5, 5), Heading: direction.Right, Length: 3}))
	ctl := GetControl(e)

	SetPaused(e, true)
	if ctl.Keys.Enabled() {
		t.Fatal("key tracker enabled while paused")
	}
	DispatchKeys(ctl.Target, []ebiten.Key{ebiten.KeyArrowUp}, nil)
	SteerFromKeys(ctl)
	if got := ctl.Validator.Direction(); got != direction.Right {
		t.Errorf("heading changed to %s while paused", got)
	}

	SetPaused(e, false)
	if !ctl.Keys.Enabled() {
		t.Fatal("key tracker disabled after resume")
	}
	DispatchKeys(ctl.Target, []ebiten.Key{ebiten.KeyArrowUp}, nil)
	SteerFromKeys(ctl)
	if got := ctl.Validator.Direction(); got != direction.Up {
		t.Errorf("heading = %s after resume, want up", got)
	}
}

func TestWithPauseCheck(t *testing.T) {
	e := newTestWorld(t, openArena(10, 10, leveldata.Spawn{Cell: cell(5, 5), Length: 3}))
	runs := 0
	system := WithPauseCheck(func(*ecs.ECS) { runs++ })

	system(e)
	SetPaused(e, true)
	system(e)
	SetPaused(e, false)
	system(e)

	if runs != 2 {
		t.Errorf("system ran %d times, want 2", runs)
	}
}

func TestRestartRequest(t *testing.T) {
	e := newTestWorld(t, openArena(10, 10, leveldata.Spawn{Cell: cell(5, 5), Length: 3}))
	if TakeRestart(e) {
		t.Fatal("restart pending before any request")
	}
	RequestRestart(e)
	if !TakeRestart(e) {
		t.Fatal("restart request lost")
	}
	if TakeRestart(e) {
		t.Error("restart request reported twice")
	}
}
