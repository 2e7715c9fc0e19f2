package components

import (
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/input"
	"github.com/automoto/snakeframe/shared/direction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for the
// non-steering actions (pause, restart, fullscreen).
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// ControlData wires the steering pipeline: host events are dispatched into
// Target, the key tracker and swipe recognizer listen on it, and both propose
// headings through Validator.
type ControlData struct {
	Target    *input.Target
	Keys      *input.KeyTracker
	Swipe     *input.SwipeRecognizer
	Heading   *input.Heading
	Validator *input.Validator

	// LastKeys is the key tracker direction already proposed to the validator.
	LastKeys direction.Direction

	// Pointer bookkeeping for the touch and mouse emulation paths
	TouchID     ebiten.TouchID
	TouchActive bool
	MouseActive bool
	LastPointer input.Point

	Rejected int
}

var Control = donburi.NewComponentType[ControlData]()

// ViewportData mirrors the render manager's sizing for renderers and tooling.
type ViewportData struct {
	Size  float64 // Side of the square board in logical pixels
	Scale float64 // Device pixel ratio

	Frames, Skipped, Resizes uint64
}

var Viewport = donburi.NewComponentType[ViewportData]()
