package systems

import (
	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/input"
	"github.com/automoto/snakeframe/shared/direction"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid per-frame allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
	newTouchIDs  []ebiten.TouchID
)

// keyNames maps ebiten arrow keys onto the key names the tracker understands.
var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
}

// KeyName returns the event key name for k.
func KeyName(k ebiten.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return k.String()
}

// UpdateControls turns this frame's key, touch and mouse changes into events on
// the control target, then proposes any new keyboard direction as the heading.
// Must run BEFORE UpdateSnake.
func UpdateControls(ecs *ecs.ECS) {
	ctl := GetControl(ecs)
	if ctl == nil {
		return
	}
	scale := viewportScale(ecs)

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	DispatchKeys(ctl.Target, pressedKeys, releasedKeys)

	pollTouches(ctl, scale)
	if cfg.Controls.MouseAsTouch {
		pollMouse(ctl, scale)
	}

	SteerFromKeys(ctl)
}

// DispatchKeys sends key up events before key down events so a same-frame
// switch between two arrows ends on the newly pressed one.
func DispatchKeys(target *input.Target, pressed, released []ebiten.Key) {
	for _, k := range released {
		target.DispatchKey(input.KeyUp, KeyName(k))
	}
	for _, k := range pressed {
		target.DispatchKey(input.KeyDown, KeyName(k))
	}
}

// SteerFromKeys proposes the key tracker's direction to the validator when it
// differs from the last one proposed. Releasing every arrow proposes nothing,
// so the snake keeps its heading.
func SteerFromKeys(ctl *components.ControlData) {
	d := ctl.Keys.Direction()
	if d == ctl.LastKeys {
		return
	}
	ctl.LastKeys = d
	if d == direction.None {
		return
	}
	ctl.Validator.SetDirection(d)
}

func pollTouches(ctl *components.ControlData, scale float64) {
	newTouchIDs = inpututil.AppendJustPressedTouchIDs(newTouchIDs[:0])
	for _, id := range newTouchIDs {
		if ctl.TouchActive {
			break
		}
		x, y := ebiten.TouchPosition(id)
		ctl.TouchID = id
		ctl.TouchActive = true
		pointerStart(ctl, toLogical(x, y, scale))
	}

	if !ctl.TouchActive {
		return
	}
	if inpututil.IsTouchJustReleased(ctl.TouchID) {
		x, y := inpututil.TouchPositionInPreviousTick(ctl.TouchID)
		ctl.TouchActive = false
		pointerEnd(ctl, toLogical(x, y, scale))
		return
	}
	x, y := ebiten.TouchPosition(ctl.TouchID)
	pointerMove(ctl, toLogical(x, y, scale))
}

func pollMouse(ctl *components.ControlData, scale float64) {
	if ctl.TouchActive {
		return
	}
	x, y := ebiten.CursorPosition()
	p := toLogical(x, y, scale)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ctl.MouseActive = true
		pointerStart(ctl, p)
	case ctl.MouseActive && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ctl.MouseActive = false
		pointerEnd(ctl, p)
	case ctl.MouseActive:
		pointerMove(ctl, p)
	}
}

func pointerStart(ctl *components.ControlData, p input.Point) {
	ctl.LastPointer = p
	ctl.Target.DispatchTouch(input.TouchStart, p)
}

func pointerMove(ctl *components.ControlData, p input.Point) {
	if p == ctl.LastPointer {
		return
	}
	ctl.LastPointer = p
	ctl.Target.DispatchTouch(input.TouchMove, p)
}

func pointerEnd(ctl *components.ControlData, p input.Point) {
	ctl.LastPointer = p
	ctl.Target.DispatchTouch(input.TouchEnd, p)
}

func toLogical(x, y int, scale float64) input.Point {
	if scale <= 0 {
		scale = 1
	}
	return input.Point{X: float64(x) / scale, Y: float64(y) / scale}
}

func viewportScale(ecs *ecs.ECS) float64 {
	if entry, ok := components.Viewport.First(ecs.World); ok {
		return components.Viewport.Get(entry).Scale
	}
	return 1
}

// SetControlsEnabled enables or disables steering. Disabled controls drop held
// keys and any open gesture.
func SetControlsEnabled(ecs *ecs.ECS, enabled bool) {
	ctl := GetControl(ecs)
	if ctl == nil {
		return
	}
	ctl.Keys.SetEnabled(enabled)
	ctl.Swipe.SetEnabled(enabled)
	if !enabled {
		ctl.LastKeys = direction.None
		ctl.TouchActive = false
		ctl.MouseActive = false
	}
}

// DestroyControls releases every listener of the steering pipeline.
func DestroyControls(ecs *ecs.ECS) {
	ctl := GetControl(ecs)
	if ctl == nil {
		return
	}
	ctl.Keys.Destroy()
	ctl.Swipe.Destroy()
	ctl.Validator.Destroy()
}

// GetControl returns the steering pipeline, or nil before CreateControl.
func GetControl(ecs *ecs.ECS) *components.ControlData {
	entry, ok := components.Control.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Control.Get(entry)
}
