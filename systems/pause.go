package systems

import (
	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause and restart actions.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !pause.IsPaused)
	}
	if GetAction(input, cfg.ActionRestart).JustPressed {
		pause.RestartRequested = true
	}
}

// SetPaused pauses or resumes the game. Steering is disabled while paused so
// arrow keys and drags are left to the menu.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	SetControlsEnabled(ecs, !paused)
}

// IsPaused reports whether the game is paused.
func IsPaused(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).IsPaused
}

// RequestRestart asks the scene to restart the round on its next update.
func RequestRestart(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).RestartRequested = true
}

// TakeRestart reports and clears a pending restart request.
func TakeRestart(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	requested := pause.RestartRequested
	pause.RestartRequested = false
	return requested
}

// DrawPause renders the pause overlay and title onto the board.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}
	vp := GetOrCreateViewport(ecs)
	board := BoardFor(1, 1, vp.Size, vp.Scale)

	fillRect(screen, board, 0, 0, vp.Size, vp.Size, cfg.Pause.OverlayColor)

	face := fonts.Title.Get()
	w, _, ascent := textSize(face, cfg.Pause.Title)
	drawText(screen, cfg.Pause.Title, face, (vp.Size-w)/2, vp.Size/4+ascent, vp.Scale, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
