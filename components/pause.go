package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
	// RestartRequested is set by the pause menu and consumed by the scene.
	RestartRequested bool
}

var Pause = donburi.NewComponentType[PauseData]()
