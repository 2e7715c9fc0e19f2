package systems

import (
	"fmt"

	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints render loop and steering counters along the bottom edge.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}
	vp := GetOrCreateViewport(ecs)
	round := GetOrCreateRound(ecs)

	rejected := 0
	heading := "none"
	if ctl := GetControl(ecs); ctl != nil {
		rejected = ctl.Rejected
		heading = ctl.Validator.Direction().String()
	}

	line := fmt.Sprintf("frames %d  skipped %d  resizes %d  x%.2f  heading %s  rejected %d  hits %d",
		vp.Frames, vp.Skipped, vp.Resizes, vp.Scale, heading, rejected, round.Collisions)
	face := fonts.Small.Get()
	drawText(screen, line, face, 4, vp.Size-4, vp.Scale, cfg.HUD.TextColor)
}
