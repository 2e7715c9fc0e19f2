package systems

import (
	"fmt"

	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the score in the top-left corner and the session best in
// the top-right corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	round := GetOrCreateRound(ecs)
	vp := GetOrCreateViewport(ecs)
	face := fonts.Regular.Get()
	margin := float64(cfg.HUD.Margin)

	score := fmt.Sprintf("Score %d", round.Score)
	_, _, ascent := textSize(face, score)
	drawText(screen, score, face, margin, margin+ascent, vp.Scale, cfg.HUD.TextColor)

	best := fmt.Sprintf("Best %d", round.Best)
	w, _, _ := textSize(face, best)
	drawText(screen, best, face, vp.Size-margin-w, margin+ascent, vp.Scale, cfg.HUD.TextColor)
}
