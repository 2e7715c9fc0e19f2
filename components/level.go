package components

import (
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena    *leveldata.Arena
	CellSize float64 // World units per grid cell in the collision space
}

var Level = donburi.NewComponentType[LevelData]()
