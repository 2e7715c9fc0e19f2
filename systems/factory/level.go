package factory

import (
	"github.com/automoto/snakeframe/archetypes"
	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the arena: its level entity, the collision space sized
// to the grid, and one wall per wall cell.
func CreateLevel(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	cellSize := cfg.Arena.CellSize

	components.Level.SetValue(level, components.LevelData{
		Arena:    arena,
		CellSize: cellSize,
	})

	cs := int(cellSize)
	CreateSpace(ecs, arena.Cols*cs, arena.Rows*cs, cs, cs)

	for _, c := range arena.Walls {
		CreateWall(ecs, c)
	}

	return level
}
