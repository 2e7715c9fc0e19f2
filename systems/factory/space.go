package factory

import (
	"github.com/automoto/snakeframe/archetypes"
	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// NewCellObject creates a one-cell collision object at c and adds it to the
// space if one exists.
func NewCellObject(ecs *ecs.ECS, c leveldata.Cell, tags ...string) *resolv.Object {
	size := cfg.Arena.CellSize
	obj := resolv.NewObject(float64(c.X)*size, float64(c.Y)*size, size, size, tags...)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// MoveCellObject repositions obj onto cell c.
func MoveCellObject(obj *resolv.Object, c leveldata.Cell) {
	size := cfg.Arena.CellSize
	obj.X = float64(c.X) * size
	obj.Y = float64(c.Y) * size
	obj.Update()
}
