package factory

import (
	"github.com/automoto/snakeframe/archetypes"
	"github.com/automoto/snakeframe/components"
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/automoto/snakeframe/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, c leveldata.Cell) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := NewCellObject(ecs, c, tags.ResolvSolid)
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	return wall
}
