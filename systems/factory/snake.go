package factory

import (
	"github.com/automoto/snakeframe/archetypes"
	"github.com/automoto/snakeframe/components"
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/automoto/snakeframe/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSnake lays the snake out from spawn with one collision object per cell.
func CreateSnake(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	snake := archetypes.Snake.Spawn(ecs)

	body := spawn.Body()
	objects := make([]*resolv.Object, len(body))
	for i, c := range body {
		objects[i] = NewCellObject(ecs, c, tags.ResolvBody)
		objects[i].Data = snake
	}

	components.Snake.SetValue(snake, components.SnakeData{
		Body:    body,
		Objects: objects,
	})
	return snake
}

// CreateFood places the food on c.
func CreateFood(ecs *ecs.ECS, c leveldata.Cell) *donburi.Entry {
	food := archetypes.Food.Spawn(ecs)

	obj := NewCellObject(ecs, c, tags.ResolvFood)
	obj.Data = food

	components.Object.SetValue(food, components.ObjectData{Object: obj})
	components.Food.SetValue(food, components.FoodData{Cell: c})
	return food
}
