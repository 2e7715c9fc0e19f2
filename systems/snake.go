package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/snakeframe/components"
	cfg "github.com/automoto/snakeframe/config"
	"github.com/automoto/snakeframe/shared/direction"
	"github.com/automoto/snakeframe/shared/leveldata"
	factory2 "github.com/automoto/snakeframe/systems/factory"
	"github.com/automoto/snakeframe/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSnake steps the snake one cell along the validated heading every
// cfg.Snake.MoveEveryTicks ticks. A step into a wall, the arena edge or the
// body is blocked: the snake stays put and the round's collision callback
// fires. Stepping onto food grows the snake and respawns the food.
func UpdateSnake(ecs *ecs.ECS) {
	snakeEntry, ok := tags.Snake.First(ecs.World)
	if !ok {
		return
	}
	snake := components.Snake.Get(snakeEntry)
	ctl := GetControl(ecs)
	if ctl == nil || len(snake.Body) == 0 {
		return
	}

	heading := ctl.Validator.Direction()
	if heading == direction.None {
		return
	}

	snake.MoveTimer++
	if snake.MoveTimer < cfg.Snake.MoveEveryTicks {
		return
	}
	snake.MoveTimer = 0

	stepSnake(ecs, snake, heading)
}

// stepSnake moves the snake one cell and reports whether it moved.
func stepSnake(ecs *ecs.ECS, snake *components.SnakeData, heading direction.Direction) bool {
	level := getLevel(ecs)
	if level == nil {
		return false
	}

	next := snake.Head().Add(heading)
	if !level.Arena.InBounds(next) {
		blockSnake(ecs, snake)
		return false
	}

	dx, dy := heading.Delta()
	headObj := snake.Objects[0]
	tail := snake.Objects[len(snake.Objects)-1]
	ateFood := false

	if check := headObj.Check(float64(dx)*level.CellSize, float64(dy)*level.CellSize,
		tags.ResolvSolid, tags.ResolvBody, tags.ResolvFood); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvSolid) {
			if sameCell(obj, next, level.CellSize) {
				blockSnake(ecs, snake)
				return false
			}
		}
		for _, obj := range check.ObjectsByTags(tags.ResolvBody) {
			// The tail leaves its cell this step unless the snake is growing
			if obj == tail && snake.Grow == 0 && len(snake.Objects) > 1 {
				continue
			}
			if !sameCell(obj, next, level.CellSize) {
				continue
			}
			blockSnake(ecs, snake)
			return false
		}
		for _, obj := range check.ObjectsByTags(tags.ResolvFood) {
			if sameCell(obj, next, level.CellSize) {
				ateFood = true
			}
		}
	}

	snake.Blocked = false
	snake.Steps++
	if ateFood {
		snake.Grow += cfg.Snake.GrowPerFood
	}

	if snake.Grow > 0 {
		snake.Grow--
		obj := factory2.NewCellObject(ecs, next, tags.ResolvBody)
		obj.Data = headObj.Data
		snake.Body = append([]leveldata.Cell{next}, snake.Body...)
		snake.Objects = append([]*resolv.Object{obj}, snake.Objects...)
	} else {
		// Recycle the tail object as the new head
		copy(snake.Body[1:], snake.Body[:len(snake.Body)-1])
		copy(snake.Objects[1:], snake.Objects[:len(snake.Objects)-1])
		snake.Body[0] = next
		snake.Objects[0] = tail
		factory2.MoveCellObject(tail, next)
	}

	if ateFood {
		eatFood(ecs)
	}
	return true
}

func sameCell(obj *resolv.Object, c leveldata.Cell, cellSize float64) bool {
	return int(obj.X/cellSize) == c.X && int(obj.Y/cellSize) == c.Y
}

func blockSnake(ecs *ecs.ECS, snake *components.SnakeData) {
	snake.Blocked = true
	round := GetOrCreateRound(ecs)
	round.Collisions++
	if round.OnCollision != nil {
		round.OnCollision(ecs)
	}
}

func eatFood(ecs *ecs.ECS) {
	round := GetOrCreateRound(ecs)
	round.FoodEaten++
	round.Score += cfg.Snake.FoodScore
	QueueSFX(ecs, cfg.SoundEat)
	if round.Score > round.Best {
		round.Best = round.Score
	}
	RespawnFood(ecs)
}

// RespawnFood moves the food onto a random free cell. With no free cell left
// the food stays where it is.
func RespawnFood(ecs *ecs.ECS) {
	foodEntry, ok := tags.Food.First(ecs.World)
	if !ok {
		return
	}
	cell, ok := freeCell(ecs)
	if !ok {
		return
	}
	food := components.Food.Get(foodEntry)
	food.Cell = cell
	factory2.MoveCellObject(components.Object.Get(foodEntry).Object, cell)
}

// freeCell picks a random cell holding neither a wall nor the snake.
func freeCell(ecs *ecs.ECS) (leveldata.Cell, bool) {
	level := getLevel(ecs)
	if level == nil {
		return leveldata.Cell{}, false
	}
	taken := make(map[leveldata.Cell]bool, len(level.Arena.Walls))
	for _, c := range level.Arena.Walls {
		taken[c] = true
	}
	if snakeEntry, ok := tags.Snake.First(ecs.World); ok {
		for _, c := range components.Snake.Get(snakeEntry).Body {
			taken[c] = true
		}
	}

	var free []leveldata.Cell
	for y := 0; y < level.Arena.Rows; y++ {
		for x := 0; x < level.Arena.Cols; x++ {
			if c := (leveldata.Cell{X: x, Y: y}); !taken[c] {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return leveldata.Cell{}, false
	}
	return free[GetOrCreateRound(ecs).Rand.Intn(len(free))], true
}

// ResetRound puts the snake back on its spawn, re-seeds the heading with the
// spawn heading and clears the score. The session best is kept.
func ResetRound(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil {
		return
	}

	if snakeEntry, ok := tags.Snake.First(ecs.World); ok {
		snake := components.Snake.Get(snakeEntry)
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(snake.Objects...)
		}
		ecs.World.Remove(snakeEntry.Entity())
	}
	spawn := level.Arena.Spawn
	if spawn.Length <= 0 {
		spawn.Length = cfg.Snake.StartLength
	}
	factory2.CreateSnake(ecs, spawn)

	round := GetOrCreateRound(ecs)
	round.Score = 0
	round.FoodEaten = 0
	round.Collisions = 0

	if ctl := GetControl(ecs); ctl != nil {
		ctl.Validator.Reset()
		ctl.Validator.SetDirection(level.Arena.Spawn.Heading)
		ctl.LastKeys = ctl.Keys.Direction()
	}

	if _, ok := tags.Food.First(ecs.World); !ok {
		if cell, ok := freeCell(ecs); ok {
			factory2.CreateFood(ecs, cell)
		}
		return
	}
	RespawnFood(ecs)
}

// GetOrCreateRound returns the singleton Round component, creating if needed.
func GetOrCreateRound(ecs *ecs.ECS) *components.RoundData {
	if _, ok := components.Round.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Round))
		components.Round.SetValue(ent, components.RoundData{
			Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		})
	}

	ent, _ := components.Round.First(ecs.World)
	return components.Round.Get(ent)
}

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// SnakeBody returns the snake's cells, head first, or nil without a snake.
func SnakeBody(ecs *ecs.ECS) []leveldata.Cell {
	entry, ok := tags.Snake.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Snake.Get(entry).Body
}
