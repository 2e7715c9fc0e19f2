package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollisionFunc is called each time the snake is blocked by a wall or itself.
type CollisionFunc func(e *ecs.ECS)

// RoundData is a singleton holding the state of the running round.
type RoundData struct {
	Score       int
	Best        int // Best score this session
	FoodEaten   int
	Collisions  int
	Rand        *rand.Rand
	OnCollision CollisionFunc
}

var Round = donburi.NewComponentType[RoundData]()
