package components

import (
	"github.com/automoto/snakeframe/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SnakeData is the snake's body, head first. Objects holds the collision
// object of each body cell, index for index.
type SnakeData struct {
	Body      []leveldata.Cell
	Objects   []*resolv.Object
	Grow      int // Pending segments to add
	MoveTimer int // Ticks since the last step
	Blocked   bool
	Steps     int
}

var Snake = donburi.NewComponentType[SnakeData]()

// Head returns the head cell.
func (s *SnakeData) Head() leveldata.Cell {
	return s.Body[0]
}

// FoodData is where the current food sits.
type FoodData struct {
	Cell leveldata.Cell
}

var Food = donburi.NewComponentType[FoodData]()
