package tags

import "github.com/yohamta/donburi"

var (
	Snake = donburi.NewTag().SetName("Snake")
	Food  = donburi.NewTag().SetName("Food")
	Wall  = donburi.NewTag().SetName("Wall")
)

// Resolv tags for grid collision
const (
	ResolvSolid = "solid"
	ResolvBody  = "body"
	ResolvFood  = "food"
)
