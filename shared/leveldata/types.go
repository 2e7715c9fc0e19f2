// Package leveldata parses arena maps into grid data.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import "github.com/automoto/snakeframe/shared/direction"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d's unit step.
func (c Cell) Add(d direction.Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Spawn is where the snake starts and which way it initially heads.
type Spawn struct {
	Cell
	Heading direction.Direction
	Length  int // Zero leaves the length to the game config
}

// Arena holds all grid data parsed from a map file.
type Arena struct {
	Name     string
	Cols     int
	Rows     int
	TileSize float64 // Map pixels per cell
	Walls    []Cell
	Spawn    Spawn
}

// InBounds reports whether c lies inside the arena.
func (a *Arena) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < a.Cols && c.Y < a.Rows
}

// Body lays out a snake of the spawn length starting at the spawn cell and
// trailing away from the heading. A None heading trails to the left.
func (s Spawn) Body() []Cell {
	n := s.Length
	if n < 1 {
		n = 1
	}
	back := s.Heading.Opposite()
	if back == direction.None {
		back = direction.Left
	}
	body := make([]Cell, 0, n)
	c := s.Cell
	for i := 0; i < n; i++ {
		body = append(body, c)
		c = c.Add(back)
	}
	return body
}
