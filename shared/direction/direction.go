// Package direction defines the movement vocabulary shared by every input source
// and the game loop. Like the rest of shared/, it has no dependency on ebiten so
// it can be used by headless hosts and tests.
package direction

// Direction is a movement intent on the grid.
type Direction int

const (
	None Direction = iota // No directional input active
	Up
	Down
	Left
	Right
)

var names = map[Direction]string{
	None:  "none",
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if name, ok := names[d]; ok {
		return name
	}
	return "none"
}

// Opposite returns the geometric opposite of d. None has no opposite and maps to None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

// IsReversalOf reports whether d is the exact opposite of prev.
func (d Direction) IsReversalOf(prev Direction) bool {
	if d == None || prev == None {
		return false
	}
	return d == prev.Opposite()
}

// Delta returns the grid step for d. Up is negative Y, matching screen space.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Parse converts a direction name into a Direction. Unknown names yield None, false.
func Parse(name string) (Direction, bool) {
	for d, n := range names {
		if n == name {
			return d, true
		}
	}
	return None, false
}
