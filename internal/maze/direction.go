// Package maze models the labyrinth itself: a grid of rooms separated by
// walls, a single exit on the perimeter, and the creatures and items that
// occupy the rooms.
package maze

// Direction identifies one of the four cardinal directions on the grid.
// DirectionNone is the zero value and means "no direction"; operations that
// need a concrete direction panic when handed it.
type Direction int

const (
	DirectionNone Direction = iota
	North
	East
	South
	West
)

// AllDirections returns the four cardinal directions in a fixed order,
// for iteration.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "None"
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsCardinal reports whether d is one of the four concrete directions.
func (d Direction) IsCardinal() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse direction. DirectionNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the x and y offsets of one step in this direction.
// Y grows downward on the grid, so North is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}
