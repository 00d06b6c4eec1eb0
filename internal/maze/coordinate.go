package maze

// Coordinate is an (x, y) grid position. The same type indexes both the
// logical room grid of a Labyrinth and the physical cell grid derived from
// it; callers must know which space a value belongs to.
type Coordinate struct {
	X int
	Y int
}

// Step returns the coordinate one step away in the given direction.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}
