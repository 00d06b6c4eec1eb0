// Package mazemap derives a double-resolution display grid from a
// labyrinth. Every logical room maps to one room cell, and the walls and
// corners around it get border cells of their own, so a labyrinth of x by y
// rooms becomes a grid of (2x+1) by (2y+1) cells.
package mazemap

import "github.com/jkeller/labyrinth/internal/maze"

// Kind discriminates the two cell variants sharing the grid.
type Kind uint8

const (
	// KindBorder marks a wall segment, a corner junction, or a stretch of
	// the outer boundary.
	KindBorder Kind = iota
	// KindRoom marks the display cell of a logical room.
	KindRoom
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBorder:
		return "Border"
	case KindRoom:
		return "Room"
	default:
		return "Unknown"
	}
}

// Cell is one position of the grid. A single tagged type holds both
// variants so the grid stays one contiguous slice; calling a border-only
// operation on a room cell (or the reverse) is a bug in the caller and
// panics. Check IsRoom first instead of recovering.
type Cell struct {
	kind Kind

	// Border state. Walls start present on every side so the outer
	// boundary needs no special casing; the exit flag starts false.
	wallNorth bool
	wallEast  bool
	wallSouth bool
	wallWest  bool
	exit      bool

	// Room state, mirrored from the logical room on every update.
	inhabitant maze.Inhabitant
	treasure   bool
}

// newBorderCell returns a border cell walled on all four sides with no
// exit.
func newBorderCell() Cell {
	return Cell{
		kind:      KindBorder,
		wallNorth: true,
		wallEast:  true,
		wallSouth: true,
		wallWest:  true,
	}
}

// newRoomCell returns an empty room cell.
func newRoomCell() Cell {
	return Cell{kind: KindRoom}
}

// Kind returns the cell's variant tag.
func (c *Cell) Kind() Kind { return c.kind }

// IsRoom reports whether the cell displays a logical room.
func (c *Cell) IsRoom() bool { return c.kind == KindRoom }

// IsBorder reports whether the cell is a wall segment, corner, or outer
// boundary stretch.
func (c *Cell) IsBorder() bool { return c.kind == KindBorder }

func (c *Cell) mustBeBorder(op string) {
	if c.kind != KindBorder {
		panic("mazemap: " + op + " called on a room cell; check IsRoom first")
	}
}

func (c *Cell) mustBeRoom(op string) {
	if c.kind != KindRoom {
		panic("mazemap: " + op + " called on a border cell; check IsRoom first")
	}
}

// IsWall reports whether the border blocks passage in the given direction.
// Panics on a room cell or a non-cardinal direction.
func (c *Cell) IsWall(d maze.Direction) bool {
	c.mustBeBorder("IsWall")
	switch d {
	case maze.North:
		return c.wallNorth
	case maze.East:
		return c.wallEast
	case maze.South:
		return c.wallSouth
	case maze.West:
		return c.wallWest
	default:
		panic("mazemap: IsWall requires a cardinal direction, got " + d.String())
	}
}

// RemoveWall clears the border's wall in the given direction. Removing a
// wall that is already gone is a no-op. Panics on a room cell or a
// non-cardinal direction.
func (c *Cell) RemoveWall(d maze.Direction) {
	c.mustBeBorder("RemoveWall")
	switch d {
	case maze.North:
		c.wallNorth = false
	case maze.East:
		c.wallEast = false
	case maze.South:
		c.wallSouth = false
	case maze.West:
		c.wallWest = false
	default:
		panic("mazemap: RemoveWall requires a cardinal direction, got " + d.String())
	}
}

// IsExit reports whether the border holds the labyrinth's exit.
// Panics on a room cell.
func (c *Cell) IsExit() bool {
	c.mustBeBorder("IsExit")
	return c.exit
}

// SetExit marks or clears the exit flag. Setting the current value again
// is a no-op. Panics on a room cell.
func (c *Cell) SetExit(exit bool) {
	c.mustBeBorder("SetExit")
	c.exit = exit
}

// Inhabitant returns the occupant mirrored from the logical room.
// Panics on a border cell.
func (c *Cell) Inhabitant() maze.Inhabitant {
	c.mustBeRoom("Inhabitant")
	return c.inhabitant
}

// SetInhabitant mirrors the logical room's occupant into the cell.
// Panics on a border cell.
func (c *Cell) SetInhabitant(inh maze.Inhabitant) {
	c.mustBeRoom("SetInhabitant")
	c.inhabitant = inh
}

// HasTreasure reports whether the cell shows treasure.
// Panics on a border cell.
func (c *Cell) HasTreasure() bool {
	c.mustBeRoom("HasTreasure")
	return c.treasure
}

// SetTreasure marks or clears the treasure flag.
// Panics on a border cell.
func (c *Cell) SetTreasure(treasure bool) {
	c.mustBeRoom("SetTreasure")
	c.treasure = treasure
}
