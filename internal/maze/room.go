package maze

// Room is a single cell of the labyrinth. It knows its four walls, which
// direction (if any) holds the exit, and its occupant and item. Walls and
// exit are fixed once generation finishes; inhabitant and item change as
// the game plays out.
type Room struct {
	inhabitant Inhabitant
	item       Item
	exit       Direction

	wallNorth bool
	wallEast  bool
	wallSouth bool
	wallWest  bool
}

// NewRoom creates a room with full initial state. Walls are given in
// north, east, south, west order.
func NewRoom(inh Inhabitant, itm Item, exit Direction, north, east, south, west bool) *Room {
	return &Room{
		inhabitant: inh,
		item:       itm,
		exit:       exit,
		wallNorth:  north,
		wallEast:   east,
		wallSouth:  south,
		wallWest:   west,
	}
}

// Inhabitant returns the room's current occupant.
func (r *Room) Inhabitant() Inhabitant { return r.inhabitant }

// SetInhabitant replaces the room's occupant.
func (r *Room) SetInhabitant(inh Inhabitant) { r.inhabitant = inh }

// Item returns the item on the room's floor.
func (r *Room) Item() Item { return r.item }

// SetItem replaces the item on the room's floor.
func (r *Room) SetItem(itm Item) { r.item = itm }

// Exit returns the direction holding the room's exit, or DirectionNone.
func (r *Room) Exit() Direction { return r.exit }

// HasWall reports whether the wall flag for the given direction is set.
// The flag is storage, not classification: the exit direction keeps its
// wall flag, and DirectionCheck still reports it as the exit.
// Panics if d is not a cardinal direction.
func (r *Room) HasWall(d Direction) bool {
	switch d {
	case North:
		return r.wallNorth
	case East:
		return r.wallEast
	case South:
		return r.wallSouth
	case West:
		return r.wallWest
	default:
		panic("maze: HasWall requires a cardinal direction, got " + d.String())
	}
}

// DirectionCheck classifies what lies across the given direction:
// BorderExit if the direction holds the exit, BorderRoom if the wall is
// open, BorderWall otherwise. The exit check runs first, so a direction
// can be the exit even while its wall flag is still set.
// Panics if d is not a cardinal direction.
func (r *Room) DirectionCheck(d Direction) RoomBorder {
	if !d.IsCardinal() {
		panic("maze: DirectionCheck requires a cardinal direction, got " + d.String())
	}
	if d == r.exit {
		return BorderExit
	}
	if !r.HasWall(d) {
		return BorderRoom
	}
	return BorderWall
}

// openWall clears the wall flag for the given direction. Generation only;
// the exported API keeps walls immutable.
func (r *Room) openWall(d Direction) {
	switch d {
	case North:
		r.wallNorth = false
	case East:
		r.wallEast = false
	case South:
		r.wallSouth = false
	case West:
		r.wallWest = false
	}
}

// setExit marks the given direction as the room's exit. Generation only.
func (r *Room) setExit(d Direction) { r.exit = d }
