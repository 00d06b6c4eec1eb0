package maze

// Inhabitant identifies what lives in a room.
type Inhabitant int

const (
	InhabitantNone Inhabitant = iota
	InhabitantMinotaur
	InhabitantWraith
	InhabitantSkeleton
)

// String returns the inhabitant's display name.
func (i Inhabitant) String() string {
	switch i {
	case InhabitantNone:
		return "None"
	case InhabitantMinotaur:
		return "Minotaur"
	case InhabitantWraith:
		return "Wraith"
	case InhabitantSkeleton:
		return "Skeleton"
	default:
		return "Unknown"
	}
}

// ID returns the key used to look the inhabitant up in the loaded
// definitions.
func (i Inhabitant) ID() string {
	switch i {
	case InhabitantMinotaur:
		return "minotaur"
	case InhabitantWraith:
		return "wraith"
	case InhabitantSkeleton:
		return "skeleton"
	default:
		return "none"
	}
}

// InhabitantByID maps a definition key back to the inhabitant.
// Unknown keys map to InhabitantNone.
func InhabitantByID(id string) Inhabitant {
	switch id {
	case "minotaur":
		return InhabitantMinotaur
	case "wraith":
		return InhabitantWraith
	case "skeleton":
		return InhabitantSkeleton
	default:
		return InhabitantNone
	}
}

// Item identifies what lies on a room's floor.
type Item int

const (
	ItemNone Item = iota
	ItemTreasure
)

// String returns the item's display name.
func (i Item) String() string {
	switch i {
	case ItemNone:
		return "None"
	case ItemTreasure:
		return "Treasure"
	default:
		return "Unknown"
	}
}

// ID returns the key used to look the item up in the loaded definitions.
func (i Item) ID() string {
	switch i {
	case ItemTreasure:
		return "treasure"
	default:
		return "none"
	}
}

// RoomBorder classifies what lies across a given direction from a room's
// point of view.
type RoomBorder int

const (
	// BorderExit means the direction holds the labyrinth's exit.
	BorderExit RoomBorder = iota
	// BorderRoom means the wall is open and another room lies across.
	BorderRoom
	// BorderWall means a solid wall blocks the direction.
	BorderWall
)

// String returns the border classification name.
func (b RoomBorder) String() string {
	switch b {
	case BorderExit:
		return "Exit"
	case BorderRoom:
		return "Room"
	case BorderWall:
		return "Wall"
	default:
		return "Unknown"
	}
}
