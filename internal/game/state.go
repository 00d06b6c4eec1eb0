// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player walks the labyrinth.
	StateExplore State = iota
	// StateEscaped means the player found the exit and won.
	StateEscaped
	// StateEaten means a labyrinth inhabitant caught the player.
	StateEaten
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateEscaped:
		return "escaped"
	case StateEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Finished reports whether the run has ended, in victory or not.
func (s State) Finished() bool {
	return s == StateEscaped || s == StateEaten
}
