package game

import (
	"math/rand"

	"github.com/jkeller/labyrinth/internal/entity"
	"github.com/jkeller/labyrinth/internal/gamedata"
	"github.com/jkeller/labyrinth/internal/maze"
)

// Outcome classifies one attempted move.
type Outcome int

const (
	// OutcomeBlocked means a wall stopped the move.
	OutcomeBlocked Outcome = iota
	// OutcomeMoved means the player entered the adjacent room.
	OutcomeMoved
	// OutcomeTreasure means the player entered a room and took its treasure.
	OutcomeTreasure
	// OutcomeEscaped means the player walked out through the exit.
	OutcomeEscaped
	// OutcomeEaten means the entered room's inhabitant got the player.
	OutcomeEaten
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeTreasure:
		return "treasure"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// resolveMove applies one step in direction d. Walls block, the exit ends
// the run, an open passage moves the player. Entering an inhabited room is
// lethal; an empty room's treasure is picked up on entry.
func resolveMove(lab *maze.Labyrinth, player *entity.Player, d maze.Direction) Outcome {
	room := lab.RoomAt(player.Pos)

	switch room.DirectionCheck(d) {
	case maze.BorderWall:
		return OutcomeBlocked
	case maze.BorderExit:
		return OutcomeEscaped
	}

	next := player.Pos.Step(d)
	player.MoveTo(next)

	dest := lab.RoomAt(next)
	if dest.Inhabitant() != maze.InhabitantNone {
		return OutcomeEaten
	}
	if dest.Item() == maze.ItemTreasure {
		dest.SetItem(maze.ItemNone)
		player.HasTreasure = true
		return OutcomeTreasure
	}
	return OutcomeMoved
}

// populate scatters the treasure, the monsters, and the player over
// distinct rooms. Monster kinds come from the registry's weighted spawn
// table. Returns the placed player.
func populate(lab *maze.Labyrinth, rng *rand.Rand, monsters int, inhabitants *gamedata.InhabitantRegistry) *entity.Player {
	total := lab.XSize() * lab.YSize()
	taken := make(map[maze.Coordinate]struct{}, total)
	pick := func() maze.Coordinate {
		for {
			c := maze.Coordinate{X: rng.Intn(lab.XSize()), Y: rng.Intn(lab.YSize())}
			if _, ok := taken[c]; !ok {
				taken[c] = struct{}{}
				return c
			}
		}
	}

	if total > 1 {
		lab.RoomAt(pick()).SetItem(maze.ItemTreasure)
	}

	// Keep at least the player's and the treasure's rooms monster free.
	if limit := total - 2; monsters > limit {
		monsters = limit
	}
	for i := 0; i < monsters; i++ {
		def := inhabitants.SpawnRandom(rng)
		if def == nil {
			break
		}
		kind := maze.InhabitantByID(def.ID)
		if kind == maze.InhabitantNone {
			continue
		}
		lab.RoomAt(pick()).SetInhabitant(kind)
	}

	return entity.NewPlayer(pick())
}
