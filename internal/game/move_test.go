package game

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jkeller/labyrinth/internal/entity"
	"github.com/jkeller/labyrinth/internal/gamedata"
	"github.com/jkeller/labyrinth/internal/maze"
)

func newTestLabyrinth(t *testing.T, xSize, ySize int, seed int64) *maze.Labyrinth {
	t.Helper()
	lab, err := maze.New(xSize, ySize, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("maze.New failed: %v", err)
	}
	lab.Generate(context.Background())
	return lab
}

// findBorder locates a room with the wanted border classification in some
// direction.
func findBorder(t *testing.T, lab *maze.Labyrinth, want maze.RoomBorder) (maze.Coordinate, maze.Direction) {
	t.Helper()
	for y := 0; y < lab.YSize(); y++ {
		for x := 0; x < lab.XSize(); x++ {
			c := maze.Coordinate{X: x, Y: y}
			for _, d := range maze.AllDirections() {
				if lab.RoomAt(c).DirectionCheck(d) == want {
					return c, d
				}
			}
		}
	}
	t.Fatalf("No room with a %v border found", want)
	return maze.Coordinate{}, maze.DirectionNone
}

func TestResolveMoveBlocked(t *testing.T) {
	lab := newTestLabyrinth(t, 6, 5, 42)
	start, d := findBorder(t, lab, maze.BorderWall)
	player := entity.NewPlayer(start)

	if got := resolveMove(lab, player, d); got != OutcomeBlocked {
		t.Errorf("resolveMove into a wall = %v, want %v", got, OutcomeBlocked)
	}
	if player.Pos != start || player.Moves != 0 {
		t.Error("A blocked move should not change the player")
	}
}

func TestResolveMoveOpenPassage(t *testing.T) {
	lab := newTestLabyrinth(t, 6, 5, 42)
	start, d := findBorder(t, lab, maze.BorderRoom)
	player := entity.NewPlayer(start)

	if got := resolveMove(lab, player, d); got != OutcomeMoved {
		t.Errorf("resolveMove through a passage = %v, want %v", got, OutcomeMoved)
	}
	if want := start.Step(d); player.Pos != want {
		t.Errorf("Player position = %v, want %v", player.Pos, want)
	}
	if player.Moves != 1 {
		t.Errorf("Moves = %d, want 1", player.Moves)
	}
}

func TestResolveMoveEscape(t *testing.T) {
	lab := newTestLabyrinth(t, 6, 5, 42)
	exitRoom, exitDir := lab.ExitRoom()
	player := entity.NewPlayer(exitRoom)

	if got := resolveMove(lab, player, exitDir); got != OutcomeEscaped {
		t.Errorf("resolveMove through the exit = %v, want %v", got, OutcomeEscaped)
	}
	if player.Pos != exitRoom {
		t.Error("Escaping should leave the player in the exit room")
	}
}

func TestResolveMoveTreasure(t *testing.T) {
	lab := newTestLabyrinth(t, 6, 5, 42)
	start, d := findBorder(t, lab, maze.BorderRoom)
	dest := lab.RoomAt(start.Step(d))
	dest.SetItem(maze.ItemTreasure)
	player := entity.NewPlayer(start)

	if got := resolveMove(lab, player, d); got != OutcomeTreasure {
		t.Errorf("resolveMove into a treasure room = %v, want %v", got, OutcomeTreasure)
	}
	if !player.HasTreasure {
		t.Error("Player should pick the treasure up")
	}
	if dest.Item() != maze.ItemNone {
		t.Error("Picked up treasure should leave the room")
	}
}

func TestResolveMoveEaten(t *testing.T) {
	lab := newTestLabyrinth(t, 6, 5, 42)
	start, d := findBorder(t, lab, maze.BorderRoom)
	dest := lab.RoomAt(start.Step(d))
	dest.SetInhabitant(maze.InhabitantMinotaur)
	// A guarded treasure is not picked up.
	dest.SetItem(maze.ItemTreasure)
	player := entity.NewPlayer(start)

	if got := resolveMove(lab, player, d); got != OutcomeEaten {
		t.Errorf("resolveMove into an inhabited room = %v, want %v", got, OutcomeEaten)
	}
	if player.HasTreasure {
		t.Error("A guarded treasure should stay put")
	}
	if dest.Item() != maze.ItemTreasure {
		t.Error("The room should keep its treasure")
	}
	if player.Pos != start.Step(d) {
		t.Error("The player should have entered the room before being caught")
	}
}

func TestPopulate(t *testing.T) {
	lab := newTestLabyrinth(t, 6, 5, 9)
	rng := rand.New(rand.NewSource(9))
	registry := gamedata.MustLoadInhabitantRegistry()

	player := populate(lab, rng, 4, registry)
	if player == nil {
		t.Fatal("populate should return a player")
	}

	treasures, monsters := 0, 0
	for y := 0; y < lab.YSize(); y++ {
		for x := 0; x < lab.XSize(); x++ {
			room := lab.RoomAt(maze.Coordinate{X: x, Y: y})
			if room.Item() == maze.ItemTreasure {
				treasures++
			}
			if room.Inhabitant() != maze.InhabitantNone {
				monsters++
			}
		}
	}

	if treasures != 1 {
		t.Errorf("Placed %d treasures, want 1", treasures)
	}
	if monsters != 4 {
		t.Errorf("Placed %d monsters, want 4", monsters)
	}

	// The player's room starts safe and empty.
	start := lab.RoomAt(player.Pos)
	if start.Inhabitant() != maze.InhabitantNone || start.Item() != maze.ItemNone {
		t.Error("Player should start in an empty room")
	}
}

func TestPopulateTinyLabyrinth(t *testing.T) {
	// One room: no treasure, no monsters, just the player.
	lab := newTestLabyrinth(t, 1, 1, 3)
	rng := rand.New(rand.NewSource(3))
	registry := gamedata.MustLoadInhabitantRegistry()

	player := populate(lab, rng, 10, registry)
	room := lab.RoomAt(player.Pos)
	if room.Inhabitant() != maze.InhabitantNone || room.Item() != maze.ItemNone {
		t.Error("A single-room labyrinth should hold only the player")
	}
}

func TestOutcomeString(t *testing.T) {
	outcomes := map[Outcome]string{
		OutcomeBlocked:  "blocked",
		OutcomeMoved:    "moved",
		OutcomeTreasure: "treasure",
		OutcomeEscaped:  "escaped",
		OutcomeEaten:    "eaten",
	}
	for o, want := range outcomes {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}
