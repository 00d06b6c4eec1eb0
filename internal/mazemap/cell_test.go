package mazemap

import (
	"testing"

	"github.com/jkeller/labyrinth/internal/maze"
)

// expectPanic fails the test unless fn panics.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}

func TestBorderCellDefaults(t *testing.T) {
	cell := newBorderCell()

	if !cell.IsBorder() || cell.IsRoom() {
		t.Fatal("newBorderCell should produce a border cell")
	}
	if cell.Kind() != KindBorder {
		t.Errorf("Kind() = %v, want %v", cell.Kind(), KindBorder)
	}
	for _, d := range maze.AllDirections() {
		if !cell.IsWall(d) {
			t.Errorf("Fresh border should have a %v wall", d)
		}
	}
	if cell.IsExit() {
		t.Error("Fresh border should not be an exit")
	}
}

func TestRoomCellDefaults(t *testing.T) {
	cell := newRoomCell()

	if !cell.IsRoom() || cell.IsBorder() {
		t.Fatal("newRoomCell should produce a room cell")
	}
	if cell.Kind() != KindRoom {
		t.Errorf("Kind() = %v, want %v", cell.Kind(), KindRoom)
	}
	if cell.Inhabitant() != maze.InhabitantNone {
		t.Errorf("Fresh room cell inhabitant = %v, want %v", cell.Inhabitant(), maze.InhabitantNone)
	}
	if cell.HasTreasure() {
		t.Error("Fresh room cell should not have treasure")
	}
}

func TestRemoveWall(t *testing.T) {
	cell := newBorderCell()

	cell.RemoveWall(maze.North)
	if cell.IsWall(maze.North) {
		t.Error("North wall should be gone after RemoveWall")
	}
	for _, d := range []maze.Direction{maze.East, maze.South, maze.West} {
		if !cell.IsWall(d) {
			t.Errorf("RemoveWall(North) should not touch the %v wall", d)
		}
	}

	// Removing an absent wall is a no-op.
	cell.RemoveWall(maze.North)
	if cell.IsWall(maze.North) {
		t.Error("Repeated RemoveWall should keep the wall gone")
	}
}

func TestSetExit(t *testing.T) {
	cell := newBorderCell()

	cell.SetExit(true)
	if !cell.IsExit() {
		t.Error("IsExit() = false after SetExit(true)")
	}
	cell.SetExit(true)
	if !cell.IsExit() {
		t.Error("Setting the same exit value again should hold")
	}
	cell.SetExit(false)
	if cell.IsExit() {
		t.Error("IsExit() = true after SetExit(false)")
	}
}

func TestRoomCellState(t *testing.T) {
	cell := newRoomCell()

	cell.SetInhabitant(maze.InhabitantSkeleton)
	if got := cell.Inhabitant(); got != maze.InhabitantSkeleton {
		t.Errorf("Inhabitant() = %v, want %v", got, maze.InhabitantSkeleton)
	}
	cell.SetTreasure(true)
	if !cell.HasTreasure() {
		t.Error("HasTreasure() = false after SetTreasure(true)")
	}
	cell.SetInhabitant(maze.InhabitantNone)
	cell.SetTreasure(false)
	if cell.Inhabitant() != maze.InhabitantNone || cell.HasTreasure() {
		t.Error("Room cell state should clear on overwrite")
	}
}

func TestVariantMisusePanics(t *testing.T) {
	border := newBorderCell()
	room := newRoomCell()

	tests := []struct {
		name string
		fn   func()
	}{
		{"Inhabitant on border", func() { _ = border.Inhabitant() }},
		{"SetInhabitant on border", func() { border.SetInhabitant(maze.InhabitantMinotaur) }},
		{"HasTreasure on border", func() { _ = border.HasTreasure() }},
		{"SetTreasure on border", func() { border.SetTreasure(true) }},
		{"IsWall on room", func() { _ = room.IsWall(maze.North) }},
		{"RemoveWall on room", func() { room.RemoveWall(maze.North) }},
		{"IsExit on room", func() { _ = room.IsExit() }},
		{"SetExit on room", func() { room.SetExit(true) }},
	}

	for _, tt := range tests {
		expectPanic(t, tt.name, tt.fn)
	}
}

func TestWallOpsRequireCardinal(t *testing.T) {
	border := newBorderCell()

	expectPanic(t, "IsWall(DirectionNone)", func() {
		_ = border.IsWall(maze.DirectionNone)
	})
	expectPanic(t, "RemoveWall(DirectionNone)", func() {
		border.RemoveWall(maze.DirectionNone)
	})
}
