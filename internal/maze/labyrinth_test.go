package maze

import (
	"context"
	"math/rand"
	"testing"
)

func newGenerated(t *testing.T, xSize, ySize int, seed int64) *Labyrinth {
	t.Helper()
	l, err := New(xSize, ySize, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", xSize, ySize, err)
	}
	l.Generate(context.Background())
	return l
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		xSize  int
		ySize  int
		wantOK bool
	}{
		{"valid", 12, 8, true},
		{"smallest", 1, 1, true},
		{"largest", MaxDimension, MaxDimension, true},
		{"zero width", 0, 8, false},
		{"zero height", 12, 0, false},
		{"negative", -3, 8, false},
		{"too wide", MaxDimension + 1, 8, false},
		{"too tall", 12, MaxDimension + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.xSize, tt.ySize, rand.New(rand.NewSource(1)))
			if tt.wantOK && err != nil {
				t.Fatalf("New(%d, %d) failed: %v", tt.xSize, tt.ySize, err)
			}
			if !tt.wantOK && err == nil {
				t.Fatalf("New(%d, %d) should have failed", tt.xSize, tt.ySize)
			}
			if tt.wantOK && (l.XSize() != tt.xSize || l.YSize() != tt.ySize) {
				t.Errorf("Size = %dx%d, want %dx%d", l.XSize(), l.YSize(), tt.xSize, tt.ySize)
			}
		})
	}
}

func TestNewStartsFullyWalled(t *testing.T) {
	l, err := New(5, 4, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for y := 0; y < l.YSize(); y++ {
		for x := 0; x < l.XSize(); x++ {
			room := l.RoomAt(Coordinate{X: x, Y: y})
			for _, d := range AllDirections() {
				if !room.HasWall(d) {
					t.Errorf("Room (%d,%d) should start with a %v wall", x, y, d)
				}
			}
			if room.Exit() != DirectionNone {
				t.Errorf("Room (%d,%d) should start without an exit", x, y)
			}
			if room.Inhabitant() != InhabitantNone || room.Item() != ItemNone {
				t.Errorf("Room (%d,%d) should start empty", x, y)
			}
		}
	}

	if _, d := l.ExitRoom(); d != DirectionNone {
		t.Errorf("ExitRoom() direction before Generate = %v, want DirectionNone", d)
	}
}

func TestRoomAtOutOfBoundsPanics(t *testing.T) {
	l := newGenerated(t, 4, 4, 1)

	bad := []Coordinate{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 4, Y: 0},
		{X: 0, Y: 4},
	}
	for _, c := range bad {
		expectPanic(t, "RoomAt out of bounds", func() {
			_ = l.RoomAt(c)
		})
	}
}

func TestWithinBounds(t *testing.T) {
	l := newGenerated(t, 4, 3, 1)

	inside := []Coordinate{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: 2, Y: 1}}
	for _, c := range inside {
		if !l.WithinBounds(c) {
			t.Errorf("WithinBounds(%v) = false, want true", c)
		}
	}

	outside := []Coordinate{{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 4, Y: 3}}
	for _, c := range outside {
		if l.WithinBounds(c) {
			t.Errorf("WithinBounds(%v) = true, want false", c)
		}
	}
}

func TestGenerateReproducibility(t *testing.T) {
	seed := int64(12345)
	l1 := newGenerated(t, 12, 8, seed)
	l2 := newGenerated(t, 12, 8, seed)

	exit1, dir1 := l1.ExitRoom()
	exit2, dir2 := l2.ExitRoom()
	if exit1 != exit2 || dir1 != dir2 {
		t.Errorf("Same seed produced different exits: (%v, %v) vs (%v, %v)", exit1, dir1, exit2, dir2)
	}

	for y := 0; y < l1.YSize(); y++ {
		for x := 0; x < l1.XSize(); x++ {
			c := Coordinate{X: x, Y: y}
			for _, d := range AllDirections() {
				if l1.RoomAt(c).HasWall(d) != l2.RoomAt(c).HasWall(d) {
					t.Errorf("Same seed disagrees about the %v wall of room (%d,%d)", d, x, y)
				}
			}
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	l1 := newGenerated(t, 12, 8, 1)
	l2 := newGenerated(t, 12, 8, 2)

	// Identical mazes from different seeds would be astronomically unlikely.
	same := true
	for y := 0; y < l1.YSize() && same; y++ {
		for x := 0; x < l1.XSize() && same; x++ {
			c := Coordinate{X: x, Y: y}
			for _, d := range AllDirections() {
				if l1.RoomAt(c).HasWall(d) != l2.RoomAt(c).HasWall(d) {
					same = false
					break
				}
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical wall layouts")
	}
}

func TestGenerateConnectivity(t *testing.T) {
	l := newGenerated(t, 10, 10, 7)

	start := Coordinate{}
	seen := map[Coordinate]struct{}{start: {}}
	queue := []Coordinate{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		room := l.RoomAt(c)
		for _, d := range AllDirections() {
			next := c.Step(d)
			if !l.WithinBounds(next) || room.HasWall(d) {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	if want := l.XSize() * l.YSize(); len(seen) != want {
		t.Errorf("Reached %d rooms, want all %d", len(seen), want)
	}
}

func TestGenerateWallSymmetry(t *testing.T) {
	l := newGenerated(t, 8, 6, 99)

	for y := 0; y < l.YSize(); y++ {
		for x := 0; x < l.XSize(); x++ {
			c := Coordinate{X: x, Y: y}
			for _, d := range []Direction{East, South} {
				next := c.Step(d)
				if !l.WithinBounds(next) {
					continue
				}
				if l.RoomAt(c).HasWall(d) != l.RoomAt(next).HasWall(d.Opposite()) {
					t.Errorf("Rooms (%d,%d) and %v disagree about their shared wall", x, y, next)
				}
			}
		}
	}
}

func TestGenerateExitOnPerimeter(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		l := newGenerated(t, 6, 5, seed)

		c, d := l.ExitRoom()
		if !d.IsCardinal() {
			t.Fatalf("Seed %d: exit direction %v is not cardinal", seed, d)
		}
		if l.WithinBounds(c.Step(d)) {
			t.Errorf("Seed %d: exit at %v points %v toward another room, not outside", seed, c, d)
		}

		room := l.RoomAt(c)
		if !room.HasWall(d) {
			t.Errorf("Seed %d: exit direction %v should keep its wall flag", seed, d)
		}
		if got := room.DirectionCheck(d); got != BorderExit {
			t.Errorf("Seed %d: DirectionCheck(%v) at the exit = %v, want %v", seed, d, got, BorderExit)
		}
		if got := room.Exit(); got != d {
			t.Errorf("Seed %d: Exit() = %v, want %v", seed, got, d)
		}
	}
}

func TestGenerateSingleExit(t *testing.T) {
	l := newGenerated(t, 7, 7, 3)

	exits := 0
	for y := 0; y < l.YSize(); y++ {
		for x := 0; x < l.XSize(); x++ {
			if l.RoomAt(Coordinate{X: x, Y: y}).Exit() != DirectionNone {
				exits++
			}
		}
	}
	if exits != 1 {
		t.Errorf("Found %d exit rooms, want exactly 1", exits)
	}
}

func TestGenerateSingleRoom(t *testing.T) {
	l := newGenerated(t, 1, 1, 5)

	c, d := l.ExitRoom()
	if (c != Coordinate{}) {
		t.Errorf("Exit room = %v, want (0,0)", c)
	}
	if !d.IsCardinal() {
		t.Errorf("Exit direction = %v, want a cardinal direction", d)
	}
	room := l.RoomAt(c)
	for _, dir := range AllDirections() {
		if !room.HasWall(dir) {
			t.Errorf("Single room should keep its %v wall", dir)
		}
	}
}
