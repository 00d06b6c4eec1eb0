package maze

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jkeller/labyrinth/internal/telemetry"
)

// MaxDimension caps either logical dimension. The text map of a larger
// labyrinth no longer fits a terminal.
const MaxDimension = 64

// Labyrinth is the authoritative grid of rooms, indexed by logical
// coordinates. It owns all room state; the map layer only reads it.
type Labyrinth struct {
	xSize int
	ySize int
	rooms [][]*Room // indexed [y][x]
	rng   *rand.Rand

	exitRoom Coordinate
	exitDir  Direction
}

// New allocates a fully walled labyrinth of the given logical size with no
// exit and nothing inside. Call Generate to carve passages and place the
// exit. A nil rng is seeded from the clock.
func New(xSize, ySize int, rng *rand.Rand) (*Labyrinth, error) {
	if xSize < 1 || ySize < 1 {
		return nil, fmt.Errorf("labyrinth dimensions must be positive, got %dx%d", xSize, ySize)
	}
	if xSize > MaxDimension || ySize > MaxDimension {
		return nil, fmt.Errorf("labyrinth dimensions must not exceed %d, got %dx%d", MaxDimension, xSize, ySize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rooms := make([][]*Room, ySize)
	for y := range rooms {
		rooms[y] = make([]*Room, xSize)
		for x := range rooms[y] {
			rooms[y][x] = NewRoom(InhabitantNone, ItemNone, DirectionNone, true, true, true, true)
		}
	}

	return &Labyrinth{
		xSize: xSize,
		ySize: ySize,
		rooms: rooms,
		rng:   rng,
	}, nil
}

// XSize returns the number of rooms per row.
func (l *Labyrinth) XSize() int { return l.xSize }

// YSize returns the number of rooms per column.
func (l *Labyrinth) YSize() int { return l.ySize }

// WithinBounds reports whether c is a valid logical room coordinate.
func (l *Labyrinth) WithinBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < l.xSize && c.Y >= 0 && c.Y < l.ySize
}

// RoomAt returns the room at the given logical coordinate.
// Panics if c is out of bounds.
func (l *Labyrinth) RoomAt(c Coordinate) *Room {
	if !l.WithinBounds(c) {
		panic(fmt.Sprintf("maze: room coordinate (%d,%d) outside %dx%d labyrinth", c.X, c.Y, l.xSize, l.ySize))
	}
	return l.rooms[c.Y][c.X]
}

// ExitRoom returns the coordinate of the room holding the exit and the
// direction it opens toward. Before Generate the direction is
// DirectionNone.
func (l *Labyrinth) ExitRoom() (Coordinate, Direction) {
	return l.exitRoom, l.exitDir
}

// Generate carves a perfect maze through the rooms and places the exit on
// a random perimeter room. Every room ends up reachable from every other.
func (l *Labyrinth) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "labyrinth.generate")
	defer span.End()

	startTime := time.Now()

	opened := l.carvePassages()
	l.placeExit()

	span.SetAttributes(
		attribute.Int("labyrinth.x_size", l.xSize),
		attribute.Int("labyrinth.y_size", l.ySize),
		attribute.Int("labyrinth.passages", opened),
		attribute.String("labyrinth.exit_direction", l.exitDir.String()),
		attribute.Int64("labyrinth.generation_us", time.Since(startTime).Microseconds()),
	)
}

// carvePassages runs Wilson's algorithm: random walks from unvisited rooms
// into the visited set, keeping only the last exit direction out of each
// walked room (loop erasure) and opening the walls along the surviving
// path. Returns the number of passages opened.
func (l *Labyrinth) carvePassages() int {
	total := l.xSize * l.ySize
	if total == 1 {
		return 0
	}

	visited := make(map[Coordinate]struct{}, total)
	visited[l.randomCoordinate()] = struct{}{}

	opened := 0
	for len(visited) < total {
		for c, d := range l.randomWalk(visited) {
			l.openPassage(c, d)
			visited[c] = struct{}{}
			opened++
		}
	}
	return opened
}

// randomWalk wanders from an unvisited room until it reaches the visited
// set, remembering only the latest direction taken out of each room.
func (l *Labyrinth) randomWalk(visited map[Coordinate]struct{}) map[Coordinate]Direction {
	walk := make(map[Coordinate]Direction)
	c := l.randomUnvisited(visited)
	for {
		d := l.randomNeighborDirection(c)
		walk[c] = d
		next := c.Step(d)
		if _, ok := visited[next]; ok {
			return walk
		}
		c = next
	}
}

// openPassage clears both facing wall flags between c and its neighbor in
// direction d, so the two rooms agree about the shared wall.
func (l *Labyrinth) openPassage(c Coordinate, d Direction) {
	l.RoomAt(c).openWall(d)
	l.RoomAt(c.Step(d)).openWall(d.Opposite())
}

// placeExit marks a random perimeter room's outward direction as the exit.
// The wall flag stays set; DirectionCheck's exit precedence is what opens
// the way out.
func (l *Labyrinth) placeExit() {
	c, d := l.randomPerimeter()
	l.exitRoom = c
	l.exitDir = d
	l.RoomAt(c).setExit(d)
}

// randomPerimeter picks a random edge of the grid and a random room along
// it, returning the room and its outward direction.
func (l *Labyrinth) randomPerimeter() (Coordinate, Direction) {
	switch l.rng.Intn(4) {
	case 0:
		return Coordinate{X: l.rng.Intn(l.xSize), Y: 0}, North
	case 1:
		return Coordinate{X: l.xSize - 1, Y: l.rng.Intn(l.ySize)}, East
	case 2:
		return Coordinate{X: l.rng.Intn(l.xSize), Y: l.ySize - 1}, South
	default:
		return Coordinate{X: 0, Y: l.rng.Intn(l.ySize)}, West
	}
}

func (l *Labyrinth) randomCoordinate() Coordinate {
	return Coordinate{X: l.rng.Intn(l.xSize), Y: l.rng.Intn(l.ySize)}
}

func (l *Labyrinth) randomUnvisited(visited map[Coordinate]struct{}) Coordinate {
	for {
		c := l.randomCoordinate()
		if _, ok := visited[c]; !ok {
			return c
		}
	}
}

// randomNeighborDirection picks a random direction whose step stays on the
// grid.
func (l *Labyrinth) randomNeighborDirection(c Coordinate) Direction {
	dirs := make([]Direction, 0, 4)
	for _, d := range AllDirections() {
		if l.WithinBounds(c.Step(d)) {
			dirs = append(dirs, d)
		}
	}
	return dirs[l.rng.Intn(len(dirs))]
}
