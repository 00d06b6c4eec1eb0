package mazemap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jkeller/labyrinth/internal/maze"
	"github.com/jkeller/labyrinth/internal/telemetry"
)

// Map is the double-resolution display grid of a labyrinth. Room cells sit
// where both physical coordinates are odd; border cells fill everything
// else. The labyrinth reference is read-only: Update derives cell state
// from it, String and Display render the result.
type Map struct {
	lab   *maze.Labyrinth
	xSize int // logical rooms per row
	ySize int // logical rooms per column

	mapXSize int    // physical, 2*xSize+1
	mapYSize int    // physical, 2*ySize+1
	cells    []Cell // row-major, indexed y*mapXSize+x
}

// New builds the display grid for the given labyrinth and runs one update
// so the map is renderable immediately.
func New(lab *maze.Labyrinth, xSize, ySize int) (*Map, error) {
	if lab == nil {
		return nil, fmt.Errorf("mazemap: labyrinth must not be nil")
	}
	if xSize < 1 || ySize < 1 {
		return nil, fmt.Errorf("mazemap: logical size must be positive, got %dx%d", xSize, ySize)
	}
	if lab.XSize() != xSize || lab.YSize() != ySize {
		return nil, fmt.Errorf("mazemap: size %dx%d does not match the %dx%d labyrinth", xSize, ySize, lab.XSize(), lab.YSize())
	}

	m := &Map{
		lab:      lab,
		xSize:    xSize,
		ySize:    ySize,
		mapXSize: 2*xSize + 1,
		mapYSize: 2*ySize + 1,
	}
	m.cells = newCellGrid(m.mapXSize, m.mapYSize)
	m.Update(context.Background())
	return m, nil
}

// newCellGrid allocates the physical grid: room cells at odd/odd
// positions, fully walled border cells everywhere else.
func newCellGrid(mapXSize, mapYSize int) []Cell {
	cells := make([]Cell, mapXSize*mapYSize)
	for y := 0; y < mapYSize; y++ {
		for x := 0; x < mapXSize; x++ {
			if x%2 == 1 && y%2 == 1 {
				cells[y*mapXSize+x] = newRoomCell()
			} else {
				cells[y*mapXSize+x] = newBorderCell()
			}
		}
	}
	return cells
}

// Width returns the physical grid width.
func (m *Map) Width() int { return m.mapXSize }

// Height returns the physical grid height.
func (m *Map) Height() int { return m.mapYSize }

// WithinBounds reports whether c is a valid physical coordinate.
func (m *Map) WithinBounds(c maze.Coordinate) bool {
	return c.X >= 0 && c.X < m.mapXSize && c.Y >= 0 && c.Y < m.mapYSize
}

// IsRoom reports whether the physical coordinate designates a room cell,
// which holds exactly when both components are odd.
// Panics if c is outside the map.
func (m *Map) IsRoom(c maze.Coordinate) bool {
	m.mustContain(c)
	return c.X%2 == 1 && c.Y%2 == 1
}

// At returns the cell at the given physical coordinate.
// Panics if c is outside the map.
func (m *Map) At(c maze.Coordinate) *Cell {
	m.mustContain(c)
	return &m.cells[c.Y*m.mapXSize+c.X]
}

func (m *Map) mustContain(c maze.Coordinate) {
	if !m.WithinBounds(c) {
		panic(fmt.Sprintf("mazemap: coordinate (%d,%d) outside %dx%d map", c.X, c.Y, m.mapXSize, m.mapYSize))
	}
}

// LabyrinthToMap converts a logical room coordinate to the physical
// coordinate of its room cell. Panics if c is outside the labyrinth.
func (m *Map) LabyrinthToMap(c maze.Coordinate) maze.Coordinate {
	if !m.lab.WithinBounds(c) {
		panic(fmt.Sprintf("mazemap: logical coordinate (%d,%d) outside %dx%d labyrinth", c.X, c.Y, m.xSize, m.ySize))
	}
	return maze.Coordinate{X: 2*c.X + 1, Y: 2*c.Y + 1}
}

// MapToLabyrinth converts the physical coordinate of a room cell back to
// its logical room coordinate. Panics if c is outside the map or if it
// designates a border cell; borders have no logical counterpart.
func (m *Map) MapToLabyrinth(c maze.Coordinate) maze.Coordinate {
	if !m.IsRoom(c) {
		panic(fmt.Sprintf("mazemap: physical coordinate (%d,%d) designates a border, not a room", c.X, c.Y))
	}
	return maze.Coordinate{X: (c.X - 1) / 2, Y: (c.Y - 1) / 2}
}

// Update derives the grid from current labyrinth state. Occupants and
// treasure follow the rooms on every pass. Walls are only ever removed;
// room walls never come back after generation, so repeated passes agree.
func (m *Map) Update(ctx context.Context) {
	tracer := telemetry.Tracer("mazemap")
	_, span := tracer.Start(ctx, "map.update")
	defer span.End()

	startTime := time.Now()
	wallsRemoved := 0
	exitMarked := false

	for y := 0; y < m.ySize; y++ {
		for x := 0; x < m.xSize; x++ {
			logical := maze.Coordinate{X: x, Y: y}
			room := m.lab.RoomAt(logical)
			pos := m.LabyrinthToMap(logical)

			cell := m.At(pos)
			cell.SetInhabitant(room.Inhabitant())
			cell.SetTreasure(room.Item() != maze.ItemNone)

			for _, d := range maze.AllDirections() {
				border := m.At(pos.Step(d))
				switch room.DirectionCheck(d) {
				case maze.BorderRoom:
					if border.IsWall(d) {
						wallsRemoved++
					}
					border.RemoveWall(d)
				case maze.BorderExit:
					if border.IsWall(d) {
						wallsRemoved++
					}
					border.RemoveWall(d)
					border.SetExit(true)
					exitMarked = true
				case maze.BorderWall:
					// Solid wall; border cells start fully walled.
				}
			}
		}
	}

	span.SetAttributes(
		attribute.Int("map.rooms", m.xSize*m.ySize),
		attribute.Int("map.walls_removed", wallsRemoved),
		attribute.Bool("map.exit_marked", exitMarked),
		attribute.Int64("map.update_us", time.Since(startTime).Microseconds()),
	)
}

// Text map legend. Room cells and horizontal border segments render three
// characters wide, corners and vertical segments one, so rows line up.
const (
	glyphCorner   = "+"
	glyphWallV    = "|"
	glyphOpenV    = " "
	glyphExitV    = "E"
	glyphWallH    = "---"
	glyphOpenH    = "   "
	glyphExitH    = " E "
	glyphTreasure = '$'
)

// inhabitantGlyph is the plain-text legend for occupants. The terminal
// renderer reads styled glyphs from gamedata instead.
func inhabitantGlyph(inh maze.Inhabitant) rune {
	switch inh {
	case maze.InhabitantMinotaur:
		return 'M'
	case maze.InhabitantWraith:
		return 'W'
	case maze.InhabitantSkeleton:
		return 's'
	default:
		return ' '
	}
}

// String renders the text map, walking the physical grid top to bottom and
// left to right, one token per cell.
func (m *Map) String() string {
	var b strings.Builder
	b.Grow(m.mapYSize * (4*m.xSize + 2))
	for y := 0; y < m.mapYSize; y++ {
		for x := 0; x < m.mapXSize; x++ {
			c := maze.Coordinate{X: x, Y: y}
			if m.IsRoom(c) {
				b.WriteString(m.roomToken(c))
			} else {
				b.WriteString(m.borderToken(c))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display writes the text map to the sink.
func (m *Map) Display(w io.Writer) error {
	_, err := io.WriteString(w, m.String())
	return err
}

// borderToken renders one border cell. Corners always draw. A vertical
// segment reflects east/west passage through it, a horizontal segment
// north/south passage, and the exit trumps both.
// Panics if c is outside the map or designates a room cell.
func (m *Map) borderToken(c maze.Coordinate) string {
	if m.IsRoom(c) {
		panic(fmt.Sprintf("mazemap: borderToken called for room coordinate (%d,%d)", c.X, c.Y))
	}
	cell := m.At(c)

	switch {
	case c.X%2 == 0 && c.Y%2 == 0:
		return glyphCorner
	case c.X%2 == 0:
		if cell.IsExit() {
			return glyphExitV
		}
		if cell.IsWall(maze.East) || cell.IsWall(maze.West) {
			return glyphWallV
		}
		return glyphOpenV
	default:
		if cell.IsExit() {
			return glyphExitH
		}
		if cell.IsWall(maze.North) || cell.IsWall(maze.South) {
			return glyphWallH
		}
		return glyphOpenH
	}
}

// roomToken renders one room cell three characters wide. An occupant
// outranks treasure on the floor.
// Panics if c is outside the map or designates a border cell.
func (m *Map) roomToken(c maze.Coordinate) string {
	if !m.IsRoom(c) {
		panic(fmt.Sprintf("mazemap: roomToken called for border coordinate (%d,%d)", c.X, c.Y))
	}
	cell := m.At(c)

	glyph := inhabitantGlyph(cell.Inhabitant())
	if glyph == ' ' && cell.HasTreasure() {
		glyph = glyphTreasure
	}
	return " " + string(glyph) + " "
}
