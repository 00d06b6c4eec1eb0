package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/jkeller/labyrinth/internal/entity"
	"github.com/jkeller/labyrinth/internal/gamedata"
	"github.com/jkeller/labyrinth/internal/maze"
	"github.com/jkeller/labyrinth/internal/mazemap"
)

// Renderer handles drawing the game to the screen. Creature and item
// glyphs and colors come from the loaded definitions.
type Renderer struct {
	screen      *Screen
	inhabitants *gamedata.InhabitantRegistry
	items       *gamedata.ItemRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, inhabitants *gamedata.InhabitantRegistry, items *gamedata.ItemRegistry) *Renderer {
	return &Renderer{
		screen:      screen,
		inhabitants: inhabitants,
		items:       items,
	}
}

// Render draws one frame: the map grid one rune per cell, the player on
// top, and the status and message lines below.
func (r *Renderer) Render(m *mazemap.Map, player *entity.Player, message string) {
	r.screen.Clear()

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := maze.Coordinate{X: x, Y: y}
			glyph, style := r.cellContent(m, c)
			r.screen.SetContent(x, y, glyph, style)
		}
	}

	// Draw player on top
	playerPos := m.LabyrinthToMap(player.Pos)
	playerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	r.screen.SetContent(playerPos.X, playerPos.Y, '@', playerStyle)

	status := fmt.Sprintf("labyrinth: %dx%d  moves: %d  treasure: %v",
		(m.Width()-1)/2, (m.Height()-1)/2, player.Moves, player.HasTreasure)
	r.screen.DrawText(0, m.Height()+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	if message != "" {
		r.screen.DrawText(0, m.Height()+2, message, tcell.StyleDefault.Foreground(tcell.ColorTeal))
	}

	r.screen.Show()
}

// cellContent picks the rune and style for one map cell.
func (r *Renderer) cellContent(m *mazemap.Map, c maze.Coordinate) (rune, tcell.Style) {
	cell := m.At(c)

	if cell.IsRoom() {
		if inh := cell.Inhabitant(); inh != maze.InhabitantNone {
			if def := r.inhabitants.GetByID(inh.ID()); def != nil {
				return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
			}
			return '?', tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		if cell.HasTreasure() {
			if def := r.items.GetByID(maze.ItemTreasure.ID()); def != nil {
				return def.GlyphRune(), tcell.StyleDefault.Foreground(def.TCellColor())
			}
			return '$', tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		return ' ', tcell.StyleDefault
	}

	if cell.IsExit() {
		return 'E', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}
	return r.borderRune(m, c), tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
}

// borderRune picks the rune for a wall cell from its orientation and wall
// state. Corners always draw.
func (r *Renderer) borderRune(m *mazemap.Map, c maze.Coordinate) rune {
	cell := m.At(c)

	switch {
	case c.X%2 == 0 && c.Y%2 == 0:
		return '+'
	case c.X%2 == 0:
		if cell.IsWall(maze.East) || cell.IsWall(maze.West) {
			return '|'
		}
		return ' '
	default:
		if cell.IsWall(maze.North) || cell.IsWall(maze.South) {
			return '-'
		}
		return ' '
	}
}
