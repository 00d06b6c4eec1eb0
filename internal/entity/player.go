// Package entity provides the entities that move through the labyrinth.
package entity

import (
	"github.com/google/uuid"

	"github.com/jkeller/labyrinth/internal/maze"
)

// Player is the adventurer walking the labyrinth. Its position is a
// logical room coordinate; the renderer converts to map cells.
type Player struct {
	ID          uuid.UUID       // Stable identity for telemetry
	Pos         maze.Coordinate // Current room
	HasTreasure bool            // Whether the treasure has been picked up
	Moves       int             // Rooms entered since the start
}

// NewPlayer creates a player standing in the given room.
func NewPlayer(start maze.Coordinate) *Player {
	return &Player{
		ID:  uuid.New(),
		Pos: start,
	}
}

// MoveTo advances the player into the given room.
func (p *Player) MoveTo(c maze.Coordinate) {
	p.Pos = c
	p.Moves++
}
