package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/jkeller/labyrinth/internal/entity"
	"github.com/jkeller/labyrinth/internal/gamedata"
	"github.com/jkeller/labyrinth/internal/maze"
	"github.com/jkeller/labyrinth/internal/mazemap"
	"github.com/jkeller/labyrinth/internal/telemetry"
	"github.com/jkeller/labyrinth/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg         Config
	screen      *ui.Screen
	renderer    *ui.Renderer
	inhabitants *gamedata.InhabitantRegistry
	lab         *maze.Labyrinth
	labMap      *mazemap.Map
	player      *entity.Player
	rng         *rand.Rand
	state       State
	message     string
	running     bool
}

// New creates a new game instance and opens the terminal.
func New(cfg Config) (*Game, error) {
	inhabitants, err := gamedata.LoadInhabitantRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading inhabitant definitions: %w", err)
	}
	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading item definitions: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:         cfg,
		screen:      screen,
		renderer:    ui.NewRenderer(screen, inhabitants, items),
		inhabitants: inhabitants,
		state:       StateExplore,
		running:     true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	// Initialize game (traced)
	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.ResolveSeed()
	g.rng = rand.New(rand.NewSource(seed))

	lab, err := maze.New(g.cfg.Width, g.cfg.Height, g.rng)
	if err != nil {
		initSpan.End()
		return err
	}
	g.lab = lab
	g.lab.Generate(ctx)
	g.player = populate(g.lab, g.rng, g.cfg.Monsters, g.inhabitants)

	labMap, err := mazemap.New(g.lab, g.cfg.Width, g.cfg.Height)
	if err != nil {
		initSpan.End()
		return err
	}
	g.labMap = labMap

	initSpan.SetAttributes(
		attribute.Int("labyrinth.width", g.cfg.Width),
		attribute.Int("labyrinth.height", g.cfg.Height),
		attribute.Int64("labyrinth.seed", seed),
		attribute.Int("game.monsters", g.cfg.Monsters),
		attribute.String("player.id", g.player.ID.String()),
	)
	initSpan.End()

	g.message = "Find the exit. Avoid whatever lives here."

	// Main game loop
	for g.running {
		g.labMap.Update(ctx)
		g.renderer.Render(g.labMap, g.player, g.message)
		g.handleInput(ctx)
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input. Arrows and hjkl move, q and
// Escape quit. Once the run has ended any key leaves the end screen.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if g.state.Finished() {
		g.running = false
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.tryMove(ctx, maze.North)
	case tcell.KeyDown:
		g.tryMove(ctx, maze.South)
	case tcell.KeyLeft:
		g.tryMove(ctx, maze.West)
	case tcell.KeyRight:
		g.tryMove(ctx, maze.East)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'k':
			g.tryMove(ctx, maze.North)
		case 'j':
			g.tryMove(ctx, maze.South)
		case 'h':
			g.tryMove(ctx, maze.West)
		case 'l':
			g.tryMove(ctx, maze.East)
		}
	}
}

// tryMove resolves one step and updates state and message.
func (g *Game) tryMove(ctx context.Context, d maze.Direction) {
	switch resolveMove(g.lab, g.player, d) {
	case OutcomeBlocked:
		g.message = "A wall blocks the way " + d.String() + "."
	case OutcomeMoved:
		g.message = ""
	case OutcomeTreasure:
		g.message = "You scoop up the treasure."
	case OutcomeEscaped:
		g.state = StateEscaped
		g.message = "Daylight! You escaped the labyrinth. (press any key)"
		g.recordOutcome(ctx)
	case OutcomeEaten:
		inh := g.lab.RoomAt(g.player.Pos).Inhabitant()
		g.state = StateEaten
		g.message = "The " + inh.String() + " was waiting for you. (press any key)"
		g.recordOutcome(ctx)
	}
}

// recordOutcome emits the end-of-run span.
func (g *Game) recordOutcome(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.over")
	span.SetAttributes(
		attribute.String("game.outcome", g.state.String()),
		attribute.Int("player.moves", g.player.Moves),
		attribute.Bool("player.treasure", g.player.HasTreasure),
	)
	span.End()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
