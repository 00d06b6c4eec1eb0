package game

import (
	"context"
	"io"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jkeller/labyrinth/internal/gamedata"
	"github.com/jkeller/labyrinth/internal/maze"
	"github.com/jkeller/labyrinth/internal/mazemap"
	"github.com/jkeller/labyrinth/internal/telemetry"
)

// PrintMap generates a populated labyrinth from cfg and writes its text map
// to w. This is the screenless path behind LABYRINTH_MODE=print; it is also
// handy for debugging seeds.
func PrintMap(ctx context.Context, cfg Config, w io.Writer) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.print")
	defer span.End()

	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	lab, err := maze.New(cfg.Width, cfg.Height, rng)
	if err != nil {
		return err
	}
	lab.Generate(ctx)

	inhabitants, err := gamedata.LoadInhabitantRegistry()
	if err != nil {
		return err
	}
	player := populate(lab, rng, cfg.Monsters, inhabitants)

	m, err := mazemap.New(lab, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	span.SetAttributes(
		attribute.Int64("labyrinth.seed", seed),
		attribute.Int("labyrinth.width", cfg.Width),
		attribute.Int("labyrinth.height", cfg.Height),
		attribute.String("player.id", player.ID.String()),
	)
	return m.Display(w)
}
