package game

import (
	"os"
	"strconv"
	"time"
)

// Default configuration. A 12x8 labyrinth fits an 80-column terminal with
// room left for the status lines.
const (
	DefaultWidth    = 12
	DefaultHeight   = 8
	DefaultMonsters = 3
)

// Config holds game configuration options.
type Config struct {
	// Width and Height are the labyrinth's logical dimensions in rooms.
	Width  int
	Height int

	// Monsters is how many inhabitants are placed at generation time.
	Monsters int

	// Seed for random number generation. Used for reproducible labyrinth
	// generation. A seed of 0 means a clock-derived seed will be used.
	Seed int64
}

// FromEnv builds a Config from LABYRINTH_* environment variables, keeping
// the defaults for anything unset or unparseable.
func FromEnv() Config {
	return Config{
		Width:    envInt("LABYRINTH_WIDTH", DefaultWidth),
		Height:   envInt("LABYRINTH_HEIGHT", DefaultHeight),
		Monsters: envInt("LABYRINTH_MONSTERS", DefaultMonsters),
		Seed:     envInt64("LABYRINTH_SEED", 0),
	}
}

// ResolveSeed returns the configured seed, or a clock-derived one when the
// seed is zero.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func envInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
