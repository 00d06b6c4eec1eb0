// Package gamedata holds the embedded creature and item definitions and
// the registries built from them.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

// dataFS carries every JSON data file in this directory into the binary.
//
//go:embed *.json
var dataFS embed.FS

// Load decodes one embedded JSON data file into T.
func Load[T any](filename string) (T, error) {
	var out T

	f, err := dataFS.Open(filename)
	if err != nil {
		return out, fmt.Errorf("opening embedded %s: %w", filename, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return out, nil
}

// MustLoad is Load for data the game cannot start without; it panics on
// error.
func MustLoad[T any](filename string) T {
	out, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return out
}
