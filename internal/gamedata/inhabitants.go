package gamedata

import "github.com/gdamore/tcell/v2"

// InhabitantDef defines a labyrinth creature loaded from JSON.
type InhabitantDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "minotaur")
	Name        string `json:"name"`        // Display name (e.g., "Minotaur")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "M")
	Color       string `json:"color"`       // Hex color code (e.g., "#C0392B")
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *InhabitantDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *InhabitantDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// InhabitantsFile represents the structure of inhabitants.json.
type InhabitantsFile struct {
	Inhabitants []InhabitantDef `json:"inhabitants"`
}

// LoadInhabitants loads creature definitions from the embedded inhabitants.json file.
func LoadInhabitants() ([]InhabitantDef, error) {
	file, err := Load[InhabitantsFile]("inhabitants.json")
	if err != nil {
		return nil, err
	}
	return file.Inhabitants, nil
}

// MustLoadInhabitants loads creature definitions, panicking on error.
func MustLoadInhabitants() []InhabitantDef {
	inhabitants, err := LoadInhabitants()
	if err != nil {
		panic(err)
	}
	return inhabitants
}
