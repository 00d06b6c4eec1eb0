package gamedata

import "github.com/gdamore/tcell/v2"

// ItemDef defines a floor item loaded from JSON.
type ItemDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "treasure")
	Name  string `json:"name"`  // Display name (e.g., "Treasure")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "$")
	Color string `json:"color"` // Hex color code (e.g., "#F1C40F")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// MustLoadItems loads item definitions, panicking on error.
func MustLoadItems() []ItemDef {
	items, err := LoadItems()
	if err != nil {
		panic(err)
	}
	return items
}
