package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// AtlasFilename is the name of the tile atlas file inside a data filesystem.
const AtlasFilename = "atlas.json"

const (
	// PlayerSymbol marks the player's cell in a room layout.
	PlayerSymbol = '@'
	// FloorSymbol is the tile the player is assumed to be standing on at spawn.
	FloorSymbol = '.'
)

var (
	// ErrInvalidSymbol is returned when a tile symbol is not exactly one character.
	ErrInvalidSymbol = errors.New("tile symbol must be a single character")
	// ErrDuplicateSymbol is returned when two tiles share a symbol.
	ErrDuplicateSymbol = errors.New("duplicate tile symbol")
	// ErrMissingTemplate is returned when a required tile is absent from the atlas.
	ErrMissingTemplate = errors.New("required tile template missing")
)

// TileDef is the immutable template for one map symbol, loaded from JSON.
type TileDef struct {
	Symbol       string   `json:"symbol"`                 // Layout character (e.g., "#")
	Name         string   `json:"name"`                   // Human name (e.g., "wall")
	Glyph        string   `json:"glyph"`                  // Character drawn on screen
	Color        string   `json:"color"`                  // Hex color code (e.g., "#8A8A8A")
	Solid        bool     `json:"solid"`                  // Blocks movement
	Animated     []string `json:"animated,omitempty"`     // Optional glyph sequence
	AnimationFPS float64  `json:"animationFPS,omitempty"` // Frames per second of the sequence
	Enemy        bool     `json:"enemy,omitempty"`        // Visited by the enemy pass

	color tcell.Color // parsed Color, set by NewAtlas
}

// SymbolRune returns the layout symbol as a rune.
func (d *TileDef) SymbolRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Symbol)
	return r
}

// GlyphRune returns the static glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	if d.Glyph == "" {
		return '?'
	}
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	return r
}

// FrameRunes returns the animation sequence as runes, or nil for static tiles.
func (d *TileDef) FrameRunes() []rune {
	if len(d.Animated) == 0 {
		return nil
	}
	frames := make([]rune, 0, len(d.Animated))
	for _, f := range d.Animated {
		r, _ := utf8.DecodeRuneInString(f)
		if f == "" {
			r = '?'
		}
		frames = append(frames, r)
	}
	return frames
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	if d.color != tcell.ColorDefault {
		return d.color
	}
	c, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return c
}

// AtlasFile represents the structure of atlas.json.
type AtlasFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Atlas maps layout symbols to tile templates. It is read-only after creation.
type Atlas struct {
	tiles map[rune]*TileDef
	all   []TileDef
}

// NewAtlas validates tile definitions and indexes them by symbol.
// The player and floor templates must be present.
func NewAtlas(defs []TileDef) (*Atlas, error) {
	atlas := &Atlas{
		tiles: make(map[rune]*TileDef, len(defs)),
		all:   defs,
	}
	for i := range defs {
		def := &defs[i]
		if utf8.RuneCountInString(def.Symbol) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, def.Symbol)
		}
		c, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", def.Symbol, err)
		}
		def.color = c
		sym := def.SymbolRune()
		if _, exists := atlas.tiles[sym]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, def.Symbol)
		}
		atlas.tiles[sym] = def
	}

	for _, required := range []rune{PlayerSymbol, FloorSymbol} {
		if _, ok := atlas.tiles[required]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingTemplate, required)
		}
	}
	return atlas, nil
}

// LoadAtlas loads the embedded atlas.json.
func LoadAtlas() (*Atlas, error) {
	return LoadAtlasFrom(dataFS)
}

// LoadAtlasFrom loads atlas.json from fsys.
func LoadAtlasFrom(fsys fs.FS) (*Atlas, error) {
	file, err := LoadFrom[AtlasFile](fsys, AtlasFilename)
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from atlas.json")
	}
	return NewAtlas(file.Tiles)
}

// MustLoadAtlas loads the embedded atlas, panicking on error.
func MustLoadAtlas() *Atlas {
	atlas, err := LoadAtlas()
	if err != nil {
		panic(err)
	}
	return atlas
}

// Lookup returns the template for a layout symbol.
func (a *Atlas) Lookup(symbol rune) (*TileDef, bool) {
	def, ok := a.tiles[symbol]
	return def, ok
}

// Player returns the player template.
func (a *Atlas) Player() *TileDef {
	return a.tiles[PlayerSymbol]
}

// Floor returns the floor template.
func (a *Atlas) Floor() *TileDef {
	return a.tiles[FloorSymbol]
}

// All returns all tile definitions.
func (a *Atlas) All() []TileDef {
	return a.all
}

// Count returns the number of tile types in the atlas.
func (a *Atlas) Count() int {
	return len(a.all)
}
