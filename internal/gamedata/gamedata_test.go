package gamedata

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadAtlas(t *testing.T) {
	atlas, err := LoadAtlas()
	if err != nil {
		t.Fatalf("Failed to load atlas: %v", err)
	}

	if atlas.Count() != 8 {
		t.Errorf("Expected 8 tile types, got %d", atlas.Count())
	}

	for _, sym := range []rune{'#', '.', '@', '~', '*', '\'', 'g', 's'} {
		if _, ok := atlas.Lookup(sym); !ok {
			t.Errorf("Expected tile %q not found", sym)
		}
	}

	wall, _ := atlas.Lookup('#')
	if !wall.Solid {
		t.Error("Wall should be solid")
	}
	floor := atlas.Floor()
	if floor.Solid {
		t.Error("Floor should not be solid")
	}
	if atlas.Player().GlyphRune() != '@' {
		t.Errorf("Player glyph = %c, want @", atlas.Player().GlyphRune())
	}
}

func TestAtlasEnemiesAndAnimation(t *testing.T) {
	atlas := MustLoadAtlas()

	goblin, _ := atlas.Lookup('g')
	if !goblin.Enemy {
		t.Error("Goblin should be flagged as an enemy")
	}

	water, _ := atlas.Lookup('~')
	frames := water.FrameRunes()
	if len(frames) != 2 || frames[0] != '~' || frames[1] != '≈' {
		t.Errorf("Water frames = %q, want [~ ≈]", string(frames))
	}
	if water.AnimationFPS <= 0 {
		t.Errorf("Water AnimationFPS = %v, want > 0", water.AnimationFPS)
	}

	if frames := atlas.Floor().FrameRunes(); frames != nil {
		t.Errorf("Floor FrameRunes() = %q, want nil", string(frames))
	}
}

func TestNewAtlasErrors(t *testing.T) {
	player := TileDef{Symbol: "@", Glyph: "@", Color: "#FFFFFF", Solid: true}
	floor := TileDef{Symbol: ".", Glyph: ".", Color: "#333333"}

	tests := []struct {
		name string
		defs []TileDef
		want error
	}{
		{"missing player", []TileDef{floor}, ErrMissingTemplate},
		{"missing floor", []TileDef{player}, ErrMissingTemplate},
		{"duplicate", []TileDef{player, floor, floor}, ErrDuplicateSymbol},
		{"empty symbol", []TileDef{player, floor, {Symbol: "", Glyph: "x", Color: "#000000"}}, ErrInvalidSymbol},
		{"long symbol", []TileDef{player, floor, {Symbol: "ab", Glyph: "x", Color: "#000000"}}, ErrInvalidSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defs := append([]TileDef(nil), tt.defs...)
			_, err := NewAtlas(defs)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewAtlas() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewAtlasRejectsBadColor(t *testing.T) {
	defs := []TileDef{
		{Symbol: "@", Glyph: "@", Color: "#FFFFFF"},
		{Symbol: ".", Glyph: ".", Color: "grey"},
	}
	if _, err := NewAtlas(defs); err == nil {
		t.Error("NewAtlas() with invalid color should fail")
	}
}

func TestLoadAtlasFrom(t *testing.T) {
	fsys := fstest.MapFS{
		AtlasFilename: &fstest.MapFile{Data: []byte(`{"tiles":[
			{"symbol":"@","glyph":"@","color":"#FFFFFF","solid":true},
			{"symbol":".","glyph":".","color":"#222222"}
		]}`)},
	}

	atlas, err := LoadAtlasFrom(fsys)
	if err != nil {
		t.Fatalf("LoadAtlasFrom() error = %v", err)
	}
	if atlas.Count() != 2 {
		t.Errorf("Count() = %d, want 2", atlas.Count())
	}

	if _, err := LoadAtlasFrom(fstest.MapFS{}); err == nil {
		t.Error("LoadAtlasFrom() without atlas.json should fail")
	}

	broken := fstest.MapFS{AtlasFilename: &fstest.MapFile{Data: []byte(`{"tiles":`)}}
	if _, err := LoadAtlasFrom(broken); err == nil {
		t.Error("LoadAtlasFrom() with malformed JSON should fail")
	}
}

func TestRoomRegistry(t *testing.T) {
	registry, err := LoadRoomRegistry()
	if err != nil {
		t.Fatalf("Failed to load rooms: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 rooms, got %d", registry.Count())
	}

	cellar := registry.GetByID("cellar")
	if cellar == nil {
		t.Fatal("Cellar not found by ID")
	}
	if cellar.Width() != 20 || cellar.Height() != 10 {
		t.Errorf("Cellar size = %dx%d, want 20x10", cellar.Width(), cellar.Height())
	}

	if registry.Get(0) != cellar {
		t.Error("Get(0) should return the first room")
	}
	if registry.Get(-1) != nil || registry.Get(registry.Count()) != nil {
		t.Error("Get() out of range should return nil")
	}
	if registry.GetByID("nope") != nil {
		t.Error("GetByID() for unknown room should return nil")
	}
}

func TestEmbeddedRoomsUseAtlasSymbols(t *testing.T) {
	atlas := MustLoadAtlas()
	registry := MustLoadRoomRegistry()

	for _, room := range registry.All() {
		players := 0
		for y, row := range room.Rows {
			for _, sym := range row {
				if _, ok := atlas.Lookup(sym); !ok {
					t.Errorf("room %s row %d: symbol %q not in atlas", room.ID, y, sym)
				}
				if sym == PlayerSymbol {
					players++
				}
			}
		}
		if players != 1 {
			t.Errorf("room %s has %d players, want 1", room.ID, players)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GGGGGG", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestTileDefMethods(t *testing.T) {
	def := TileDef{
		Symbol:   "~",
		Name:     "water",
		Glyph:    "~",
		Color:    "#FF0000",
		Animated: []string{"~", "≈", ""},
	}

	if def.SymbolRune() != '~' {
		t.Errorf("Expected symbol '~', got %c", def.SymbolRune())
	}
	if def.GlyphRune() != '~' {
		t.Errorf("Expected glyph '~', got %c", def.GlyphRune())
	}
	if got := def.FrameRunes(); len(got) != 3 || got[2] != '?' {
		t.Errorf("FrameRunes() = %q, want empty frame mapped to '?'", string(got))
	}

	color := def.TCellColor()
	if color == 0 {
		t.Error("TCellColor returned zero color")
	}

	empty := TileDef{}
	if empty.GlyphRune() != '?' {
		t.Errorf("Empty glyph should fall back to '?', got %c", empty.GlyphRune())
	}
}
