package world

import (
	"time"

	"github.com/samdwyer/shadowroom/internal/gamedata"
)

// Tile is the per-cell instance of a tile template. The template is shared and
// read-only; animation progress belongs to the instance.
type Tile struct {
	def    *gamedata.TileDef
	frames []rune

	animElapsed time.Duration
	animIndex   int
}

// NewTile creates an independent instance of def.
func NewTile(def *gamedata.TileDef) *Tile {
	return &Tile{
		def:    def,
		frames: def.FrameRunes(),
	}
}

// Def returns the template the tile was created from.
func (t *Tile) Def() *gamedata.TileDef {
	return t.def
}

// Symbol returns the layout symbol of the tile.
func (t *Tile) Symbol() rune {
	return t.def.SymbolRune()
}

// Solid returns true if the tile blocks movement.
func (t *Tile) Solid() bool {
	return t.def.Solid
}

// Enemy returns true if the tile takes part in the enemy pass.
func (t *Tile) Enemy() bool {
	return t.def.Enemy
}

// IsPlayer returns true for the player tile.
func (t *Tile) IsPlayer() bool {
	return t.Symbol() == gamedata.PlayerSymbol
}

// Animated returns true if the tile has a glyph sequence.
func (t *Tile) Animated() bool {
	return len(t.frames) > 0
}

// FrameIndex returns the current position in the glyph sequence.
func (t *Tile) FrameIndex() int {
	return t.animIndex
}

// FrameInterval is how much accumulated time one animation frame lasts.
// Zero means the tile never advances.
func (t *Tile) FrameInterval() time.Duration {
	if t.def.AnimationFPS <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / t.def.AnimationFPS)
}

// Glyph returns the glyph to draw without advancing the animation.
func (t *Tile) Glyph() rune {
	if !t.Animated() {
		return t.def.GlyphRune()
	}
	return t.frames[t.animIndex]
}

// Advance adds dt to the animation clock and returns the glyph for this frame.
// Once the clock reaches the frame interval the sequence moves on one frame,
// wrapping at the end, and the clock restarts from zero.
func (t *Tile) Advance(dt time.Duration) rune {
	if !t.Animated() {
		return t.def.GlyphRune()
	}

	interval := t.FrameInterval()
	if interval <= 0 {
		return t.frames[t.animIndex]
	}

	t.animElapsed += dt
	if t.animElapsed >= interval {
		t.animIndex = (t.animIndex + 1) % len(t.frames)
		t.animElapsed = 0
	}
	return t.frames[t.animIndex]
}
