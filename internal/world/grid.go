package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/shadowroom/internal/gamedata"
)

var (
	// ErrEmptyRoom is returned for a layout without rows or columns.
	ErrEmptyRoom = errors.New("room layout is empty")
	// ErrNotRectangular is returned when rows differ in length.
	ErrNotRectangular = errors.New("room layout is not rectangular")
	// ErrUnknownSymbol is returned when a layout symbol has no atlas entry.
	ErrUnknownSymbol = errors.New("room symbol not in atlas")
	// ErrNoPlayer is returned when a layout has no player symbol.
	ErrNoPlayer = errors.New("room has no player")
	// ErrMultiplePlayers is returned when a layout has more than one player symbol.
	ErrMultiplePlayers = errors.New("room has more than one player")
)

// Grid is the room: a rectangle of tile instances, stored row-major.
type Grid struct {
	width  int
	height int
	cells  []*Tile
	spawn  Point
}

// NewGrid builds a grid from a room layout, creating a fresh tile instance
// for every cell so that no two cells share animation state.
func NewGrid(room *gamedata.RoomDef, atlas *gamedata.Atlas) (*Grid, error) {
	if room == nil || room.Height() == 0 || room.Width() == 0 {
		return nil, ErrEmptyRoom
	}

	g := &Grid{
		width:  room.Width(),
		height: room.Height(),
	}
	g.cells = make([]*Tile, 0, g.width*g.height)

	players := 0
	for y, row := range room.Rows {
		x := 0
		for _, sym := range row {
			if x >= g.width {
				return nil, fmt.Errorf("%w: row %d of room %s", ErrNotRectangular, y, room.ID)
			}
			def, ok := atlas.Lookup(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d) in room %s", ErrUnknownSymbol, sym, x, y, room.ID)
			}
			if sym == gamedata.PlayerSymbol {
				players++
				g.spawn = Point{x, y}
			}
			g.cells = append(g.cells, NewTile(def))
			x++
		}
		if x != g.width {
			return nil, fmt.Errorf("%w: row %d of room %s", ErrNotRectangular, y, room.ID)
		}
	}

	switch {
	case players == 0:
		return nil, fmt.Errorf("%w: room %s", ErrNoPlayer, room.ID)
	case players > 1:
		return nil, fmt.Errorf("%w: room %s has %d", ErrMultiplePlayers, room.ID, players)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Spawn returns where the player stood when the room was loaded.
func (g *Grid) Spawn() Point {
	return g.spawn
}

// InBounds returns true if p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the tile at p, or nil outside the grid.
func (g *Grid) At(p Point) *Tile {
	if !g.InBounds(p) {
		return nil
	}
	return g.cells[p.Y*g.width+p.X]
}

// Set places t at p. Writing outside the grid is a programming error and panics.
func (g *Grid) Set(p Point, t *Tile) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("world: Set(%d,%d) outside %dx%d grid", p.X, p.Y, g.width, g.height))
	}
	g.cells[p.Y*g.width+p.X] = t
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Point, t *Tile)) {
	for i, t := range g.cells {
		fn(Point{X: i % g.width, Y: i / g.width}, t)
	}
}

// FindPlayer scans for the first player tile.
func (g *Grid) FindPlayer() (Point, bool) {
	for i, t := range g.cells {
		if t.IsPlayer() {
			return Point{X: i % g.width, Y: i / g.width}, true
		}
	}
	return Point{}, false
}
