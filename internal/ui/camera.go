package ui

import "github.com/samdwyer/shadowroom/internal/world"

const (
	// ScrollRadius is how many cells the player may wander from the start
	// before the camera starts to follow.
	ScrollRadius = 6

	// CellWidth and CellHeight are the screen size of one grid cell.
	CellWidth  = 1
	CellHeight = 1
)

// Camera keeps the player's start cell centred, then pans one cell per step
// once the player is more than ScrollRadius cells away on an axis.
type Camera struct {
	start world.Point
}

// NewCamera anchors a camera on the player's start cell.
func NewCamera(start world.Point) *Camera {
	return &Camera{start: start}
}

// Start returns the anchor cell.
func (c *Camera) Start() world.Point {
	return c.start
}

// Origin returns the screen position of grid cell (0,0) for a view of the
// given size and the player's displacement from the start cell.
func (c *Camera) Origin(viewW, viewH int, displacement world.Point) world.Point {
	x := viewW/2 - c.start.X*CellWidth
	y := viewH/2 - c.start.Y*CellHeight

	x -= overshoot(displacement.X) * CellWidth
	y -= overshoot(displacement.Y) * CellHeight

	return world.Point{X: x, Y: y}
}

// overshoot is how far d lies outside [-ScrollRadius, ScrollRadius].
func overshoot(d int) int {
	switch {
	case d > ScrollRadius:
		return d - ScrollRadius
	case d < -ScrollRadius:
		return d + ScrollRadius
	default:
		return 0
	}
}
