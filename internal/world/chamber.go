package world

// Chamber is a rectangular open area carved by the room generator.
type Chamber struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the chamber
}

// Center returns the center cell of the chamber.
func (c Chamber) Center() Point {
	return Point{X: c.X + c.Width/2, Y: c.Y + c.Height/2}
}

// Contains returns true if p is inside the chamber.
func (c Chamber) Contains(p Point) bool {
	return p.X >= c.X && p.X < c.X+c.Width && p.Y >= c.Y && p.Y < c.Y+c.Height
}
