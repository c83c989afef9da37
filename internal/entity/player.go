// Package entity provides the player avatar.
package entity

import "github.com/samdwyer/shadowroom/internal/world"

// Player tracks where the player is, so the grid never has to be scanned.
type Player struct {
	Pos   world.Point // Current cell
	Start world.Point // Cell the player spawned in
	Moves int         // Successful moves since spawn
}

// NewPlayer creates a player standing at spawn.
func NewPlayer(spawn world.Point) *Player {
	return &Player{
		Pos:   spawn,
		Start: spawn,
	}
}

// Step moves the player one cell in dir.
func (p *Player) Step(dir world.Direction) {
	p.Pos = p.Pos.Add(dir.Delta())
	p.Moves++
}

// Target returns the cell one step away in dir.
func (p *Player) Target(dir world.Direction) world.Point {
	return p.Pos.Add(dir.Delta())
}

// Displacement returns the net movement since spawn.
func (p *Player) Displacement() world.Point {
	return world.Point{X: p.Pos.X - p.Start.X, Y: p.Pos.Y - p.Start.Y}
}
