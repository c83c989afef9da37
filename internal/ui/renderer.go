package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/shadowroom/internal/world"
)

// Margin is how many columns and rows of the terminal the map never uses.
// The last row holds the status line.
const Margin = 2

// Frame is everything the renderer reads to paint one frame.
type Frame struct {
	Grid         *world.Grid
	Mask         *world.Mask
	Player       world.Point // Player's current cell
	Displacement world.Point // Net movement since the room was loaded
	Title        string      // Room name for the status line
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	camera *Camera
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera returns the camera anchored on the first rendered frame, or nil
// before the first frame.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// ResetCamera drops the camera so the next frame anchors a new one.
func (r *Renderer) ResetCamera() {
	r.camera = nil
}

// Render advances every tile animation by dt and draws the frame. Cells not
// yet revealed are drawn blank.
func (r *Renderer) Render(f Frame, dt time.Duration) {
	if r.camera == nil {
		r.camera = NewCamera(f.Player)
	}

	r.screen.Clear()

	width, height := r.screen.Size()
	viewW, viewH := width-Margin, height-Margin
	origin := r.camera.Origin(viewW, viewH, f.Displacement)

	f.Grid.Each(func(p world.Point, tile *world.Tile) {
		glyph := tile.Advance(dt)
		if !f.Mask.Visible(p) {
			glyph = ' '
		}

		sx := origin.X + p.X*CellWidth
		sy := origin.Y + p.Y*CellHeight
		if sx < 0 || sx >= viewW || sy < 0 || sy >= viewH {
			return
		}
		r.screen.SetContent(sx, sy, glyph, tileStyle(tile))
	})

	status := T("%s  |  wasd: move  r: reload  q: quit  |  seen %d/%d",
		f.Title, f.Mask.Count(), f.Grid.Width()*f.Grid.Height())
	r.RenderMessage(status, height-1)

	r.screen.Show()
}

// tileStyle returns the style a tile is drawn with.
func tileStyle(tile *world.Tile) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tile.Def().TCellColor())
	if tile.IsPlayer() {
		style = style.Bold(true)
	}
	return style
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	width, _ := r.screen.Size()
	x := 0
	for _, ch := range msg {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
