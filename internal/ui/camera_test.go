package ui

import (
	"testing"

	"github.com/samdwyer/shadowroom/internal/world"
)

func TestCameraCentresStart(t *testing.T) {
	cam := NewCamera(world.Point{X: 10, Y: 5})

	got := cam.Origin(40, 20, world.Point{})
	if got != (world.Point{X: 10, Y: 5}) {
		t.Errorf("Origin() = %v, want (10,5)", got)
	}
}

func TestCameraStaysInsideScrollRadius(t *testing.T) {
	cam := NewCamera(world.Point{X: 10, Y: 5})
	base := cam.Origin(40, 20, world.Point{})

	for d := -ScrollRadius; d <= ScrollRadius; d++ {
		if got := cam.Origin(40, 20, world.Point{X: d, Y: -d}); got != base {
			t.Errorf("Origin(disp %d) = %v, want %v", d, got, base)
		}
	}
}

func TestCameraPansOneToOneBeyondRadius(t *testing.T) {
	cam := NewCamera(world.Point{X: 10, Y: 5})
	base := cam.Origin(40, 20, world.Point{})

	tests := []struct {
		disp world.Point
		want world.Point
	}{
		{world.Point{X: 7}, world.Point{X: base.X - 1, Y: base.Y}},
		{world.Point{X: 9}, world.Point{X: base.X - 3, Y: base.Y}},
		{world.Point{X: -8}, world.Point{X: base.X + 2, Y: base.Y}},
		{world.Point{Y: 10}, world.Point{X: base.X, Y: base.Y - 4}},
		{world.Point{X: -7, Y: -7}, world.Point{X: base.X + 1, Y: base.Y + 1}},
	}

	for _, tt := range tests {
		if got := cam.Origin(40, 20, tt.disp); got != tt.want {
			t.Errorf("Origin(%v) = %v, want %v", tt.disp, got, tt.want)
		}
	}
}

func TestCameraKeepsPlayerAtWindowEdge(t *testing.T) {
	start := world.Point{X: 10, Y: 5}
	cam := NewCamera(start)

	for d := ScrollRadius + 1; d < ScrollRadius+10; d++ {
		origin := cam.Origin(40, 20, world.Point{X: d})
		screenX := origin.X + (start.X+d)*CellWidth
		if screenX != 20+ScrollRadius {
			t.Errorf("disp %d: player drawn at column %d, want %d", d, screenX, 20+ScrollRadius)
		}
	}
}
