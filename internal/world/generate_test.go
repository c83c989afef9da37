package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/shadowroom/internal/gamedata"
)

func TestGenerateRoomReproducibility(t *testing.T) {
	ctx := context.Background()

	r1 := GenerateRoom(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(12345)))
	r2 := GenerateRoom(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(12345)))

	if len(r1.Rows) != len(r2.Rows) {
		t.Fatalf("Row count mismatch: %d != %d", len(r1.Rows), len(r2.Rows))
	}
	for y := range r1.Rows {
		if r1.Rows[y] != r2.Rows[y] {
			t.Errorf("Row %d mismatch:\n%s\n%s", y, r1.Rows[y], r2.Rows[y])
		}
	}
}

func TestGenerateRoomDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	r1 := GenerateRoom(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(12345)))
	r2 := GenerateRoom(ctx, DefaultWidth, DefaultHeight, rand.New(rand.NewSource(54321)))

	identical := true
	for y := range r1.Rows {
		if r1.Rows[y] != r2.Rows[y] {
			identical = false
			break
		}
	}
	if identical {
		t.Error("Rooms with different seeds should not be identical")
	}
}

func TestGenerateRoomLoadsAsGrid(t *testing.T) {
	atlas := gamedata.MustLoadAtlas()

	for _, size := range []Point{{DefaultWidth, DefaultHeight}, {30, 12}, {5, 5}, {1, 1}} {
		room := GenerateRoom(context.Background(), size.X, size.Y, rand.New(rand.NewSource(7)))

		g, err := NewGrid(room, atlas)
		if err != nil {
			t.Fatalf("%v: NewGrid() error = %v", size, err)
		}

		// The border is solid all the way round.
		for x := 0; x < g.Width(); x++ {
			if !g.At(Point{x, 0}).Solid() || !g.At(Point{x, g.Height() - 1}).Solid() {
				t.Errorf("%v: open border at column %d", size, x)
			}
		}
		for y := 0; y < g.Height(); y++ {
			if !g.At(Point{0, y}).Solid() || !g.At(Point{g.Width() - 1, y}).Solid() {
				t.Errorf("%v: open border at row %d", size, y)
			}
		}
	}
}
