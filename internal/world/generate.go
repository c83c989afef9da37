package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/shadowroom/internal/gamedata"
	"github.com/samdwyer/shadowroom/internal/telemetry"
)

const (
	// Default generated room dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// GeneratedRoomID is the room ID that selects a generated layout.
	GeneratedRoomID = "generated"

	// BSP parameters
	minChamberSize = 4  // Minimum chamber dimension
	maxChamberSize = 12 // Maximum chamber dimension
	minLeafSize    = 8  // Minimum BSP leaf size before stopping split
	minRoomSide    = 5  // Smallest width/height that still leaves an interior

	wallSymbol  = '#'
	floorSymbol = gamedata.FloorSymbol
	enemySymbol = 'g'
)

// generator carves chambers and corridors into a wall-filled layout.
type generator struct {
	width    int
	height   int
	cells    [][]rune
	chambers []Chamber
	rng      *rand.Rand
}

// GenerateRoom builds a bordered room layout using binary space partitioning.
// The player spawns in the centre of the first chamber and, when more than one
// chamber exists, an enemy waits in the centre of the last.
func GenerateRoom(ctx context.Context, width, height int, rng *rand.Rand) *gamedata.RoomDef {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "room.generate")
	defer span.End()

	startTime := time.Now()

	width = max(width, minRoomSide)
	height = max(height, minRoomSide)

	g := &generator{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
		rng:    rng,
	}
	for y := range g.cells {
		g.cells[y] = make([]rune, width)
		for x := range g.cells[y] {
			g.cells[y][x] = wallSymbol
		}
	}

	// Start BSP with everything inside the border as root
	root := &bspNode{
		x:      1,
		y:      1,
		width:  width - 2,
		height: height - 2,
	}
	g.splitNode(root)
	g.createChambers(root)
	g.connectChambers(root)

	if len(g.chambers) == 0 {
		// Too small to partition: open up the whole interior
		whole := Chamber{X: 1, Y: 1, Width: width - 2, Height: height - 2}
		g.chambers = append(g.chambers, whole)
		g.carveChamber(whole)
	}

	spawn := g.chambers[0].Center()
	g.cells[spawn.Y][spawn.X] = gamedata.PlayerSymbol
	if len(g.chambers) > 1 {
		lair := g.chambers[len(g.chambers)-1].Center()
		g.cells[lair.Y][lair.X] = enemySymbol
	}

	rows := make([]string, height)
	for y := range g.cells {
		rows[y] = string(g.cells[y])
	}

	span.SetAttributes(
		attribute.Int("room.width", width),
		attribute.Int("room.height", height),
		attribute.Int("room.chamber_count", len(g.chambers)),
		attribute.Int64("room.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &gamedata.RoomDef{
		ID:   GeneratedRoomID,
		Name: "Generated Room",
		Rows: rows,
	}
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	chamber       *Chamber
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *generator) splitNode(node *bspNode) {
	// Determine split direction
	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false // Split vertically (left/right)
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true // Split horizontally (top/bottom)
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return // Can't split
	}

	extent := node.width
	if splitHorizontally {
		extent = node.height
	}
	lo, hi := minLeafSize, extent-minLeafSize
	if hi <= lo {
		return
	}
	splitPos := lo + g.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createChambers creates a chamber in every leaf large enough to hold one.
func (g *generator) createChambers(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		g.createChambers(node.left)
		g.createChambers(node.right)
		return
	}

	if node.width < minChamberSize+2 || node.height < minChamberSize+2 {
		return // Skip if too small
	}

	w := minChamberSize + g.rng.Intn(min(maxChamberSize, node.width-2)-minChamberSize+1)
	h := minChamberSize + g.rng.Intn(min(maxChamberSize, node.height-2)-minChamberSize+1)

	// Random position within leaf, keeping one cell of wall around it
	c := Chamber{
		X:      node.x + 1 + g.rng.Intn(node.width-w-1),
		Y:      node.y + 1 + g.rng.Intn(node.height-h-1),
		Width:  w,
		Height: h,
	}
	node.chamber = &c
	g.chambers = append(g.chambers, c)
	g.carveChamber(c)
}

// carveChamber sets all cells within the chamber to floor.
func (g *generator) carveChamber(c Chamber) {
	for y := c.Y; y < c.Y+c.Height; y++ {
		for x := c.X; x < c.X+c.Width; x++ {
			g.carve(x, y)
		}
	}
}

// connectChambers joins sibling subtrees with corridors.
func (g *generator) connectChambers(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectChambers(node.left)
	g.connectChambers(node.right)

	left := g.anyChamber(node.left)
	right := g.anyChamber(node.right)
	if left != nil && right != nil {
		g.carveCorridor(*left, *right)
	}
}

// anyChamber returns a chamber from a subtree, left first.
func (g *generator) anyChamber(node *bspNode) *Chamber {
	if node == nil {
		return nil
	}
	if node.chamber != nil {
		return node.chamber
	}
	if c := g.anyChamber(node.left); c != nil {
		return c
	}
	return g.anyChamber(node.right)
}

// carveCorridor digs an L-shaped corridor between two chamber centres.
func (g *generator) carveCorridor(a, b Chamber) {
	from, to := a.Center(), b.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if g.rng.Intn(2) == 0 {
		g.carveHorizontal(from.X, to.X, from.Y)
		g.carveVertical(from.Y, to.Y, to.X)
	} else {
		g.carveVertical(from.Y, to.Y, from.X)
		g.carveHorizontal(from.X, to.X, to.Y)
	}
}

func (g *generator) carveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
	}
}

func (g *generator) carveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
	}
}

// carve opens one cell, never touching the outer border.
func (g *generator) carve(x, y int) {
	if x > 0 && x < g.width-1 && y > 0 && y < g.height-1 {
		g.cells[y][x] = floorSymbol
	}
}
