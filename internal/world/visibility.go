package world

import "github.com/zyedidia/generic/mapset"

// RevealRadius is how far around the player cells are revealed.
const RevealRadius = 1

// Mask records which cells have been seen. Revealed cells stay revealed.
type Mask struct {
	width  int
	height int
	seen   []bool
	count  int
}

// NewMask creates a mask with nothing revealed.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		seen:   make([]bool, width*height),
	}
}

// InBounds returns true if p lies inside the mask.
func (m *Mask) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Visible returns true if p has been revealed.
func (m *Mask) Visible(p Point) bool {
	return m.InBounds(p) && m.seen[p.Y*m.width+p.X]
}

// Count returns the number of revealed cells.
func (m *Mask) Count() int {
	return m.count
}

// Revealed returns every revealed cell.
func (m *Mask) Revealed() mapset.Set[Point] {
	set := mapset.New[Point]()
	for i, ok := range m.seen {
		if ok {
			set.Put(Point{X: i % m.width, Y: i / m.width})
		}
	}
	return set
}

// Reveal marks center and, for each distance 1..radius, its four orthogonal
// and four diagonal cells at that distance. Cells outside the mask are skipped.
// It returns the cells that were not visible before the call.
func (m *Mask) Reveal(center Point, radius int) mapset.Set[Point] {
	fresh := mapset.New[Point]()
	m.mark(center, fresh)
	for i := 1; i <= radius; i++ {
		for _, d := range [...]Point{
			{0, i}, {0, -i}, {i, 0}, {-i, 0},
			{-i, -i}, {i, i}, {-i, i}, {i, -i},
		} {
			m.mark(center.Add(d), fresh)
		}
	}
	return fresh
}

func (m *Mask) mark(p Point, fresh mapset.Set[Point]) {
	if !m.InBounds(p) {
		return
	}
	idx := p.Y*m.width + p.X
	if m.seen[idx] {
		return
	}
	m.seen[idx] = true
	m.count++
	fresh.Put(p)
}
