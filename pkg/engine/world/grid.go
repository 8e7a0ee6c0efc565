// Package world provides generic 2D character-grid primitives for maze levels.
// These are engine-level constructs usable by any generator.
package world

// Layer selects one of the two character layers of a grid
type Layer int

// Layer constants
const (
	EntityLayer Layer = iota
	VariationsLayer
)

// String returns the name of the layer
func (l Layer) String() string {
	switch l {
	case EntityLayer:
		return "entity"
	case VariationsLayer:
		return "variations"
	default:
		return "unknown"
	}
}

// Default layer contents
const (
	Wall      byte = '*'
	Empty     byte = ' '
	Variation byte = '.'
)

// NoCell is returned when reading a character outside the grid
const NoCell byte = 0

// Grid is a rectangular maze made of an entity layer, a variations layer and
// a region-id layer. The bounds are fixed at construction.
type Grid struct {
	size       Size
	entity     []byte
	variations []byte
	ids        []uint32
}

// NewGrid creates a grid with the given dimensions. The entity layer is
// filled with walls and the variations layer with the neutral variation.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	area := rows * cols
	g := &Grid{
		size:       Size{Height: rows, Width: cols},
		entity:     make([]byte, area),
		variations: make([]byte, area),
		ids:        make([]uint32, area),
	}
	for i := 0; i < area; i++ {
		g.entity[i] = Wall
		g.variations[i] = Variation
	}
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.size.Height
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.size.Width
}

// Size returns the grid dimensions
func (g *Grid) Size() Size {
	return g.size
}

// Area returns the number of cells in the grid
func (g *Grid) Area() int {
	return g.size.Area()
}

// Bounds returns the rectangle covering the whole grid
func (g *Grid) Bounds() Rectangle {
	return Rectangle{Size: g.size}
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.size.Height && col >= 0 && col < g.size.Width
}

// InBounds checks if p is within grid bounds
func (g *Grid) InBounds(p Pos) bool {
	return g.IsValidPosition(p.Row, p.Col)
}

// Index returns the row-major index of p. p must be in bounds.
func (g *Grid) Index(p Pos) int {
	return p.Row*g.size.Width + p.Col
}

func (g *Grid) layer(l Layer) []byte {
	if l == VariationsLayer {
		return g.variations
	}
	return g.entity
}

// GetCell returns the character at p, or NoCell if out of bounds
func (g *Grid) GetCell(l Layer, p Pos) byte {
	if !g.InBounds(p) {
		return NoCell
	}
	return g.layer(l)[g.Index(p)]
}

// SetCell sets the character at p. Out-of-bounds writes are ignored.
func (g *Grid) SetCell(l Layer, p Pos, c byte) {
	if !g.InBounds(p) {
		return
	}
	g.layer(l)[g.Index(p)] = c
}

// GetEntityCell returns the entity character at p
func (g *Grid) GetEntityCell(p Pos) byte {
	return g.GetCell(EntityLayer, p)
}

// SetEntityCell sets the entity character at p
func (g *Grid) SetEntityCell(p Pos, c byte) {
	g.SetCell(EntityLayer, p, c)
}

// GetVariationsCell returns the variations character at p
func (g *Grid) GetVariationsCell(p Pos) byte {
	return g.GetCell(VariationsLayer, p)
}

// SetVariationsCell sets the variations character at p
func (g *Grid) SetVariationsCell(p Pos, c byte) {
	g.SetCell(VariationsLayer, p, c)
}

// GetCellId returns the region id at p, or 0 if out of bounds
func (g *Grid) GetCellId(p Pos) uint32 {
	if !g.InBounds(p) {
		return 0
	}
	return g.ids[g.Index(p)]
}

// SetCellId sets the region id at p. Out-of-bounds writes are ignored.
func (g *Grid) SetCellId(p Pos, id uint32) {
	if !g.InBounds(p) {
		return
	}
	g.ids[g.Index(p)] = id
}

// FillRect sets every cell of rect that lies inside the grid to c
func (g *Grid) FillRect(l Layer, rect Rectangle, c byte) {
	g.VisitMutable(l, rect, func(p Pos, cell *byte) {
		*cell = c
	})
}

// FillEntityRect fills a rectangle of the entity layer, clamped to the grid
func (g *Grid) FillEntityRect(row, col, height, width int, c byte) {
	g.FillRect(EntityLayer, Rect(row, col, height, width), c)
}

// FillRectId stamps id on every in-bounds cell of rect
func (g *Grid) FillRectId(rect Rectangle, id uint32) {
	Overlap(g.Bounds(), rect).Visit(func(p Pos) {
		g.ids[g.Index(p)] = id
	})
}

// Visit calls f for every cell of the layer inside rect, in row-major order.
// rect is clipped to the grid bounds.
func (g *Grid) Visit(l Layer, rect Rectangle, f func(p Pos, c byte)) {
	cells := g.layer(l)
	Overlap(g.Bounds(), rect).Visit(func(p Pos) {
		f(p, cells[g.Index(p)])
	})
}

// VisitAll calls f for every cell of the layer in row-major order
func (g *Grid) VisitAll(l Layer, f func(p Pos, c byte)) {
	g.Visit(l, g.Bounds(), f)
}

// VisitMutable is Visit with write access to each visited cell
func (g *Grid) VisitMutable(l Layer, rect Rectangle, f func(p Pos, c *byte)) {
	cells := g.layer(l)
	Overlap(g.Bounds(), rect).Visit(func(p Pos) {
		f(p, &cells[g.Index(p)])
	})
}

// Clone returns a deep copy of the grid, ids included
func (g *Grid) Clone() *Grid {
	c := &Grid{
		size:       g.size,
		entity:     make([]byte, len(g.entity)),
		variations: make([]byte, len(g.variations)),
		ids:        make([]uint32, len(g.ids)),
	}
	copy(c.entity, g.entity)
	copy(c.variations, g.variations)
	copy(c.ids, g.ids)
	return c
}

// Rotate returns a new grid rotated 90 degrees clockwise n times (n mod 4,
// negative n rotates anticlockwise). Both character layers rotate together;
// the region ids of the new grid are all 0.
func (g *Grid) Rotate(n int) *Grid {
	turns := ((n % 4) + 4) % 4
	rows, cols := g.size.Height, g.size.Width
	if turns%2 == 1 {
		rows, cols = cols, rows
	}
	out := NewGrid(rows, cols)
	g.Bounds().Visit(func(p Pos) {
		q := p
		for i := 0; i < turns; i++ {
			// One clockwise turn of an h-row grid maps (r,c) to (c, h-1-r)
			h := g.size.Height
			if i%2 == 1 {
				h = g.size.Width
			}
			q = Pos{Row: q.Col, Col: h - 1 - q.Row}
		}
		src := g.Index(p)
		dst := out.Index(q)
		out.entity[dst] = g.entity[src]
		out.variations[dst] = g.variations[src]
	})
	return out
}

// Paste copies layer l of src into this grid with src's origin at pos.
// Cells falling outside this grid are dropped.
func (g *Grid) Paste(l Layer, pos Pos, src *Grid) {
	if src == nil {
		return
	}
	from := src.layer(l)
	to := g.layer(l)
	target := Overlap(g.Bounds(), Rectangle{Pos: pos, Size: src.size})
	target.Visit(func(p Pos) {
		to[g.Index(p)] = from[src.Index(Pos{Row: p.Row - pos.Row, Col: p.Col - pos.Col})]
	})
}
