package world

// Pos is a cell position on the grid
type Pos struct {
	Row int
	Col int
}

// Add returns the position offset by v
func (p Pos) Add(v Vec) Pos {
	return Pos{Row: p.Row + v.DRow, Col: p.Col + v.DCol}
}

// Sub returns the vector from o to p
func (p Pos) Sub(o Pos) Vec {
	return Vec{DRow: p.Row - o.Row, DCol: p.Col - o.Col}
}

// Vec is a displacement between two positions
type Vec struct {
	DRow int
	DCol int
}

// Scale returns the vector multiplied by n
func (v Vec) Scale(n int) Vec {
	return Vec{DRow: v.DRow * n, DCol: v.DCol * n}
}

// Neg returns the vector pointing the other way
func (v Vec) Neg() Vec {
	return Vec{DRow: -v.DRow, DCol: -v.DCol}
}

// Clockwise returns the vector rotated 90 degrees clockwise (rows grow downwards)
func (v Vec) Clockwise() Vec {
	return Vec{DRow: v.DCol, DCol: -v.DRow}
}

// Size is a height/width pair
type Size struct {
	Height int
	Width  int
}

// Area returns height*width, or 0 for a degenerate size
func (s Size) Area() int {
	if s.Height <= 0 || s.Width <= 0 {
		return 0
	}
	return s.Height * s.Width
}

// Rectangle is an origin position plus a size
type Rectangle struct {
	Pos  Pos
	Size Size
}

// Rect is shorthand for building a rectangle from its four components
func Rect(row, col, height, width int) Rectangle {
	return Rectangle{Pos: Pos{Row: row, Col: col}, Size: Size{Height: height, Width: width}}
}

// Area returns the number of cells covered by the rectangle
func (r Rectangle) Area() int {
	return r.Size.Area()
}

// End returns the position one past the bottom-right corner
func (r Rectangle) End() Pos {
	return Pos{Row: r.Pos.Row + r.Size.Height, Col: r.Pos.Col + r.Size.Width}
}

// Contains checks if p lies inside the rectangle
func (r Rectangle) Contains(p Pos) bool {
	end := r.End()
	return p.Row >= r.Pos.Row && p.Row < end.Row && p.Col >= r.Pos.Col && p.Col < end.Col
}

// Visit calls f for every position in the rectangle in row-major order
func (r Rectangle) Visit(f func(p Pos)) {
	end := r.End()
	for row := r.Pos.Row; row < end.Row; row++ {
		for col := r.Pos.Col; col < end.Col; col++ {
			f(Pos{Row: row, Col: col})
		}
	}
}

// VisitNeighbours calls f for the up to four axis-aligned neighbours of p
// that lie inside the rectangle, in North, East, South, West order.
// The rectangle is normally the grid bounds, i.e. its origin is (0,0).
func (r Rectangle) VisitNeighbours(p Pos, f func(n Pos)) {
	for _, dir := range AllDirections() {
		n := p.Add(dir.Delta())
		if r.Contains(n) {
			f(n)
		}
	}
}

// Overlap returns the intersection of a and b. The result has zero area
// when the rectangles are disjoint.
func Overlap(a, b Rectangle) Rectangle {
	aEnd, bEnd := a.End(), b.End()
	top := max(a.Pos.Row, b.Pos.Row)
	left := max(a.Pos.Col, b.Pos.Col)
	bottom := min(aEnd.Row, bEnd.Row)
	right := min(aEnd.Col, bEnd.Col)
	if bottom <= top || right <= left {
		return Rectangle{Pos: Pos{Row: top, Col: left}}
	}
	return Rect(top, left, bottom-top, right-left)
}

// IsSeparate reports whether the bounding boxes of a and b do not intersect
func IsSeparate(a, b Rectangle) bool {
	if a.Area() == 0 || b.Area() == 0 {
		return true
	}
	aEnd, bEnd := a.End(), b.End()
	return aEnd.Row <= b.Pos.Row || bEnd.Row <= a.Pos.Row ||
		aEnd.Col <= b.Pos.Col || bEnd.Col <= a.Pos.Col
}
