package floodfill

import (
	"math/rand"

	"mazegen/pkg/engine/world"
)

// Distance sentinels stored for cells that are not settled
const (
	distWall      = -2
	distUnvisited = -1
)

// FloodFill holds the breadth-first distance of every open cell to a goal
type FloodFill struct {
	size      world.Size
	goal      world.Pos
	distances []int
	connected []world.Pos
}

// New floods layer l of grid outward from goal. Cells whose character is in
// walls are not traversable.
// On ErrGoalOutOfBounds or ErrGoalIsWall the returned FloodFill is still
// usable but has no settled cells.
// Complexity: O(W×H) time and memory.
func New(grid *world.Grid, l world.Layer, goal world.Pos, walls world.CharSet) (*FloodFill, error) {
	f := &FloodFill{
		size:      grid.Size(),
		goal:      goal,
		distances: make([]int, grid.Area()),
	}
	grid.VisitAll(l, func(p world.Pos, c byte) {
		if walls.Has(c) {
			f.distances[f.index(p)] = distWall
		} else {
			f.distances[f.index(p)] = distUnvisited
		}
	})

	if !grid.InBounds(goal) {
		return f, ErrGoalOutOfBounds
	}
	if f.distances[f.index(goal)] == distWall {
		return f, ErrGoalIsWall
	}

	bounds := world.Rectangle{Size: f.size}
	f.distances[f.index(goal)] = 0
	f.connected = append(f.connected, goal)
	frontier := []world.Pos{goal}
	for dist := 1; len(frontier) > 0; dist++ {
		var next []world.Pos
		for _, p := range frontier {
			bounds.VisitNeighbours(p, func(n world.Pos) {
				i := f.index(n)
				if f.distances[i] != distUnvisited {
					return
				}
				f.distances[i] = dist
				f.connected = append(f.connected, n)
				next = append(next, n)
			})
		}
		frontier = next
	}
	return f, nil
}

func (f *FloodFill) index(p world.Pos) int {
	return p.Row*f.size.Width + p.Col
}

func (f *FloodFill) inBounds(p world.Pos) bool {
	return p.Row >= 0 && p.Row < f.size.Height && p.Col >= 0 && p.Col < f.size.Width
}

// Goal returns the cell the distances are measured to
func (f *FloodFill) Goal() world.Pos {
	return f.goal
}

// Size returns the dimensions of the flooded grid
func (f *FloodFill) Size() world.Size {
	return f.size
}

// DistanceFrom returns the number of steps from p to the goal, or -1 if p is
// out of bounds, a wall, or not connected to the goal
func (f *FloodFill) DistanceFrom(p world.Pos) int {
	if !f.inBounds(p) {
		return -1
	}
	d := f.distances[f.index(p)]
	if d < 0 {
		return -1
	}
	return d
}

// Reachable checks if p is connected to the goal
func (f *FloodFill) Reachable(p world.Pos) bool {
	return f.DistanceFrom(p) >= 0
}

// Len returns the number of settled cells
func (f *FloodFill) Len() int {
	return len(f.connected)
}

// Connected returns the settled cells in non-decreasing distance order
func (f *FloodFill) Connected() []world.Pos {
	out := make([]world.Pos, len(f.connected))
	copy(out, f.connected)
	return out
}

// Furthest returns the last settled cell and its distance. ok is false when
// nothing was settled.
func (f *FloodFill) Furthest() (p world.Pos, dist int, ok bool) {
	if len(f.connected) == 0 {
		return world.Pos{}, -1, false
	}
	p = f.connected[len(f.connected)-1]
	return p, f.distances[f.index(p)], true
}

// ShortestPathFrom returns a shortest path from p to the goal, both included.
// Among the neighbours one step closer to the goal, each step picks one
// uniformly at random, so every shortest path is equally likely.
// Returns nil if p is not connected to the goal.
// Complexity: O(d) for a cell at distance d.
func (f *FloodFill) ShortestPathFrom(p world.Pos, rng *rand.Rand) []world.Pos {
	dist := f.DistanceFrom(p)
	if dist < 0 {
		return nil
	}

	bounds := world.Rectangle{Size: f.size}
	path := make([]world.Pos, 0, dist+1)
	path = append(path, p)
	for current := p; dist > 0; dist-- {
		var next world.Pos
		seen := 0
		bounds.VisitNeighbours(current, func(n world.Pos) {
			if f.distances[f.index(n)] != dist-1 {
				return
			}
			// Reservoir sampling over the qualifying neighbours
			seen++
			if rng.Intn(seen) == 0 {
				next = n
			}
		})
		current = next
		path = append(path, current)
	}
	return path
}

// Visit calls fn with every settled cell and its distance in settlement order
func (f *FloodFill) Visit(fn func(p world.Pos, dist int)) {
	for _, p := range f.connected {
		fn(p, f.distances[f.index(p)])
	}
}

// Walk is Visit with early exit: it stops at the first error returned by fn
// and returns it.
func (f *FloodFill) Walk(fn func(p world.Pos, dist int) error) error {
	for _, p := range f.connected {
		if err := fn(p, f.distances[f.index(p)]); err != nil {
			return err
		}
	}
	return nil
}
