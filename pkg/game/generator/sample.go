package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"mazegen/pkg/engine/world"
)

// AddNEntitiesToEachRoom stamps entity onto up to n random cells of every
// room whose entity cell is still empty. Returns the cells used, per room.
func AddNEntitiesToEachRoom(rooms [][]world.Pos, n int, entity, empty byte, grid *world.Grid, rng *rand.Rand) [][]world.Pos {
	placed := make([][]world.Pos, len(rooms))
	for i, room := range rooms {
		var free []world.Pos
		for _, p := range room {
			if grid.GetEntityCell(p) == empty {
				free = append(free, p)
			}
		}
		rng.Shuffle(len(free), func(a, b int) {
			free[a], free[b] = free[b], free[a]
		})
		free = free[:max(0, min(n, len(free)))]
		for _, p := range free {
			grid.SetEntityCell(p, entity)
		}
		placed[i] = free
	}
	return placed
}

// FindRandomPath returns a random walk from from to to through non-wall
// cells, found by a randomized depth-first search. The path is simple but not
// necessarily shortest. Returns nil when either end is a wall or outside the
// grid, or when to cannot be reached. Region ids are left untouched.
func FindRandomPath(from, to world.Pos, walls world.CharSet, grid *world.Grid, rng *rand.Rand) []world.Pos {
	isOpen := func(p world.Pos) bool {
		return grid.InBounds(p) && !walls.Has(grid.GetEntityCell(p))
	}
	if !isOpen(from) || !isOpen(to) {
		return nil
	}
	if from == to {
		return []world.Pos{from}
	}

	bounds := grid.Bounds()
	visited := mapset.New[world.Pos]()
	visited.Put(from)
	path := stack.New[world.Pos]()
	path.Push(from)

	var options []world.Pos
	for path.Size() > 0 {
		current := path.Peek()

		options = options[:0]
		found := false
		bounds.VisitNeighbours(current, func(n world.Pos) {
			if n == to {
				found = true
			}
			if isOpen(n) && !visited.Has(n) {
				options = append(options, n)
			}
		})
		if found {
			path.Push(to)
			return stackToPath(path)
		}
		if len(options) == 0 {
			path.Pop()
			continue
		}

		next := options[rng.Intn(len(options))]
		visited.Put(next)
		path.Push(next)
	}
	return nil
}

// stackToPath empties the stack into a slice ordered from bottom to top
func stackToPath(s *stack.Stack[world.Pos]) []world.Pos {
	out := make([]world.Pos, s.Size())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = s.Pop()
	}
	return out
}
