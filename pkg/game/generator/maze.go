package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"mazegen/pkg/engine/world"
)

// Carving directions on the odd lattice, two cells per step
var carveDirections = [4]world.Vec{
	{DRow: -1}, {DCol: 1}, {DRow: 1}, {DCol: -1},
}

// FillWithMaze carves a perfect maze starting at the odd cell start. Every
// cell it opens is set to world.Empty and tagged with id. Carving only
// enters odd cells whose id is still 0, so rooms and earlier mazes stop it,
// and it never touches the outer border of the grid.
func FillWithMaze(start world.Pos, id uint32, grid *world.Grid, rng *rand.Rand) {
	fillWithMaze(start, id, 0, grid, rng)
}

// fillWithMaze is the recursive backtracker behind FillWithMaze. Cells tagged
// unfilled are the ones still open for carving.
func fillWithMaze(start world.Pos, id, unfilled uint32, grid *world.Grid, rng *rand.Rand) {
	if id == unfilled {
		return
	}
	inner := world.Rect(1, 1, grid.Rows()-2, grid.Cols()-2)
	if !inner.Contains(start) {
		return
	}

	carve := func(p world.Pos) {
		grid.SetEntityCell(p, world.Empty)
		grid.SetCellId(p, id)
	}
	carve(start)

	path := stack.New[world.Pos]()
	path.Push(start)

	var options [4]world.Vec
	for path.Size() > 0 {
		current := path.Peek()

		n := 0
		for _, d := range carveDirections {
			next := current.Add(d.Scale(2))
			if inner.Contains(next) && grid.GetCellId(next) == unfilled {
				options[n] = d
				n++
			}
		}
		if n == 0 {
			path.Pop()
			continue
		}

		d := options[rng.Intn(n)]
		carve(current.Add(d))
		next := current.Add(d.Scale(2))
		carve(next)
		path.Push(next)
	}
}

// FillSpaceWithMaze carves a separate maze into every connected area of odd
// cells tagged fillID, giving them ids from startID upward. Ids equal to
// fillID are skipped. Returns the next unused id.
func FillSpaceWithMaze(startID, fillID uint32, grid *world.Grid, rng *rand.Rand) uint32 {
	id := startID
	for row := 1; row < grid.Rows()-1; row += 2 {
		for col := 1; col < grid.Cols()-1; col += 2 {
			p := world.Pos{Row: row, Col: col}
			if grid.GetCellId(p) != fillID {
				continue
			}
			if id == fillID {
				id++
			}
			fillWithMaze(p, id, fillID, grid, rng)
			id++
		}
	}
	return id
}
