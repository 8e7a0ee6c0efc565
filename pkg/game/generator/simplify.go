package generator

import (
	"mazegen/pkg/engine/world"
)

// RemoveDeadEnds erodes dead-end corridors. Starting from every cell, while
// the cell is empty and has at most one non-wall neighbour it is filled with
// wall and the erosion moves on to that neighbour. Erosion stops at
// junctions, at cells that are not empty (doors, markers) and at isolated
// cells. Cells outside the grid count as walls.
func RemoveDeadEnds(empty, wall byte, walls world.CharSet, grid *world.Grid) {
	bounds := grid.Bounds()
	bounds.Visit(func(p world.Pos) {
		current := p
		for grid.GetEntityCell(current) == empty {
			open := 0
			var next world.Pos
			bounds.VisitNeighbours(current, func(n world.Pos) {
				if !walls.Has(grid.GetEntityCell(n)) {
					open++
					next = n
				}
			})
			if open >= 2 {
				break
			}
			grid.SetEntityCell(current, wall)
			if open == 0 {
				break
			}
			current = next
		}
	})
}

// horseshoe describes a U-shaped bend of a 1-wide corridor around the tip of
// a wall tongue. tip is the first tongue cell, out points from the tongue
// towards the bend and along runs across the bend.
type horseshoe struct {
	tip        world.Pos
	out, along world.Vec
	size       int
}

// at returns the cell i steps along and j steps out from the tip
func (h horseshoe) at(i, j int) world.Pos {
	return h.tip.Add(h.along.Scale(i)).Add(h.out.Scale(j))
}

// matches tests the local pattern around the tip: a bend of size+2 empty
// cells walled in on the far side, whose two ends turn back into corridor
// arms on either side of a tongue of wall.
func (h horseshoe) matches(empty byte, walls world.CharSet, grid *world.Grid) bool {
	isWall := func(p world.Pos) bool {
		return !grid.InBounds(p) || walls.Has(grid.GetEntityCell(p))
	}
	isEmpty := func(p world.Pos) bool {
		return grid.InBounds(p) && grid.GetEntityCell(p) == empty
	}

	for i := 0; i < h.size; i++ {
		if !isWall(h.at(i, 0)) || !isWall(h.at(i, -1)) || !isEmpty(h.at(i, 1)) || !isWall(h.at(i, 2)) {
			return false
		}
	}
	for _, i := range [2]int{-1, h.size} {
		if isWall(h.at(i, 0)) || !isEmpty(h.at(i, 1)) || !isWall(h.at(i, 2)) {
			return false
		}
	}
	return isWall(h.at(-2, 1)) && isWall(h.at(h.size+1, 1))
}

// straighten walls the bend and opens the tongue tip instead, joining the
// arms by a path two cells shorter.
func (h horseshoe) straighten(empty, wall byte, grid *world.Grid) {
	for i := -1; i <= h.size; i++ {
		grid.SetEntityCell(h.at(i, 1), wall)
	}
	for i := 0; i < h.size; i++ {
		grid.SetEntityCell(h.at(i, 0), empty)
	}
}

// RemoveHorseshoeBends straightens every horseshoe bend of the given size,
// in all four orientations, and returns the number removed. Reachability
// between the remaining open cells is unchanged.
func RemoveHorseshoeBends(bendSize int, empty, wall byte, walls world.CharSet, grid *world.Grid) int {
	if bendSize < 1 {
		return 0
	}
	removed := 0
	grid.Bounds().Visit(func(p world.Pos) {
		if !walls.Has(grid.GetEntityCell(p)) {
			return
		}
		for _, dir := range world.AllDirections() {
			out := dir.Delta()
			h := horseshoe{tip: p, out: out, along: out.Clockwise(), size: bendSize}
			if h.matches(empty, walls, grid) {
				h.straighten(empty, wall, grid)
				removed++
				return
			}
		}
	})
	return removed
}

// RemoveAllHorseshoeBends removes horseshoe bends of increasing size,
// starting over from size 1 after every pass that removed something, until
// size+3 exceeds the grid width. Returns the total number removed.
func RemoveAllHorseshoeBends(empty, wall byte, walls world.CharSet, grid *world.Grid) int {
	total := 0
	for size := 1; size+3 <= grid.Cols(); {
		if n := RemoveHorseshoeBends(size, empty, wall, walls, grid); n > 0 {
			total += n
			size = 1
			continue
		}
		size++
	}
	return total
}
