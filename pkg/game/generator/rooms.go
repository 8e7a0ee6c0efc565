package generator

import (
	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/world"
)

// Neighbour bits of the 8-connected adjacency bitmap
const (
	adjN = 1 << iota
	adjNE
	adjE
	adjSE
	adjS
	adjSW
	adjW
	adjNW
)

var adjOffsets = [8]world.Vec{
	{DRow: -1}, {DRow: -1, DCol: 1}, {DCol: 1}, {DRow: 1, DCol: 1},
	{DRow: 1}, {DRow: 1, DCol: -1}, {DCol: -1}, {DRow: -1, DCol: -1},
}

// FindRooms returns the open areas of the entity layer that are at least two
// cells wide in both directions. Corridors, dead ends and junctions of 1-wide
// corridors are not part of any room.
// Rooms are listed in row-major order of their first cell; the cells of each
// room are in flood-fill order from that cell.
func FindRooms(grid *world.Grid, walls world.CharSet) [][]world.Pos {
	isOpen := func(p world.Pos) bool {
		return grid.InBounds(p) && !walls.Has(grid.GetEntityCell(p))
	}

	// Room cells are empty in this scratch grid, everything else is a wall
	rooms := world.NewGrid(grid.Rows(), grid.Cols())
	grid.Bounds().Visit(func(p world.Pos) {
		if !isOpen(p) {
			return
		}
		adj := 0
		for i, off := range adjOffsets {
			if isOpen(p.Add(off)) {
				adj |= 1 << i
			}
		}
		if isRoomCell(adj) {
			rooms.SetEntityCell(p, world.Empty)
		}
	})

	roomWalls := world.NewCharSet(string(world.Wall))
	visited := make([]bool, grid.Area())
	var out [][]world.Pos
	rooms.VisitAll(world.EntityLayer, func(p world.Pos, c byte) {
		if c != world.Empty || visited[rooms.Index(p)] {
			return
		}
		fill, err := floodfill.New(rooms, world.EntityLayer, p, roomWalls)
		if err != nil {
			return
		}
		cells := fill.Connected()
		for _, cell := range cells {
			visited[rooms.Index(cell)] = true
		}
		out = append(out, cells)
	})
	return out
}

// isRoomCell decides from the adjacency bitmap whether an open cell belongs to
// a room. A side opening only counts when one of the diagonals next to it is
// open too, and a room cell needs a counted opening on both axes.
func isRoomCell(adj int) bool {
	has := func(bits int) bool { return adj&bits != 0 }
	n := has(adjN) && has(adjNE|adjNW)
	e := has(adjE) && has(adjNE|adjSE)
	s := has(adjS) && has(adjSE|adjSW)
	w := has(adjW) && has(adjNW|adjSW)
	return (n || s) && (e || w)
}
