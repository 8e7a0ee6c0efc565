package generator

import (
	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/world"
)

// LevelFromGrid describes a grid that was built elsewhere, such as one loaded
// from text. Markers are read back from the entity layer, rooms are detected
// and Connected reports whether every open cell is reachable from the first.
// Rects and Connections stay empty since the grid carries no record of them.
func LevelFromGrid(name string, grid *world.Grid) *Level {
	lvl := &Level{Grid: grid, Generator: name}

	var first world.Pos
	open := 0
	grid.VisitAll(world.EntityLayer, func(p world.Pos, c byte) {
		lvl.NextID = max(lvl.NextID, grid.GetCellId(p)+1)
		if Walls.Has(c) {
			return
		}
		if open == 0 {
			first = p
		}
		open++
		switch c {
		case Spawn:
			lvl.Spawns = append(lvl.Spawns, p)
		case Object:
			lvl.Objects = append(lvl.Objects, p)
		case Exit:
			if !lvl.HasExit {
				lvl.Exit, lvl.HasExit = p, true
			}
		}
	})

	lvl.Rooms = FindRooms(grid, Walls)
	if open == 0 {
		lvl.Connected = true
		return lvl
	}
	fill, err := floodfill.New(grid, world.EntityLayer, first, Walls)
	lvl.Connected = err == nil && fill.Len() == open
	return lvl
}
