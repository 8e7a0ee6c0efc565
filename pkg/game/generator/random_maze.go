package generator

import (
	"fmt"
	"math/rand"

	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/world"
)

// RandomMazeGenerator places rooms at random positions and grows mazes
// around them
type RandomMazeGenerator struct{}

// Name returns the name of this generator
func (g *RandomMazeGenerator) Name() string {
	return "random"
}

// Generate creates a new level
func (g *RandomMazeGenerator) Generate(cfg Config, rng *rand.Rand) (*Level, error) {
	return generate(g.Name(), MakeSeparateRectangles, cfg, rng)
}

// BSPMazeGenerator places rooms in the leaves of a binary space partition
// and grows mazes around them
type BSPMazeGenerator struct{}

// Name returns the name of this generator
func (g *BSPMazeGenerator) Name() string {
	return "bsp"
}

// Generate creates a new level
func (g *BSPMazeGenerator) Generate(cfg Config, rng *rand.Rand) (*Level, error) {
	return generate(g.Name(), SplitRectangles, cfg, rng)
}

type placer func(bounds world.Rectangle, opts PlacementOptions, rng *rand.Rand) []world.Rectangle

// generate runs the shared pipeline. Every stage draws from rng in a fixed
// order, so a seed always gives the same level.
func generate(name string, place placer, cfg Config, rng *rand.Rand) (*Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	grid := world.NewGrid(cfg.Height, cfg.Width)
	level := &Level{Grid: grid, Generator: name}

	// Reserve rooms first so the mazes grow around them
	level.Rects = place(grid.Bounds(), cfg.placement(), rng)
	id := uint32(1)
	for i, rect := range level.Rects {
		grid.FillRect(world.EntityLayer, rect, world.Empty)
		grid.FillRect(world.VariationsLayer, rect, byte('A'+i%26))
		grid.FillRectId(rect, id)
		id++
	}
	level.NextID = FillSpaceWithMaze(id, 0, grid, rng)

	level.Connections = RandomConnectRegions(world.Empty, cfg.ExtraConnectionProbability, grid, rng)
	level.Connected = RegionsConnected(grid, level.Connections)
	if cfg.HasDoors {
		for _, c := range level.Connections {
			grid.SetEntityCell(c.Pos, doorFor(c))
		}
	}

	// Without rooms the whole maze is one tree and would erode away
	if cfg.Simplify && len(level.Rects) > 0 {
		level.simplify()
	}

	level.Rooms = FindRooms(grid, Walls)
	level.Spawns = flatten(AddNEntitiesToEachRoom(level.Rooms, cfg.SpawnCount, Spawn, world.Empty, grid, rng))
	level.Objects = flatten(AddNEntitiesToEachRoom(level.Rooms, cfg.ObjectCount, Object, world.Empty, grid, rng))
	if len(level.Spawns) == 0 && cfg.SpawnCount > 0 {
		level.placeFallbackSpawn(rng)
	}
	level.placeExit()

	if msg := level.Validate(); msg != "" {
		return nil, fmt.Errorf("%s: %w: %s", name, ErrInvalidLevel, msg)
	}
	return level, nil
}

// simplify erodes dead ends, seals doors left leading nowhere and
// straightens horseshoe bends
func (l *Level) simplify() {
	grid := l.Grid
	RemoveDeadEnds(world.Empty, world.Wall, Walls, grid)

	bounds := grid.Bounds()
	for _, c := range l.Connections {
		if grid.GetEntityCell(c.Pos) == world.Empty {
			continue
		}
		open := 0
		bounds.VisitNeighbours(c.Pos, func(n world.Pos) {
			if !Walls.Has(grid.GetEntityCell(n)) {
				open++
			}
		})
		if open < 2 {
			grid.SetEntityCell(c.Pos, world.Wall)
		}
	}

	RemoveDeadEnds(world.Empty, world.Wall, Walls, grid)
	RemoveAllHorseshoeBends(world.Empty, world.Wall, Walls, grid)

	// Keep only connectors that survived
	kept := l.Connections[:0]
	for _, c := range l.Connections {
		if !Walls.Has(grid.GetEntityCell(c.Pos)) {
			kept = append(kept, c)
		}
	}
	l.Connections = kept
}

// placeFallbackSpawn puts the spawn on a random empty cell when no room was
// found to hold it
func (l *Level) placeFallbackSpawn(rng *rand.Rand) {
	var free []world.Pos
	l.Grid.VisitAll(world.EntityLayer, func(p world.Pos, c byte) {
		if c == world.Empty {
			free = append(free, p)
		}
	})
	if len(free) == 0 {
		return
	}
	p := free[rng.Intn(len(free))]
	l.Grid.SetEntityCell(p, Spawn)
	l.Spawns = []world.Pos{p}
}

// placeExit puts the exit on the empty cell furthest from the first spawn
func (l *Level) placeExit() {
	if len(l.Spawns) == 0 {
		return
	}
	fill, err := floodfill.New(l.Grid, world.EntityLayer, l.Spawns[0], Walls)
	if err != nil {
		return
	}
	best := -1
	fill.Visit(func(p world.Pos, dist int) {
		if dist > best && l.Grid.GetEntityCell(p) == world.Empty {
			best = dist
			l.Exit = p
		}
	})
	if best < 0 {
		return
	}
	l.Grid.SetEntityCell(l.Exit, Exit)
	l.HasExit = true
}

func flatten(groups [][]world.Pos) []world.Pos {
	var out []world.Pos
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
