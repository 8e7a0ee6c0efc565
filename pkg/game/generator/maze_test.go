package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/world"
)

func countOpen(g *world.Grid) int {
	n := 0
	g.VisitAll(world.EntityLayer, func(_ world.Pos, c byte) {
		if !Walls.Has(c) {
			n++
		}
	})
	return n
}

// countEdges counts pairs of 4-adjacent open cells
func countEdges(g *world.Grid) int {
	n := 0
	g.VisitAll(world.EntityLayer, func(p world.Pos, c byte) {
		if Walls.Has(c) {
			return
		}
		for _, d := range []world.Vec{{DCol: 1}, {DRow: 1}} {
			if q := p.Add(d); g.InBounds(q) && !Walls.Has(g.GetEntityCell(q)) {
				n++
			}
		}
	})
	return n
}

func TestFillWithMaze_PerfectMaze(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := world.NewGrid(11, 15)
		FillWithMaze(world.Pos{Row: 1, Col: 1}, 1, g, rand.New(rand.NewSource(seed)))

		// 5x7 lattice cells joined by a spanning tree
		nodes := 5 * 7
		open := countOpen(g)
		require.Equal(t, 2*nodes-1, open, "seed %d", seed)
		assert.Equal(t, open-1, countEdges(g), "seed %d: maze has a cycle", seed)

		fill, err := floodfill.New(g, world.EntityLayer, world.Pos{Row: 1, Col: 1}, Walls)
		require.NoError(t, err)
		assert.Equal(t, open, fill.Len())

		g.VisitAll(world.EntityLayer, func(p world.Pos, c byte) {
			if c == world.Empty {
				assert.Equal(t, uint32(1), g.GetCellId(p))
			} else {
				assert.Zero(t, g.GetCellId(p))
			}
			if p.Row == 0 || p.Col == 0 || p.Row == 10 || p.Col == 14 {
				assert.Equal(t, world.Wall, c, "border cell %v", p)
			}
		})
	}
}

func TestFillWithMaze_UnfilledIdIsNoop(t *testing.T) {
	g := world.NewGrid(7, 7)
	before := g.Clone()
	FillWithMaze(world.Pos{Row: 1, Col: 1}, 0, g, rand.New(rand.NewSource(1)))
	assert.Equal(t, before.Text(world.EntityLayer), g.Text(world.EntityLayer))
}

func TestFillWithMaze_Reproducible(t *testing.T) {
	a := world.NewGrid(21, 21)
	b := world.NewGrid(21, 21)
	FillWithMaze(world.Pos{Row: 1, Col: 1}, 1, a, rand.New(rand.NewSource(7)))
	FillWithMaze(world.Pos{Row: 1, Col: 1}, 1, b, rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Text(world.EntityLayer), b.Text(world.EntityLayer))
}

// splitGrid reserves column 3 as room 1, splitting the lattice in two
func splitGrid() *world.Grid {
	g := world.NewGrid(11, 11)
	room := world.Rect(1, 3, 9, 1)
	g.FillRect(world.EntityLayer, room, world.Empty)
	g.FillRectId(room, 1)
	return g
}

func TestFillSpaceWithMaze_SeparateRegions(t *testing.T) {
	g := splitGrid()
	next := FillSpaceWithMaze(2, 0, g, rand.New(rand.NewSource(1)))
	assert.Equal(t, uint32(4), next)

	assert.Equal(t, uint32(2), g.GetCellId(world.Pos{Row: 1, Col: 1}))
	assert.Equal(t, uint32(1), g.GetCellId(world.Pos{Row: 1, Col: 3}))
	assert.Equal(t, uint32(3), g.GetCellId(world.Pos{Row: 1, Col: 5}))

	for row := 1; row < 10; row += 2 {
		for col := 1; col < 10; col += 2 {
			assert.NotZero(t, g.GetCellId(world.Pos{Row: row, Col: col}), "odd cell (%d,%d)", row, col)
		}
	}
	// Room cells keep their id
	world.Rect(1, 3, 9, 1).Visit(func(p world.Pos) {
		assert.Equal(t, uint32(1), g.GetCellId(p))
	})
}

func TestFillSpaceWithMaze_SkipsFillID(t *testing.T) {
	g := world.NewGrid(7, 7)
	next := FillSpaceWithMaze(0, 0, g, rand.New(rand.NewSource(1)))
	assert.Equal(t, uint32(2), next)
	assert.Equal(t, uint32(1), g.GetCellId(world.Pos{Row: 1, Col: 1}))
}

func TestRandomConnectRegions_OnePerPair(t *testing.T) {
	g := splitGrid()
	FillSpaceWithMaze(2, 0, g, rand.New(rand.NewSource(1)))

	conns := RandomConnectRegions('+', 0, g, rand.New(rand.NewSource(2)))
	require.Len(t, conns, 2)

	pairs := map[regionPair]bool{}
	for _, c := range conns {
		a, b := c.Between()
		ida, idb := g.GetCellId(a), g.GetCellId(b)
		assert.NotEqual(t, ida, idb)
		assert.Equal(t, byte('+'), g.GetEntityCell(c.Pos))
		assert.Zero(t, g.GetCellId(c.Pos))
		assert.False(t, c.Vertical())
		pairs[pairOf(ida, idb)] = true
	}
	assert.Equal(t, map[regionPair]bool{{1, 2}: true, {1, 3}: true}, pairs)
	assert.True(t, RegionsConnected(g, conns))
}

func TestRandomConnectRegions_ExtrasAreNotNeighbours(t *testing.T) {
	g := splitGrid()
	FillSpaceWithMaze(2, 0, g, rand.New(rand.NewSource(1)))

	conns := RandomConnectRegions(world.Empty, 1, g, rand.New(rand.NewSource(3)))
	require.Greater(t, len(conns), 2)
	for j := 2; j < len(conns); j++ {
		for i := 0; i < j; i++ {
			d := conns[j].Pos.Sub(conns[i].Pos)
			for _, off := range connectorNeighbourhood {
				assert.NotEqual(t, off, d, "extra %v next to %v", conns[j].Pos, conns[i].Pos)
			}
		}
	}
}

func TestRandomConnectRegions_ZeroProbabilityDrawsOnlyPairs(t *testing.T) {
	g := splitGrid()
	FillSpaceWithMaze(2, 0, g, rand.New(rand.NewSource(1)))

	zero, tiny := g.Clone(), g.Clone()
	rngZero, rngTiny := rand.New(rand.NewSource(5)), rand.New(rand.NewSource(5))

	// A probability too small to ever pass still flips once per leftover
	// candidate, so only the generator state tells the two apart
	connsZero := RandomConnectRegions(world.Empty, 0, zero, rngZero)
	connsTiny := RandomConnectRegions(world.Empty, 1e-300, tiny, rngTiny)
	assert.Equal(t, connsZero, connsTiny)
	assert.Equal(t, zero.Text(world.EntityLayer), tiny.Text(world.EntityLayer))

	rngPairs := rand.New(rand.NewSource(5))
	rngPairs.Intn(5)
	rngPairs.Intn(5)
	assert.Equal(t, rngPairs.Int63(), rngZero.Int63(), "p = 0 draws one index per region pair")

	rngFlips := rand.New(rand.NewSource(5))
	rngFlips.Intn(5)
	rngFlips.Intn(5)
	for i := 0; i < 8; i++ {
		rngFlips.Float64()
	}
	assert.Equal(t, rngFlips.Int63(), rngTiny.Int63(), "one flip per unchosen candidate")
}

func TestRandomConnectRegions_Reproducible(t *testing.T) {
	build := func() []Connection {
		rng := rand.New(rand.NewSource(11))
		g := world.NewGrid(21, 31)
		for i, r := range MakeSeparateRectangles(g.Bounds(), defaultPlacement(), rng) {
			g.FillRect(world.EntityLayer, r, world.Empty)
			g.FillRectId(r, uint32(i+1))
		}
		FillSpaceWithMaze(100, 0, g, rng)
		return RandomConnectRegions(world.Empty, 0.3, g, rng)
	}
	assert.Equal(t, build(), build())
}

func TestRegionsConnected(t *testing.T) {
	g := splitGrid()
	FillSpaceWithMaze(2, 0, g, rand.New(rand.NewSource(1)))

	assert.False(t, RegionsConnected(g, nil))
	left := Connection{Pos: world.Pos{Row: 1, Col: 2}, Dir: world.Vec{DCol: 1}}
	right := Connection{Pos: world.Pos{Row: 1, Col: 4}, Dir: world.Vec{DCol: 1}}
	assert.False(t, RegionsConnected(g, []Connection{left}))
	assert.True(t, RegionsConnected(g, []Connection{left, right}))

	// A single region needs no connectors
	single := world.NewGrid(7, 7)
	FillWithMaze(world.Pos{Row: 1, Col: 1}, 1, single, rand.New(rand.NewSource(1)))
	assert.True(t, RegionsConnected(single, nil))
}

func TestDisjointSet(t *testing.T) {
	s := newDisjointSet()
	for _, id := range []uint32{1, 2, 3, 4} {
		s.add(id)
	}
	assert.True(t, s.union(1, 2))
	assert.True(t, s.union(3, 4))
	assert.False(t, s.union(2, 1))
	assert.True(t, s.union(2, 4))
	assert.Equal(t, s.find(1), s.find(3))
	assert.False(t, s.union(1, 9), "unknown id")
}
