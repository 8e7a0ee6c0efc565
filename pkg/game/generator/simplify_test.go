package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/world"
)

func TestRemoveDeadEnds(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "spur off a loop",
			in:   lines("*******", "*     *", "* *** *", "*     *", "*** ***", "*******"),
			want: lines("*******", "*     *", "* *** *", "*     *", "*******", "*******"),
		},
		{
			name: "isolated corridor",
			in:   lines("*****", "*   *", "*****"),
			want: lines("*****", "*****", "*****"),
		},
		{
			name: "stops at markers",
			in:   lines("*****", "*  P*", "*****"),
			want: lines("*****", "***P*", "*****"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromText(t, tt.in)
			RemoveDeadEnds(world.Empty, world.Wall, Walls, g)
			assert.Equal(t, tt.want, g.Text(world.EntityLayer))
		})
	}
}

func TestRemoveDeadEnds_ErodesPerfectMaze(t *testing.T) {
	g := world.NewGrid(21, 31)
	FillWithMaze(world.Pos{Row: 1, Col: 1}, 1, g, rand.New(rand.NewSource(4)))
	RemoveDeadEnds(world.Empty, world.Wall, Walls, g)
	assert.Zero(t, countOpen(g))
}

// carvedLevel builds rooms, mazes and connectors without simplifying
func carvedLevel(seed int64, extra float64) *world.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := world.NewGrid(25, 41)
	id := uint32(1)
	for _, r := range MakeSeparateRectangles(g.Bounds(), defaultPlacement(), rng) {
		g.FillRect(world.EntityLayer, r, world.Empty)
		g.FillRectId(r, id)
		id++
	}
	FillSpaceWithMaze(id, 0, g, rng)
	RandomConnectRegions(world.Empty, extra, g, rng)
	return g
}

func TestRemoveDeadEnds_Idempotent(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := carvedLevel(seed, 0.3)
		RemoveDeadEnds(world.Empty, world.Wall, Walls, g)
		once := g.Text(world.EntityLayer)
		RemoveDeadEnds(world.Empty, world.Wall, Walls, g)
		assert.Equal(t, once, g.Text(world.EntityLayer), "seed %d", seed)
	}
}

func TestRemoveHorseshoeBends(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		in      string
		want    string
		removed int
	}{
		{
			name: "loop",
			size: 1,
			in: lines(
				"*******",
				"*******",
				"**   **",
				"** * **",
				"** * **",
				"**   **",
				"*******",
			),
			want: lines(
				"*******",
				"*******",
				"*******",
				"**   **",
				"** * **",
				"**   **",
				"*******",
			),
			removed: 1,
		},
		{
			name: "wide bend",
			size: 2,
			in: lines(
				"********",
				"********",
				"**    **",
				"** ** **",
				"** ** **",
				"**    **",
				"********",
			),
			want: lines(
				"********",
				"********",
				"********",
				"**    **",
				"** ** **",
				"**    **",
				"********",
			),
			removed: 1,
		},
		{
			name: "wrong size",
			size: 1,
			in: lines(
				"********",
				"********",
				"**    **",
				"** ** **",
				"** ** **",
				"**    **",
				"********",
			),
			want: lines(
				"********",
				"********",
				"**    **",
				"** ** **",
				"** ** **",
				"**    **",
				"********",
			),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromText(t, tt.in)
			open := countOpen(g)
			n := RemoveHorseshoeBends(tt.size, world.Empty, world.Wall, Walls, g)
			assert.Equal(t, tt.removed, n)
			assert.Equal(t, tt.want, g.Text(world.EntityLayer))
			assert.Equal(t, open-2*n, countOpen(g))
		})
	}
}

func TestRemoveHorseshoeBends_InvalidSize(t *testing.T) {
	g := carvedLevel(1, 0)
	before := g.Text(world.EntityLayer)
	assert.Zero(t, RemoveHorseshoeBends(0, world.Empty, world.Wall, Walls, g))
	assert.Equal(t, before, g.Text(world.EntityLayer))
}

func TestRemoveAllHorseshoeBends_RestartsAfterRemoval(t *testing.T) {
	// Straightening the wide bend leaves a narrow one on the left
	g := gridFromText(t, lines(
		"********",
		"********",
		"**    **",
		"** ** **",
		"** ** **",
		"**    **",
		"********",
	))
	assert.Equal(t, 2, RemoveAllHorseshoeBends(world.Empty, world.Wall, Walls, g))
	assert.Equal(t, lines(
		"********",
		"********",
		"********",
		"***   **",
		"*** * **",
		"***   **",
		"********",
	), g.Text(world.EntityLayer))
}

func TestRemoveAllHorseshoeBends_WidthLimit(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		removed int
		want    string
	}{
		{
			name: "bend longer than width-3 stays",
			in: lines(
				"*****",
				"*****",
				"**  *",
				"** **",
				"** **",
				"** **",
				"**  *",
				"*****",
				"*****",
			),
			removed: 0,
		},
		{
			name: "bend of width-3 goes",
			in: lines(
				"******",
				"******",
				"**  **",
				"** ***",
				"** ***",
				"** ***",
				"**  **",
				"******",
				"******",
			),
			removed: 1,
			want: lines(
				"******",
				"******",
				"*** **",
				"*** **",
				"*** **",
				"*** **",
				"*** **",
				"******",
				"******",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFromText(t, tt.in)
			want := tt.want
			if want == "" {
				want = tt.in
			}
			assert.Equal(t, tt.removed, RemoveAllHorseshoeBends(world.Empty, world.Wall, Walls, g))
			assert.Equal(t, want, g.Text(world.EntityLayer))
		})
	}
}

func TestRemoveAllHorseshoeBends_PreservesReachability(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := carvedLevel(seed, 0.2)
		RemoveDeadEnds(world.Empty, world.Wall, Walls, g)

		open := countOpen(g)
		start := firstOpen(t, g)
		before, err := floodfill.New(g, world.EntityLayer, start, Walls)
		require.NoError(t, err)
		require.Equal(t, open, before.Len(), "seed %d: carved level is not connected", seed)

		n := RemoveAllHorseshoeBends(world.Empty, world.Wall, Walls, g)
		assert.Equal(t, open-2*n, countOpen(g), "seed %d", seed)

		after, err := floodfill.New(g, world.EntityLayer, firstOpen(t, g), Walls)
		require.NoError(t, err)
		assert.Equal(t, countOpen(g), after.Len(), "seed %d: straightening split the level", seed)
	}
}

func firstOpen(t *testing.T, g *world.Grid) world.Pos {
	t.Helper()
	var first *world.Pos
	g.VisitAll(world.EntityLayer, func(p world.Pos, c byte) {
		if first == nil && !Walls.Has(c) {
			first = &p
		}
	})
	require.NotNil(t, first)
	return *first
}
