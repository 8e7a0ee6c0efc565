package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
)

// Connection is a connector cell joining the regions at Pos-Dir and Pos+Dir
type Connection struct {
	Pos world.Pos
	Dir world.Vec
}

// Between returns the two region cells the connection joins
func (c Connection) Between() (world.Pos, world.Pos) {
	return c.Pos.Add(c.Dir.Neg()), c.Pos.Add(c.Dir)
}

// Vertical reports whether the connection joins a region above to one below
func (c Connection) Vertical() bool {
	return c.Dir.DRow != 0
}

// Offsets at which two connectors count as neighbours
var connectorNeighbourhood = [8]world.Vec{
	{DRow: -2}, {DRow: 2}, {DCol: -2}, {DCol: 2},
	{DRow: -1, DCol: -1}, {DRow: -1, DCol: 1}, {DRow: 1, DCol: -1}, {DRow: 1, DCol: 1},
}

type regionPair struct {
	a, b uint32
}

func pairOf(a, b uint32) regionPair {
	if a > b {
		a, b = b, a
	}
	return regionPair{a, b}
}

// RandomConnectRegions opens connectors between regions carved with
// different ids. Candidates are untagged cells between two odd cells of
// different regions. One candidate per adjacent pair of regions is always
// chosen; every other candidate is then chosen with probability
// extraProbability unless a chosen connector sits right next to it.
// Chosen cells are set to connector in the entity layer. Region ids are
// left as they are.
func RandomConnectRegions(connector byte, extraProbability float64, grid *world.Grid, rng *rand.Rand) []Connection {
	var candidates []Connection
	groups := make(map[regionPair][]int)
	var order []regionPair

	inner := world.Rect(1, 1, grid.Rows()-2, grid.Cols()-2)
	inner.Visit(func(p world.Pos) {
		if (p.Row+p.Col)%2 == 0 || grid.GetCellId(p) != 0 {
			return
		}
		d := world.Vec{DCol: 1}
		if p.Row%2 == 0 {
			d = world.Vec{DRow: 1}
		}
		a := grid.GetCellId(p.Add(d.Neg()))
		b := grid.GetCellId(p.Add(d))
		if a == 0 || b == 0 || a == b {
			return
		}
		key := pairOf(a, b)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], len(candidates))
		candidates = append(candidates, Connection{Pos: p, Dir: d})
	})

	chosen := mapset.New[world.Pos]()
	var conns []Connection
	for _, key := range order {
		group := groups[key]
		c := candidates[group[rng.Intn(len(group))]]
		chosen.Put(c.Pos)
		conns = append(conns, c)
	}

	// Extra draws happen only for a positive probability, one Float64 per
	// unchosen candidate in discovery order, so p = 0 consumes nothing here
	if extraProbability > 0 {
		for _, c := range candidates {
			if chosen.Has(c.Pos) {
				continue
			}
			if rng.Float64() >= extraProbability || hasNeighbourConnector(c.Pos, chosen) {
				continue
			}
			chosen.Put(c.Pos)
			conns = append(conns, c)
		}
	}

	for _, c := range conns {
		grid.SetEntityCell(c.Pos, connector)
	}
	return conns
}

func hasNeighbourConnector(p world.Pos, chosen mapset.Set[world.Pos]) bool {
	for _, off := range connectorNeighbourhood {
		if chosen.Has(p.Add(off)) {
			return true
		}
	}
	return false
}

// RegionsConnected reports whether the connections join every region id
// present in the grid into a single component.
func RegionsConnected(grid *world.Grid, conns []Connection) bool {
	ids := mapset.New[uint32]()
	grid.Bounds().Visit(func(p world.Pos) {
		if id := grid.GetCellId(p); id != 0 {
			ids.Put(id)
		}
	})
	if ids.Size() <= 1 {
		return true
	}

	sets := newDisjointSet()
	ids.Each(func(id uint32) {
		sets.add(id)
	})
	components := ids.Size()
	for _, c := range conns {
		a, b := c.Between()
		if sets.union(grid.GetCellId(a), grid.GetCellId(b)) {
			components--
		}
	}
	return components == 1
}

// disjointSet is a union-find over region ids
type disjointSet struct {
	parent map[uint32]uint32
	rank   map[uint32]int
}

func newDisjointSet() *disjointSet {
	return &disjointSet{
		parent: make(map[uint32]uint32),
		rank:   make(map[uint32]int),
	}
}

func (s *disjointSet) add(id uint32) {
	if _, ok := s.parent[id]; !ok {
		s.parent[id] = id
	}
}

func (s *disjointSet) find(id uint32) uint32 {
	root := id
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// Path compression
	for id != root {
		next := s.parent[id]
		s.parent[id] = root
		id = next
	}
	return root
}

// union merges the sets holding a and b. Returns false when they were
// already joined or either id is unknown.
func (s *disjointSet) union(a, b uint32) bool {
	if _, ok := s.parent[a]; !ok {
		return false
	}
	if _, ok := s.parent[b]; !ok {
		return false
	}
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	switch {
	case s.rank[ra] < s.rank[rb]:
		s.parent[ra] = rb
	case s.rank[ra] > s.rank[rb]:
		s.parent[rb] = ra
	default:
		s.parent[rb] = ra
		s.rank[ra]++
	}
	return true
}
