package generator

import (
	"fmt"
	"math/rand"
	"slices"

	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/world"
)

// Entity layer markers written by the generators
const (
	Spawn          = 'P'
	Object         = 'G'
	Exit           = 'E'
	HorizontalDoor = 'H' // Door in a horizontal wall, joining regions above and below
	VerticalDoor   = 'I' // Door in a vertical wall, joining regions left and right
)

// Walls is the wall set used for everything the generators produce
var Walls = world.NewCharSet(string(world.Wall))

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(cfg Config, rng *rand.Rand) (*Level, error)
	Name() string
}

// Available generators
var (
	RandomMaze = &RandomMazeGenerator{}
	BSP        = &BSPMazeGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = RandomMaze

var registry = map[string]GridGenerator{
	RandomMaze.Name(): RandomMaze,
	BSP.Name():        BSP,
}

// Lookup returns the generator registered under name
func Lookup(name string) (GridGenerator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGenerator)
	}
	return g, nil
}

// Names lists the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Level is a generated maze together with what the pipeline learned while
// building it
type Level struct {
	Grid      *world.Grid
	Generator string

	Rects       []world.Rectangle // Room rectangles reserved before carving
	Rooms       [][]world.Pos     // Rooms detected after simplification
	Connections []Connection      // Connectors that are still open
	Spawns      []world.Pos
	Objects     []world.Pos
	Exit        world.Pos
	HasExit     bool

	NextID    uint32 // First region id not used by the level
	Connected bool   // Connectors joined every region when they were chosen
}

type marker struct {
	cells []world.Pos
	c     byte
}

// Validate checks the generated level. Returns an empty string when valid.
func (l *Level) Validate() string {
	if l.Grid == nil {
		return "level has no grid"
	}
	if !l.Connected {
		return "regions are not connected"
	}
	for i, a := range l.Rects {
		for _, b := range l.Rects[i+1:] {
			if !world.IsSeparate(a, b) {
				return fmt.Sprintf("rooms %v and %v overlap", a, b)
			}
		}
	}

	markers := []marker{
		{l.Spawns, Spawn},
		{l.Objects, Object},
	}
	if l.HasExit {
		markers = append(markers, marker{[]world.Pos{l.Exit}, Exit})
	}
	for _, m := range markers {
		for _, p := range m.cells {
			if got := l.Grid.GetEntityCell(p); got != m.c {
				return fmt.Sprintf("cell %v holds %q, want %q", p, got, m.c)
			}
		}
	}

	if len(l.Spawns) == 0 {
		return ""
	}
	fill, err := floodfill.New(l.Grid, world.EntityLayer, l.Spawns[0], Walls)
	if err != nil {
		return err.Error()
	}
	for _, m := range markers {
		for _, p := range m.cells {
			if !fill.Reachable(p) {
				return fmt.Sprintf("cell %v is not reachable from spawn %v", p, l.Spawns[0])
			}
		}
	}
	return ""
}

// doorFor returns the door character for a connector
func doorFor(c Connection) byte {
	if c.Vertical() {
		return HorizontalDoor
	}
	return VerticalDoor
}
