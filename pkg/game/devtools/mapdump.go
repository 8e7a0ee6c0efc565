// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

// DefaultMapDumpFilename is used when no dump path is given
const DefaultMapDumpFilename = "map.txt"

// ErrNoGrid is returned when asked to dump a level without a grid
var ErrNoGrid = errors.New("devtools: level has no grid")

// Metadata describes how a level was produced
type Metadata struct {
	Level  int
	Seed   int64
	Source string // File the grid was loaded from, empty when generated
}

// WriteMapDump writes a debug dump of lvl: metadata, legend, all three
// layers and the placement lists. The format is sections of key: value lines.
func WriteMapDump(w io.Writer, lvl *generator.Level, meta Metadata) error {
	if lvl == nil || lvl.Grid == nil {
		return ErrNoGrid
	}
	f := bufio.NewWriter(w)
	g := lvl.Grid

	fmt.Fprintln(f, "=== MAP DUMP DEBUG (layers, regions, placements) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "generator: %s\n", lvl.Generator)
	fmt.Fprintf(f, "level: %d\n", meta.Level)
	fmt.Fprintf(f, "level_seed: %d\n", meta.Seed)
	if meta.Source != "" {
		fmt.Fprintf(f, "source: %s\n", meta.Source)
	}
	fmt.Fprintf(f, "grid_rows: %d\n", g.Rows())
	fmt.Fprintf(f, "grid_cols: %d\n", g.Cols())
	fmt.Fprintf(f, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(f, "next_region_id: %d\n", lvl.NextID)
	fmt.Fprintf(f, "connected: %v\n", lvl.Connected)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (entity symbols) ---")
	fmt.Fprintf(f, "%c = wall  %c = empty  %c = spawn  %c = object  %c = exit  %c = door in horizontal wall  %c = door in vertical wall\n",
		world.Wall, world.Empty, generator.Spawn, generator.Object, generator.Exit, generator.HorizontalDoor, generator.VerticalDoor)
	fmt.Fprintln(f, "ids: . = no region  1-9a-z = region id  # = id above 35")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (entity layer) ---")
	fmt.Fprint(f, g.Text(world.EntityLayer))
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (variations layer) ---")
	fmt.Fprint(f, g.Text(world.VariationsLayer))
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map (region ids) ---")
	fmt.Fprint(f, g.IdText())
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Placements ---")

	fmt.Fprintln(f, "Rectangles:")
	for i, r := range lvl.Rects {
		fmt.Fprintf(f, "  index: %d row: %d col: %d height: %d width: %d\n", i, r.Pos.Row, r.Pos.Col, r.Size.Height, r.Size.Width)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Rooms:")
	for i, room := range lvl.Rooms {
		fmt.Fprintf(f, "  index: %d cells: %d first: %d,%d\n", i, len(room), room[0].Row, room[0].Col)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "Connections:")
	for _, c := range lvl.Connections {
		a, b := c.Between()
		fmt.Fprintf(f, "  row: %d col: %d vertical: %v joins: %d,%d %d,%d\n", c.Pos.Row, c.Pos.Col, c.Vertical(), a.Row, a.Col, b.Row, b.Col)
	}
	fmt.Fprintln(f, "")

	writePositions(f, "Spawns", lvl.Spawns)
	writePositions(f, "Objects", lvl.Objects)

	fmt.Fprintln(f, "Exit cell:")
	if lvl.HasExit {
		fmt.Fprintf(f, "  row: %d col: %d\n", lvl.Exit.Row, lvl.Exit.Col)
	} else {
		fmt.Fprintln(f, "  (none)")
	}
	fmt.Fprintln(f, "")

	if problem := lvl.Validate(); problem != "" {
		fmt.Fprintf(f, "validation: %s\n", problem)
	} else {
		fmt.Fprintln(f, "validation: ok")
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "=== END MAP DUMP ===")
	return f.Flush()
}

func writePositions(f io.Writer, title string, cells []world.Pos) {
	fmt.Fprintf(f, "%s:\n", title)
	if len(cells) == 0 {
		fmt.Fprintln(f, "  (none)")
	}
	for _, p := range cells {
		fmt.Fprintf(f, "  row: %d col: %d\n", p.Row, p.Col)
	}
	fmt.Fprintln(f, "")
}

// DumpMapToFile writes a map dump to path, or to DefaultMapDumpFilename when
// path is empty. It returns the absolute path written.
func DumpMapToFile(path string, lvl *generator.Level, meta Metadata) (string, error) {
	if path == "" {
		path = DefaultMapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, lvl, meta); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
