// Package renderer draws generated levels for the terminal.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

// Icons used when rendering with Unicode glyphs
const (
	IconWall     = "▒"
	IconFloor    = " "
	IconSpawn    = "@"
	IconObject   = "◆"
	IconExit     = "⌂"
	IconDoorH    = "─"
	IconDoorV    = "│"
	IconPath     = "·"
	IconUnknown  = "?"
	IconOutOfMap = " "
)

// dynamicGet is used for runtime translation key lookups from markup
var dynamicGet = gotext.Get

// SetTranslator replaces the catalog used for labels
func SetTranslator(po *gotext.Po) {
	if po == nil {
		dynamicGet = gotext.Get
		return
	}
	dynamicGet = po.Get
}

// Renderer turns levels into coloured text
type Renderer struct {
	colorWall        color.Style
	colorFloor       color.Style
	colorSpawn       color.Style
	colorObject      color.Style
	colorExit        color.Style
	colorDoor        color.Style
	colorPath        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorDenied      color.Style

	icons bool

	regexpStringFunctions *regexp.Regexp
}

// New creates a renderer. With icons set, cells are drawn with Unicode glyphs
// instead of their raw characters.
func New(icons bool) *Renderer {
	r := &Renderer{icons: icons}
	r.Init()
	return r
}

// Init initializes the color styles
func (r *Renderer) Init() {
	r.colorWall = color.Style{color.FgGray}
	r.colorFloor = color.Style{color.FgDefault}
	r.colorSpawn = color.Style{color.FgGreen, color.OpBold}
	r.colorObject = color.Style{color.FgMagenta, color.OpBold}
	r.colorExit = color.Style{color.FgGreen}
	r.colorDoor = color.Style{color.FgYellow, color.OpBold}
	r.colorPath = color.Style{color.FgCyan, color.OpBold}
	r.colorAction = color.Style{color.FgMagenta}
	r.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	r.colorSubtle = color.Style{color.FgGray, color.OpBold}
	r.colorDenied = color.Style{color.FgRed, color.OpBold}

	r.regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([a-z A-Z0-9_,:.\-]+)}`)
}

// FormatString formats a string with markup: GT{KEY} is translated,
// ACTION{text} and SUBTLE{text} are coloured.
func (r *Renderer) FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := r.regexpStringFunctions.FindAllStringSubmatch(ret, -1)
	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ACTION":
			val = r.colorActionShort.Sprint(operand[0:1]) + r.colorAction.Sprint(operand[1:])
		case "SUBTLE":
			val = r.colorSubtle.Sprint(operand)
		case "DENIED":
			val = r.colorDenied.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// RenderCell returns the string representation of an entity character
func (r *Renderer) RenderCell(c byte) string {
	raw := string(c)
	switch c {
	case world.Wall:
		return r.colorWall.Sprint(r.pick(IconWall, raw))
	case world.Empty:
		return r.colorFloor.Sprint(r.pick(IconFloor, raw))
	case generator.Spawn:
		return r.colorSpawn.Sprint(r.pick(IconSpawn, raw))
	case generator.Object:
		return r.colorObject.Sprint(r.pick(IconObject, raw))
	case generator.Exit:
		return r.colorExit.Sprint(r.pick(IconExit, raw))
	case generator.HorizontalDoor:
		return r.colorDoor.Sprint(r.pick(IconDoorH, raw))
	case generator.VerticalDoor:
		return r.colorDoor.Sprint(r.pick(IconDoorV, raw))
	case world.NoCell:
		return IconOutOfMap
	default:
		return r.colorDenied.Sprint(r.pick(IconUnknown, raw))
	}
}

func (r *Renderer) pick(icon, raw string) string {
	if r.icons {
		return icon
	}
	return raw
}

// RenderGrid renders the entity layer, one line per row. Cells on path are
// highlighted unless they hold a marker.
func (r *Renderer) RenderGrid(g *world.Grid, path []world.Pos) string {
	onPath := mapset.New[world.Pos]()
	for _, p := range path {
		onPath.Put(p)
	}

	var sb strings.Builder
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			p := world.Pos{Row: row, Col: col}
			c := g.GetEntityCell(p)
			if onPath.Has(p) && c == world.Empty {
				sb.WriteString(r.colorPath.Sprint(r.pick(IconPath, ".")))
				continue
			}
			sb.WriteString(r.RenderCell(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderLegend lists the symbols used by RenderGrid
func (r *Renderer) RenderLegend() string {
	entries := []struct {
		c   byte
		key string
	}{
		{world.Wall, "WALL"},
		{generator.Spawn, "SPAWN"},
		{generator.Object, "OBJECT"},
		{generator.Exit, "EXIT"},
		{generator.HorizontalDoor, "DOOR"},
		{generator.VerticalDoor, "DOOR"},
	}
	parts := make([]string, 0, len(entries)+1)
	for _, e := range entries {
		parts = append(parts, r.RenderCell(e.c)+" "+dynamicGet(e.key))
	}
	parts = append(parts, r.colorPath.Sprint(r.pick(IconPath, "."))+" "+dynamicGet("PATH"))
	return r.colorSubtle.Sprint(dynamicGet("LEGEND")+":") + " " + strings.Join(parts, "  ") + "\n"
}

// RenderSummary describes a generated level
func (r *Renderer) RenderSummary(lvl *generator.Level, seed int64) string {
	var sb strings.Builder
	sb.WriteString(r.FormatString("GT{GENERATOR}: ACTION{%s}  GT{SEED}: ACTION{%d}  GT{SIZE}: ACTION{%dx%d}\n",
		lvl.Generator, seed, lvl.Grid.Rows(), lvl.Grid.Cols()))
	sb.WriteString(r.FormatString("GT{ROOMS}: ACTION{%d}  GT{CONNECTIONS}: ACTION{%d}  GT{REGIONS}: ACTION{%d}\n",
		len(lvl.Rooms), len(lvl.Connections), max(int(lvl.NextID)-1, 0)))
	return sb.String()
}

// RenderPathLength describes an overlaid path
func (r *Renderer) RenderPathLength(path []world.Pos) string {
	if len(path) == 0 {
		return r.FormatString("GT{PATH_LENGTH}: DENIED{-}\n")
	}
	return r.FormatString("GT{PATH_LENGTH}: ACTION{%d}\n", len(path)-1)
}
