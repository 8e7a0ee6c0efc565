package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/color"

	"mazegen/locales"
	"mazegen/pkg/engine/floodfill"
	"mazegen/pkg/engine/terminal"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/devtools"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
)

const (
	logDir      = "logs"
	logFileName = "mazegen.log"
)

// Path overlay modes
const (
	pathNone     = "none"
	pathShortest = "shortest"
	pathRandom   = "random"
)

// Colour modes
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var (
	errBadColorMode = errors.New("unknown colour mode")
	errBadPathMode  = errors.New("unknown path mode")
)

// options holds everything the command line can set
type options struct {
	seed      int64
	level     int
	cfg       generator.Config
	generator string
	in        string
	devmap    bool
	rotate    int
	path      string
	dump      string
	html      string
	color     string
	icons     bool
	lang      string
	debug     bool
}

// parseFlags reads options from args. Size and room flags left at zero keep
// the values ConfigForLevel picks for the level.
func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)

	fs.Int64Var(&o.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.IntVar(&o.level, "level", 0, "level number; scales the grid and room count")
	height := fs.Int("height", 0, "grid height (odd, overrides -level)")
	width := fs.Int("width", 0, "grid width (odd, overrides -level)")
	rooms := fs.Int("rooms", -1, "maximum number of rooms (overrides -level)")
	roomMin := fs.Int("room-min", 0, "smallest room side (odd, at least 3)")
	roomMax := fs.Int("room-max", 0, "largest room side (odd)")
	retries := fs.Int("retries", -1, "room placement attempts")
	density := fs.Float64("density", -1, "fraction of the grid rooms may cover (0 for no limit)")
	extra := fs.Float64("extra", -1, "probability of each extra connector between regions")
	doors := fs.Bool("doors", true, "mark connectors with door characters")
	simplify := fs.Bool("simplify", true, "remove dead ends and horseshoe bends")
	spawns := fs.Int("spawns", -1, "spawn points per room")
	objects := fs.Int("objects", -1, "objects per room")

	fs.StringVar(&o.generator, "generator", generator.DefaultGenerator.Name(), "room placement: random or bsp")
	fs.StringVar(&o.in, "in", "", "load a text maze instead of generating one")
	fs.BoolVar(&o.devmap, "devmap", false, "show the built-in developer map")
	fs.IntVar(&o.rotate, "rotate", 0, "rotate the maze clockwise this many quarter turns")
	fs.StringVar(&o.path, "path", pathNone, "overlay a spawn to exit path: none, shortest or random")
	fs.StringVar(&o.dump, "dump", "", "write a debug map dump to this file")
	fs.StringVar(&o.html, "html", "", "write an HTML rendering to this file")
	fs.StringVar(&o.color, "color", colorAuto, "colour output: auto, always or never")
	fs.BoolVar(&o.icons, "icons", false, "draw cells with Unicode glyphs")
	fs.StringVar(&o.lang, "lang", locales.DefaultLanguage, "label language")
	fs.BoolVar(&o.debug, "debug", false, "write a debug log to "+filepath.Join(logDir, logFileName))

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.cfg = generator.ConfigForLevel(o.level)
	if *height > 0 {
		o.cfg.Height = *height
	}
	if *width > 0 {
		o.cfg.Width = *width
	}
	if *rooms >= 0 {
		o.cfg.MaxRooms = *rooms
	}
	if *roomMin > 0 {
		o.cfg.RoomMinSize = *roomMin
	}
	if *roomMax > 0 {
		o.cfg.RoomMaxSize = *roomMax
	}
	if *retries >= 0 {
		o.cfg.RetryCount = *retries
	}
	if *density >= 0 {
		o.cfg.Density = *density
	}
	if *extra >= 0 {
		o.cfg.ExtraConnectionProbability = *extra
	}
	if *spawns >= 0 {
		o.cfg.SpawnCount = *spawns
	}
	if *objects >= 0 {
		o.cfg.ObjectCount = *objects
	}
	o.cfg.HasDoors = *doors
	o.cfg.Simplify = *simplify

	switch o.color {
	case colorAuto, colorAlways, colorNever:
	default:
		return o, fmt.Errorf("%q: %w", o.color, errBadColorMode)
	}
	switch o.path {
	case pathNone, pathShortest, pathRandom:
	default:
		return o, fmt.Errorf("%q: %w", o.path, errBadPathMode)
	}
	if o.seed == 0 {
		o.seed = time.Now().UnixNano()
	}
	return o, nil
}

// setupLogging sends the standard logger to a file under logDir when debug is
// set and discards it otherwise. The returned file is nil when not logging.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}

// applyColorMode switches gookit/color on or off for out
func applyColorMode(mode string, out *os.File) {
	switch mode {
	case colorAlways:
		color.ForceColor()
	case colorNever:
		color.Disable()
	default:
		if !terminal.IsTerminal(out) {
			color.Disable()
		}
	}
}

// buildLevel generates, loads or picks the developer map
func buildLevel(o options, rng *rand.Rand) (*generator.Level, string, error) {
	switch {
	case o.devmap:
		lvl, err := devtools.DevMap()
		return lvl, "", err
	case o.in != "":
		data, err := os.ReadFile(o.in)
		if err != nil {
			return nil, "", err
		}
		grid, err := world.NewGridFromText(string(data), "")
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", o.in, err)
		}
		return generator.LevelFromGrid("text", grid), o.in, nil
	default:
		gen, err := generator.Lookup(o.generator)
		if err != nil {
			return nil, "", err
		}
		lvl, err := gen.Generate(o.cfg, rng)
		return lvl, "", err
	}
}

// rotateLevel turns the whole level. Rectangles, connectors and region ids
// do not survive, so the level is described again from the rotated grid.
func rotateLevel(lvl *generator.Level, n int) *generator.Level {
	if n%4 == 0 {
		return lvl
	}
	return generator.LevelFromGrid(lvl.Generator, lvl.Grid.Rotate(n))
}

// findPath joins the first spawn to the exit
func findPath(mode string, lvl *generator.Level, rng *rand.Rand) []world.Pos {
	if mode == pathNone || len(lvl.Spawns) == 0 || !lvl.HasExit {
		return nil
	}
	from := lvl.Spawns[0]
	if mode == pathRandom {
		return generator.FindRandomPath(from, lvl.Exit, generator.Walls, lvl.Grid, rng)
	}
	fill, err := floodfill.New(lvl.Grid, world.EntityLayer, lvl.Exit, generator.Walls)
	if err != nil {
		log.Printf("path: %v", err)
		return nil
	}
	return fill.ShortestPathFrom(from, rng)
}

// run does everything main does apart from exiting, writing the maze to out
func run(o options, out io.Writer) error {
	if o.lang != "" {
		po, err := locales.Load(o.lang)
		if err != nil {
			return err
		}
		renderer.SetTranslator(po)
	}

	rng := rand.New(rand.NewSource(o.seed))
	log.Printf("seed=%d generator=%s level=%d size=%dx%d", o.seed, o.generator, o.level, o.cfg.Height, o.cfg.Width)

	lvl, source, err := buildLevel(o, rng)
	if err != nil {
		return err
	}
	lvl = rotateLevel(lvl, o.rotate)
	log.Printf("level built: rooms=%d connections=%d spawns=%d objects=%d next_id=%d",
		len(lvl.Rooms), len(lvl.Connections), len(lvl.Spawns), len(lvl.Objects), lvl.NextID)
	if problem := lvl.Validate(); problem != "" {
		log.Printf("validation: %s", problem)
	}

	path := findPath(o.path, lvl, rng)
	if o.path != pathNone {
		log.Printf("path mode=%s length=%d", o.path, len(path))
	}

	r := renderer.New(o.icons)
	summary := r.RenderSummary(lvl, o.seed)
	if source != "" {
		summary = r.FormatString("GT{LOADED_FROM}: SUBTLE{%s}\n", filepath.Base(source)) + summary
	}

	fmt.Fprint(out, summary)
	if o.path != pathNone {
		fmt.Fprint(out, r.RenderPathLength(path))
	}
	fmt.Fprint(out, r.RenderGrid(lvl.Grid, path))
	fmt.Fprint(out, r.RenderLegend())

	meta := devtools.Metadata{Level: o.level, Seed: o.seed, Source: source}
	if o.dump != "" {
		written, err := devtools.DumpMapToFile(o.dump, lvl, meta)
		if err != nil {
			return err
		}
		log.Printf("map dump written to %s", written)
	}
	if o.html != "" {
		written, err := devtools.SaveScreenshotHTML(o.html, lvl, path, summary)
		if err != nil {
			return err
		}
		log.Printf("html written to %s", written)
	}
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if logFile := setupLogging(o.debug); logFile != nil {
		defer logFile.Close()
	}
	applyColorMode(o.color, os.Stdout)

	if !terminal.Fits(o.cfg.Width) {
		log.Printf("maze is %d wide, terminal is %d", o.cfg.Width, terminal.GetWidth())
	}

	if err := run(o, os.Stdout); err != nil {
		log.Printf("error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
