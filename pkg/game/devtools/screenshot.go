package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
)

const screenshotHeader = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>mazegen - %s</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
            white-space: pre;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .wall { color: #666; }
        .floor { color: #888; }
        .spawn { color: #00ff00; font-weight: bold; }
        .object { color: #bb86fc; font-weight: bold; }
        .exit { color: #00aa00; }
        .door { color: #ffff00; font-weight: bold; }
        .path { color: #00ffff; font-weight: bold; }
        .unknown { color: #ff4444; }
        .legend { margin-top: 20px; color: #888; }
    </style>
</head>
<body>
`

const screenshotFooter = `</body>
</html>
`

// RenderHTML renders a level as a standalone HTML page. summary is plain or
// ANSI-coloured text shown above the map; colour codes are removed.
func RenderHTML(lvl *generator.Level, path []world.Pos, summary string) (string, error) {
	if lvl == nil || lvl.Grid == nil {
		return "", ErrNoGrid
	}
	onPath := mapset.New[world.Pos]()
	for _, p := range path {
		onPath.Put(p)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(screenshotHeader, html.EscapeString(lvl.Generator)))

	if summary != "" {
		sb.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(strings.TrimRight(color.ClearCode(summary), "\n"))))
	}

	sb.WriteString(`    <div class="map-container">` + "\n")
	g := lvl.Grid
	for row := 0; row < g.Rows(); row++ {
		sb.WriteString(`        <div class="map-row">`)
		for col := 0; col < g.Cols(); col++ {
			p := world.Pos{Row: row, Col: col}
			icon, class := cellHTMLInfo(g.GetEntityCell(p), onPath.Has(p))
			sb.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString(`    </div>` + "\n")

	sb.WriteString(`    <div class="legend">`)
	sb.WriteString(fmt.Sprintf(`<span class="wall">%s</span> wall `, renderer.IconWall))
	sb.WriteString(fmt.Sprintf(`<span class="spawn">%s</span> spawn `, renderer.IconSpawn))
	sb.WriteString(fmt.Sprintf(`<span class="object">%s</span> object `, renderer.IconObject))
	sb.WriteString(fmt.Sprintf(`<span class="exit">%s</span> exit `, renderer.IconExit))
	sb.WriteString(fmt.Sprintf(`<span class="door">%s%s</span> door `, renderer.IconDoorH, renderer.IconDoorV))
	sb.WriteString(fmt.Sprintf(`<span class="path">%s</span> path`, renderer.IconPath))
	sb.WriteString(`</div>` + "\n")

	sb.WriteString(screenshotFooter)
	return sb.String(), nil
}

// cellHTMLInfo returns the icon and CSS class for an entity character
func cellHTMLInfo(c byte, onPath bool) (string, string) {
	switch c {
	case world.Wall:
		return renderer.IconWall, "wall"
	case world.Empty:
		if onPath {
			return renderer.IconPath, "path"
		}
		return "&nbsp;", "floor"
	case generator.Spawn:
		return renderer.IconSpawn, "spawn"
	case generator.Object:
		return renderer.IconObject, "object"
	case generator.Exit:
		return renderer.IconExit, "exit"
	case generator.HorizontalDoor:
		return renderer.IconDoorH, "door"
	case generator.VerticalDoor:
		return renderer.IconDoorV, "door"
	default:
		return html.EscapeString(string(rune(c))), "unknown"
	}
}

// SaveScreenshotHTML writes RenderHTML output to filename, or to a
// timestamped file in the working directory when filename is empty
func SaveScreenshotHTML(filename string, lvl *generator.Level, path []world.Pos, summary string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	}
	page, err := RenderHTML(lvl, path, summary)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(page), 0644); err != nil {
		return "", err
	}
	return filename, nil
}
