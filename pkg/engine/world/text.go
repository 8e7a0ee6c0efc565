package world

import (
	"fmt"
	"strconv"
	"strings"
)

// NewGridFromText builds a grid from newline-separated rows. The grid is as
// tall as the entity text has rows and as wide as its longest row; short rows
// keep the default wall. variations may be empty and must fit inside the
// entity bounds.
func NewGridFromText(entity, variations string) (*Grid, error) {
	rows := splitRows(entity)
	if len(rows) == 0 {
		return nil, ErrEmptyText
	}
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return nil, ErrEmptyText
	}

	g := NewGrid(len(rows), width)
	for r, row := range rows {
		for c := 0; c < len(row); c++ {
			g.entity[g.Index(Pos{Row: r, Col: c})] = row[c]
		}
	}

	varRows := splitRows(variations)
	if len(varRows) > len(rows) {
		return nil, fmt.Errorf("variations has %d rows, entity has %d: %w", len(varRows), len(rows), ErrRaggedLayers)
	}
	for r, row := range varRows {
		if len(row) > width {
			return nil, fmt.Errorf("variations row %d is %d wide, entity is %d: %w", r, len(row), width, ErrRaggedLayers)
		}
		for c := 0; c < len(row); c++ {
			g.variations[g.Index(Pos{Row: r, Col: c})] = row[c]
		}
	}
	return g, nil
}

func splitRows(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Text returns the layer as rows of characters, each row ending in a newline
func (g *Grid) Text(l Layer) string {
	cells := g.layer(l)
	var sb strings.Builder
	sb.Grow(g.Area() + g.size.Height)
	for row := 0; row < g.size.Height; row++ {
		sb.Write(cells[row*g.size.Width : (row+1)*g.size.Width])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IdText renders the region-id layer one character per cell: '.' for 0,
// base-36 digits for 1-35 and '#' for anything larger
func (g *Grid) IdText() string {
	var sb strings.Builder
	sb.Grow(g.Area() + g.size.Height)
	for row := 0; row < g.size.Height; row++ {
		for col := 0; col < g.size.Width; col++ {
			id := g.ids[row*g.size.Width+col]
			switch {
			case id == 0:
				sb.WriteByte('.')
			case id < 36:
				sb.WriteString(strconv.FormatUint(uint64(id), 36))
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
