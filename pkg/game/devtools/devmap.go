package devtools

import (
	"strings"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

// DevMapName is the generator name reported for the developer map
const DevMapName = "devmap"

// devMapRows is a hand-drawn level that shows every entity character: three
// rooms joined by doors of both orientations, winding corridors with a loop,
// and one of each marker.
var devMapRows = []string{
	"*******************",
	"*     *     *     *",
	"* P   I   G I     *",
	"*     *     *     *",
	"***H*****H*** *****",
	"*   *   *   * *   *",
	"* * * * * * *   * *",
	"* *   *   *   *** *",
	"* *************  E*",
	"*                 *",
	"*******************",
}

// devMapVariations gives each of the three rooms its own letter
var devMapVariations = []string{
	"...................",
	".AAAAA.BBBBB.CCCCC.",
	".AAAAA.BBBBB.CCCCC.",
	".AAAAA.BBBBB.CCCCC.",
}

// DevMapText returns the entity layer of the developer map
func DevMapText() string {
	return strings.Join(devMapRows, "\n") + "\n"
}

// DevMap builds the hand-drawn developer map as a level
func DevMap() (*generator.Level, error) {
	grid, err := world.NewGridFromText(DevMapText(), strings.Join(devMapVariations, "\n"))
	if err != nil {
		return nil, err
	}
	return generator.LevelFromGrid(DevMapName, grid), nil
}
