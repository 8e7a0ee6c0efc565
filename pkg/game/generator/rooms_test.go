package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/world"
)

// lines joins rows the way Grid.Text renders them
func lines(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func gridFromText(t *testing.T, text string) *world.Grid {
	t.Helper()
	g, err := world.NewGridFromText(text, "")
	require.NoError(t, err)
	return g
}

func TestFindRooms_AllWall(t *testing.T) {
	g := world.NewGrid(5, 5)
	assert.Empty(t, FindRooms(g, Walls))
}

func TestFindRooms_SingleMarkerIsNotARoom(t *testing.T) {
	g := world.NewGrid(4, 3)
	g.SetEntityCell(world.Pos{Row: 1, Col: 1}, 'P')
	assert.Empty(t, FindRooms(g, world.NewCharSet("*")))
}

func TestFindRooms_SnakingCorridor(t *testing.T) {
	g := gridFromText(t, lines(
		"*******",
		"* *   *",
		"* * * *",
		"*   * *",
		"*******",
	))
	assert.Empty(t, FindRooms(g, Walls))
}

func TestFindRooms_EnclosedInterior(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		cells int
	}{
		{"2x2", lines("****", "*  *", "*  *", "****"), 4},
		{"3x4", lines("******", "*    *", "*    *", "*    *", "******"), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rooms := FindRooms(gridFromText(t, tt.text), Walls)
			require.Len(t, rooms, 1)
			assert.Len(t, rooms[0], tt.cells)
		})
	}
}

func TestFindRooms_ExcludesCorridor(t *testing.T) {
	g := gridFromText(t, lines(
		"********",
		"*  *****",
		"*      *",
		"*  *****",
		"********",
	))
	rooms := FindRooms(g, Walls)
	require.Len(t, rooms, 1)
	want := []world.Pos{
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2},
		{Row: 3, Col: 1}, {Row: 3, Col: 2},
	}
	assert.ElementsMatch(t, want, rooms[0])
}

func TestFindRooms_RowMajorOrder(t *testing.T) {
	g := gridFromText(t, lines(
		"**********",
		"*****   **",
		"*****   **",
		"*  ******",
		"*  ******",
		"**********",
	))
	rooms := FindRooms(g, Walls)
	require.Len(t, rooms, 2)
	assert.Equal(t, world.Pos{Row: 1, Col: 5}, rooms[0][0])
	assert.Len(t, rooms[0], 6)
	assert.Equal(t, world.Pos{Row: 3, Col: 1}, rooms[1][0])
	assert.Len(t, rooms[1], 4)
}

func TestFindRooms_DoorsSplitRooms(t *testing.T) {
	// A door between two rooms is open but belongs to neither
	g := gridFromText(t, lines(
		"*********",
		"*   *   *",
		"*   I   *",
		"*   *   *",
		"*********",
	))
	rooms := FindRooms(g, Walls)
	require.Len(t, rooms, 2)
	for _, room := range rooms {
		assert.Len(t, room, 9)
		assert.NotContains(t, room, world.Pos{Row: 2, Col: 4})
	}
}

func TestIsRoomCell(t *testing.T) {
	tests := []struct {
		name string
		adj  int
		want bool
	}{
		{"isolated", 0, false},
		{"straight corridor", adjE | adjW, false},
		{"corner without diagonal", adjS | adjE, false},
		{"corner of a block", adjS | adjE | adjSE, true},
		{"diagonal pass-through", adjN | adjE | adjSW, false},
		{"surrounded", 0xff, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRoomCell(tt.adj))
		})
	}
}
