package world

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldofwater/waterworld/assets"
	"github.com/worldofwater/waterworld/internal/curio"
)

func embeddedGrid(t *testing.T) *TileGrid {
	t.Helper()
	layout, err := LoadHouseLayout(assets.Data, "houses/house.json")
	require.NoError(t, err)
	return layout.ToTileGrid()
}

func TestEmbeddedHouseFillsTheWindow(t *testing.T) {
	g := embeddedGrid(t)
	assert.Equal(t, 612, g.Width*g.Cell)
	assert.Equal(t, 600, g.Origin.Y+g.Height*g.Cell)
	require.Len(t, g.Rooms, 4)
}

func TestRoomsOpenTheirScreens(t *testing.T) {
	g := embeddedGrid(t)
	for _, s := range []curio.ScreenID{curio.ScreenShower, curio.ScreenMap, curio.ScreenResearch} {
		r, ok := g.RoomFor(s)
		require.True(t, ok, s.String())
		assert.False(t, r.Bounds.Empty(), s.String())

		cx, cy := g.RoomCenter(r)
		got, ok := g.RoomAt(cx, cy)
		require.True(t, ok, s.String())
		assert.Equal(t, r.Name, got.Name)
	}
	_, ok := g.RoomFor(curio.ScreenHouse)
	assert.False(t, ok)

	shower, _ := g.RoomFor(curio.ScreenShower)
	assert.Equal(t, image.Rect(2, 2, 17, 8), shower.Bounds)
}

func TestLivingRoomOpensNothing(t *testing.T) {
	g := embeddedGrid(t)
	x, y := g.CellCenter(5, 11)
	r, ok := g.RoomAt(x, y)
	require.True(t, ok)
	assert.Equal(t, "Living Room", r.Name)
	assert.False(t, r.Opens)
}

func TestCellAt(t *testing.T) {
	g := embeddedGrid(t)
	x, y := g.CellAt(0, 158)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y = g.CellAt(16.9, 174.9)
	assert.Equal(t, [2]int{0, 0}, [2]int{x, y})
	x, y = g.CellAt(17, 140)
	assert.Equal(t, [2]int{1, -2}, [2]int{x, y})
	assert.Equal(t, TileVoid, g.Get(x, y).Kind)
	_, ok := g.RoomAt(300, 50)
	assert.False(t, ok, "the overlay band is outside the house")
}

func TestStructuralTiles(t *testing.T) {
	g := embeddedGrid(t)
	assert.Equal(t, TileRoof, g.Get(3, 0).Kind)
	assert.Equal(t, TileWall, g.Get(1, 1).Kind)
	assert.Equal(t, TileDoor, g.Get(17, 4).Kind)
	assert.Equal(t, TileGrass, g.Get(0, 20).Kind)
	assert.Equal(t, TilePath, g.Get(9, 20).Kind)
	assert.Equal(t, "Wall", g.Describe(g.Get(1, 1)))
	assert.Equal(t, "Map Room", g.Describe(g.Get(20, 4)))
}

func TestParseHouseLayoutRejects(t *testing.T) {
	cases := map[string]string{
		"syntax":     `{`,
		"row count":  `{"width":2,"height":2,"cell":1,"tiles":["ss"]}`,
		"row width":  `{"width":2,"height":1,"cell":1,"tiles":["sss"]}`,
		"cell":       `{"width":1,"height":1,"cell":0,"tiles":["s"]}`,
		"long glyph": `{"width":1,"height":1,"cell":1,"tiles":["s"],"rooms":[{"glyph":"ss","name":"x"}]}`,
		"wall glyph": `{"width":1,"height":1,"cell":1,"tiles":["#"],"rooms":[{"glyph":"#","name":"x"}]}`,
		"dup glyph":  `{"width":1,"height":1,"cell":1,"tiles":["s"],"rooms":[{"glyph":"s","name":"a"},{"glyph":"s","name":"b"}]}`,
		"bad screen": `{"width":1,"height":1,"cell":1,"tiles":["s"],"rooms":[{"glyph":"s","name":"a","screen":"Attic"}]}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseHouseLayout([]byte(src))
			assert.Error(t, err)
		})
	}
}
