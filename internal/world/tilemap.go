// Package world holds the floor plan of the house on the entry screen: a
// tile grid whose floor tiles belong to named rooms, some of which open
// another screen.
package world

import (
	"image"
	"math"

	"github.com/worldofwater/waterworld/internal/curio"
)

// TileKind represents the structural type of a tile.
type TileKind uint8

const (
	TileVoid  TileKind = iota // sky around the house
	TileFloor                 // room floor; see Tile.Room
	TileWall
	TileDoor
	TileRoof
	TileGrass
	TilePath
)

// NoRoom is the Tile.Room of tiles outside every room.
const NoRoom = -1

// Tile represents a single map tile.
type Tile struct {
	Kind TileKind
	Room int // index into TileGrid.Rooms, or NoRoom
}

// Room is a named set of floor tiles.
type Room struct {
	Name   string
	Glyph  rune
	Screen curio.ScreenID // meaningful only when Opens
	Opens  bool
	Bounds image.Rectangle // in tiles, Max exclusive
}

func (r *Room) grow(x, y int) {
	cell := image.Rect(x, y, x+1, y+1)
	if r.Bounds.Empty() {
		r.Bounds = cell
		return
	}
	r.Bounds = r.Bounds.Union(cell)
}

// TileGrid is a 2D grid of tiles placed on screen at Origin, Cell pixels
// per tile.
type TileGrid struct {
	Width  int
	Height int
	Tiles  []Tile
	Rooms  []Room
	Cell   int
	Origin image.Point
}

// NewTileGrid creates an empty tile grid filled with void.
func NewTileGrid(w, h int) *TileGrid {
	g := &TileGrid{
		Width:  w,
		Height: h,
		Tiles:  make([]Tile, w*h),
		Cell:   1,
	}
	for i := range g.Tiles {
		g.Tiles[i].Room = NoRoom
	}
	return g
}

// Get returns the tile at (x, y). Out-of-bounds returns void.
func (g *TileGrid) Get(x, y int) Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return Tile{Kind: TileVoid, Room: NoRoom}
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t Tile) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		g.Tiles[y*g.Width+x] = t
	}
}

// CellAt returns the tile coordinates under pixel (px, py).
func (g *TileGrid) CellAt(px, py float64) (int, int) {
	x := math.Floor((px - float64(g.Origin.X)) / float64(g.Cell))
	y := math.Floor((py - float64(g.Origin.Y)) / float64(g.Cell))
	return int(x), int(y)
}

// CellCenter returns the pixel centre of tile (x, y).
func (g *TileGrid) CellCenter(x, y int) (float64, float64) {
	half := float64(g.Cell) / 2
	return float64(g.Origin.X+x*g.Cell) + half, float64(g.Origin.Y+y*g.Cell) + half
}

// RoomAt returns the room owning pixel (px, py).
func (g *TileGrid) RoomAt(px, py float64) (Room, bool) {
	t := g.Get(g.CellAt(px, py))
	if t.Room == NoRoom {
		return Room{}, false
	}
	return g.Rooms[t.Room], true
}

// RoomFor returns the room that opens screen s.
func (g *TileGrid) RoomFor(s curio.ScreenID) (Room, bool) {
	for _, r := range g.Rooms {
		if r.Opens && r.Screen == s {
			return r, true
		}
	}
	return Room{}, false
}

// RoomCenter returns the pixel centre of a room's bounding box.
func (g *TileGrid) RoomCenter(r Room) (float64, float64) {
	x := float64(g.Origin.X) + float64(r.Bounds.Min.X+r.Bounds.Max.X)*float64(g.Cell)/2
	y := float64(g.Origin.Y) + float64(r.Bounds.Min.Y+r.Bounds.Max.Y)*float64(g.Cell)/2
	return x, y
}

// Describe returns a human-readable description of a tile.
func (g *TileGrid) Describe(t Tile) string {
	if t.Room != NoRoom {
		return g.Rooms[t.Room].Name
	}
	return tileDescriptions[t.Kind]
}

var tileDescriptions = map[TileKind]string{
	TileVoid:  "Sky",
	TileFloor: "Floor",
	TileWall:  "Wall",
	TileDoor:  "Door",
	TileRoof:  "Roof",
	TileGrass: "Garden",
	TilePath:  "Garden path",
}
