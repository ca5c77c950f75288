package world

import (
	"encoding/json"
	"fmt"
	"image"
	"io/fs"
	"unicode/utf8"

	"github.com/worldofwater/waterworld/internal/curio"
)

// HouseLayout is the JSON-serializable floor plan of the entry screen.
type HouseLayout struct {
	Name   string    `json:"name"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cell   int       `json:"cell"`   // pixels per tile side
	Origin [2]int    `json:"origin"` // pixel position of tile (0,0)'s corner
	Rooms  []RoomDef `json:"rooms"`
	Tiles  []string  `json:"tiles"`
}

// RoomDef binds a floor glyph to a named room. Screen is empty for rooms
// that open nothing.
type RoomDef struct {
	Glyph  string `json:"glyph"`
	Name   string `json:"name"`
	Screen string `json:"screen"`
}

// LoadHouseLayout reads a layout file from fsys.
func LoadHouseLayout(fsys fs.FS, name string) (*HouseLayout, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read house layout: %w", err)
	}
	return ParseHouseLayout(data)
}

// ParseHouseLayout parses a HouseLayout from JSON bytes.
func ParseHouseLayout(data []byte) (*HouseLayout, error) {
	var layout HouseLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("parse house layout: %w", err)
	}
	if len(layout.Tiles) != layout.Height {
		return nil, fmt.Errorf("tile rows (%d) != declared height (%d)", len(layout.Tiles), layout.Height)
	}
	for y, row := range layout.Tiles {
		if n := utf8.RuneCountInString(row); n != layout.Width {
			return nil, fmt.Errorf("tile row %d has %d columns, want %d", y, n, layout.Width)
		}
	}
	if layout.Cell <= 0 {
		return nil, fmt.Errorf("cell size %d", layout.Cell)
	}
	seen := make(map[rune]bool)
	for _, r := range layout.Rooms {
		if utf8.RuneCountInString(r.Glyph) != 1 {
			return nil, fmt.Errorf("room %q: glyph %q is not one character", r.Name, r.Glyph)
		}
		g, _ := utf8.DecodeRuneInString(r.Glyph)
		if structural(g) != TileVoid {
			return nil, fmt.Errorf("room %q: glyph %q is reserved", r.Name, r.Glyph)
		}
		if seen[g] {
			return nil, fmt.Errorf("room %q: glyph %q reused", r.Name, r.Glyph)
		}
		seen[g] = true
		if r.Screen == "" {
			continue
		}
		if _, ok := curio.ScreenByName(r.Screen); !ok {
			return nil, fmt.Errorf("room %q: unknown screen %q", r.Name, r.Screen)
		}
	}
	return &layout, nil
}

// ToTileGrid converts a HouseLayout into a TileGrid with its rooms resolved.
func (l *HouseLayout) ToTileGrid() *TileGrid {
	grid := NewTileGrid(l.Width, l.Height)
	grid.Cell = l.Cell
	grid.Origin = image.Pt(l.Origin[0], l.Origin[1])

	byGlyph := make(map[rune]int, len(l.Rooms))
	for i, def := range l.Rooms {
		g, _ := utf8.DecodeRuneInString(def.Glyph)
		room := Room{Name: def.Name, Glyph: g}
		if id, ok := curio.ScreenByName(def.Screen); ok {
			room.Screen, room.Opens = id, true
		}
		grid.Rooms = append(grid.Rooms, room)
		byGlyph[g] = i
	}

	for y, row := range l.Tiles {
		x := 0
		for _, ch := range row {
			if i, ok := byGlyph[ch]; ok {
				grid.Set(x, y, Tile{Kind: TileFloor, Room: i})
				grid.Rooms[i].grow(x, y)
			} else {
				grid.Set(x, y, Tile{Kind: structural(ch), Room: NoRoom})
			}
			x++
		}
	}
	return grid
}

func structural(ch rune) TileKind {
	switch ch {
	case '#':
		return TileWall
	case '+':
		return TileDoor
	case '^':
		return TileRoof
	case 'g':
		return TileGrass
	case '=':
		return TilePath
	default:
		return TileVoid
	}
}
