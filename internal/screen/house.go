package screen

import (
	"log"

	"github.com/worldofwater/waterworld/internal/config"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/scene"
	"github.com/worldofwater/waterworld/internal/world"
)

// House is the entry screen: the floor plan with an overlay of copy.
// Clicking a room that opens a screen sweeps a cover over the viewport and
// then switches to that screen.
type House struct {
	base
	grid     *world.TileGrid
	sweeping bool
}

// NewHouse builds the house surface from grid and registers it with the
// hub.
func NewHouse(d Deps, grid *world.TileGrid) *House {
	h := &House{
		base: newBase(d, curio.ScreenHouse, scene.Palette[scene.ColorHouseSky]),
		grid: grid,
	}
	h.build()
	return h
}

func (h *House) build() {
	cell := float64(h.grid.Cell)
	for y := 0; y < h.grid.Height; y++ {
		for x := 0; x < h.grid.Width; x++ {
			t := h.grid.Get(x, y)
			if t.Kind == world.TileVoid {
				continue
			}
			cx, cy := h.grid.CellCenter(x, y)
			n := h.Store.Add(h.surf, scene.Node{}, scene.Vec{X: cx, Y: cy}, scene.Look{
				Shape: scene.ShapeRect,
				Layer: scene.LayerBackground,
				Color: scene.Palette[tileColor(t.Kind)],
				Size:  scene.Vec{X: cell, Y: cell},
				Alpha: 1,
			})
			if t.Room == world.NoRoom {
				continue
			}
			if room := h.grid.Rooms[t.Room]; room.Opens {
				h.Store.SetTarget(n, curio.Room(room.Screen))
			}
		}
	}

	roomStyle := textStyle{size: 26, bold: true, color: scene.Palette[scene.ColorWhite], layer: scene.LayerForeground}
	for _, room := range h.grid.Rooms {
		if !room.Opens {
			continue
		}
		x, y := h.grid.RoomCenter(room)
		h.text(scene.Node{}, scene.Vec{X: x, Y: y}, room.Name, roomStyle)
	}

	page := h.Content.House()
	overlay := scene.LayerOverlay
	h.Store.Add(h.surf, scene.Node{}, scene.Vec{X: 306, Y: 70}, scene.Look{
		Shape: scene.ShapeRect,
		Layer: overlay,
		Color: scene.Palette[scene.ColorWhite],
		Size:  scene.Vec{X: h.surf.Size.X, Y: 150},
		Alpha: 0.7,
	})
	black := scene.Palette[scene.ColorBlack]
	title := h.text(scene.Node{}, scene.Vec{X: 306, Y: 50}, page.Title,
		textStyle{size: 48, bold: true, color: black, layer: overlay})
	h.text(scene.Node{}, scene.Vec{X: 306, Y: 100}, page.Subtitle,
		textStyle{size: 26, color: black, layer: overlay})
	h.titles = append(h.titles, title)
}

func tileColor(k world.TileKind) int {
	switch k {
	case world.TileWall:
		return scene.ColorWall
	case world.TileRoof:
		return scene.ColorRoof
	case world.TileDoor:
		return scene.ColorDoor
	case world.TileGrass:
		return scene.ColorGrass
	case world.TilePath:
		return scene.ColorPath
	default:
		return scene.ColorFloor
	}
}

// HandleClick starts the cover sweep towards the first room under p that
// opens a screen. Clicks during a sweep are dropped.
func (h *House) HandleClick(p scene.Vec) {
	if h.sweeping {
		return
	}
	for _, t := range h.Store.HitTest(h.surf, p) {
		if t.Kind == curio.HitRoom {
			h.sweep(t.Screen)
			return
		}
	}
}

func (h *House) sweep(to curio.ScreenID) {
	h.sweeping = true
	log.Printf("[house] sweep to %s", to)
	size := h.surf.Size
	cover := h.Store.Add(h.surf, scene.Node{}, scene.Vec{X: size.X, Y: size.Y}, scene.Look{
		Shape: scene.ShapeRect,
		Layer: scene.LayerOverlay,
		Color: scene.Palette[scene.ColorCover],
		Size:  scene.Vec{X: 2 * size.X, Y: size.Y},
		Alpha: 1,
	})
	h.Store.MoveTo(cover, scene.Vec{X: size.X, Y: size.Y / 2}, config.Seconds(h.Config.Transition.CoverSweep), func() {
		h.Store.Remove(cover)
		h.sweeping = false
		h.Hub.MustActivate(to)
	})
}

// Sweeping reports whether a transition is under way.
func (h *House) Sweeping() bool { return h.sweeping }

// Describe names whatever lies under view point p: a room, or the bare tile.
func (h *House) Describe(p scene.Vec) string {
	w := h.Store.ToWorld(h.surf, p)
	return h.grid.Describe(h.grid.Get(h.grid.CellAt(w.X, w.Y)))
}
