// Package nav keeps track of which screen's surface is on display.
package nav

import (
	"errors"
	"fmt"
	"log"

	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/scene"
)

// ErrUnknownScreen is returned when activating a screen that was never
// registered.
var ErrUnknownScreen = errors.New("unknown screen")

// Shower is what the hub needs from the renderer.
type Shower interface {
	Show(surf *scene.Surface)
}

// Hub maps screens to their surfaces and swaps the visible one. One Hub is
// created at startup and handed to every screen controller.
type Hub struct {
	renderer  Shower
	surfaces  map[curio.ScreenID]*scene.Surface
	active    curio.ScreenID
	hasActive bool
	listeners []func(from, to curio.ScreenID)
}

// NewHub creates a hub that shows surfaces through r.
func NewHub(r Shower) *Hub {
	return &Hub{
		renderer: r,
		surfaces: make(map[curio.ScreenID]*scene.Surface),
	}
}

// Register binds id to surf. Registering again replaces the binding.
func (h *Hub) Register(id curio.ScreenID, surf *scene.Surface) {
	h.surfaces[id] = surf
}

// Surface returns the surface registered for id.
func (h *Hub) Surface(id curio.ScreenID) (*scene.Surface, bool) {
	surf, ok := h.surfaces[id]
	return surf, ok
}

// OnActivate adds a listener called after every successful Activate with
// the previously active screen (equal to to on the first activation).
func (h *Hub) OnActivate(fn func(from, to curio.ScreenID)) {
	h.listeners = append(h.listeners, fn)
}

// Activate makes id's surface the only visible one.
func (h *Hub) Activate(id curio.ScreenID) error {
	surf, ok := h.surfaces[id]
	if !ok {
		return fmt.Errorf("activate %s: %w", id, ErrUnknownScreen)
	}
	from := id
	if h.hasActive {
		from = h.active
	}
	h.renderer.Show(surf)
	h.active = id
	h.hasActive = true
	log.Printf("[nav] %s -> %s", from, id)
	for _, fn := range h.listeners {
		fn(from, id)
	}
	return nil
}

// MustActivate is Activate for callers that only ever pass registered
// screens; a failure is a programming error.
func (h *Hub) MustActivate(id curio.ScreenID) {
	if err := h.Activate(id); err != nil {
		panic(err)
	}
}

// Active returns the screen on display, if any.
func (h *Hub) Active() (curio.ScreenID, bool) {
	return h.active, h.hasActive
}

// IsActive reports whether id is the screen on display.
func (h *Hub) IsActive(id curio.ScreenID) bool {
	return h.hasActive && h.active == id
}
