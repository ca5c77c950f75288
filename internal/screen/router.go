package screen

import (
	"time"

	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/scene"
)

// Router sends input to the controller of the visible surface and runs the
// Exit/Enter lifecycle on every surface swap.
type Router struct {
	deps    Deps
	screens map[curio.ScreenID]Screen
}

// NewRouter hooks screens into d.Hub.
func NewRouter(d Deps, screens ...Screen) *Router {
	r := &Router{deps: d, screens: make(map[curio.ScreenID]Screen, len(screens))}
	for _, s := range screens {
		r.screens[s.ID()] = s
	}
	d.Hub.OnActivate(r.switched)
	return r
}

func (r *Router) switched(from, to curio.ScreenID) {
	if from != to {
		if s, ok := r.screens[from]; ok {
			s.Exit()
		}
	}
	if s, ok := r.screens[to]; ok {
		s.Enter()
	}
}

// Screen returns the controller registered for id.
func (r *Router) Screen(id curio.ScreenID) (Screen, bool) {
	s, ok := r.screens[id]
	return s, ok
}

// Click delivers a view-space click to the active controller.
func (r *Router) Click(p scene.Vec) {
	id, ok := r.deps.Hub.Active()
	if !ok {
		return
	}
	if s, ok := r.screens[id]; ok {
		s.HandleClick(p)
	}
}

// Advance moves timers, then animations, forward by one step. Completion
// callbacks run at the end of the step.
func (r *Router) Advance(dt time.Duration) {
	r.deps.Clock.Advance(dt)
	r.deps.Store.Advance(dt)
}
