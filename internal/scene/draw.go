package scene

import (
	"sort"

	"github.com/mlange-42/ark/ecs"
)

// Drawable is one node resolved into view space, ready for a drawer.
type Drawable struct {
	Look
	Pos   Vec     // view-space anchor
	Scale float64 // includes the camera zoom unless on LayerOverlay
	Alpha float64 // accumulated through parents
}

// DrawList returns the visible nodes of surf in paint order: background,
// foreground, overlay, each in creation order.
func (s *Store) DrawList(surf *Surface) []Drawable {
	var entities []ecs.Entity
	q := s.drawable.Query()
	for q.Next() {
		_, lk, o := q.Get()
		if o.Surface != surf.id || lk.Shape == ShapeNone {
			continue
		}
		entities = append(entities, q.Entity())
	}

	cam := s.transforms.Get(surf.camera.e)
	out := make([]Drawable, 0, len(entities))
	for _, e := range entities {
		lk := *s.looks.Get(e)
		pos, scale, alpha := s.resolve(e)
		if alpha <= 0 {
			continue
		}
		if lk.Layer != LayerOverlay {
			pos = s.ToView(surf, pos)
			scale /= cam.Scale
		}
		out = append(out, Drawable{Look: lk, Pos: pos, Scale: scale, Alpha: alpha})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		return out[i].order < out[j].order
	})
	return out
}
