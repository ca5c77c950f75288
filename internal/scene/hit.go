package scene

import (
	"math"
	"sort"

	"github.com/mlange-42/ark/ecs"
	"github.com/worldofwater/waterworld/internal/curio"
)

// labelAdvance approximates a glyph's width as a fraction of the font size.
const labelAdvance = 0.5

type hitCandidate struct {
	target curio.HitTarget
	layer  Layer
	order  uint64
}

// HitTest returns the targets of every clickable node on surf under the
// view point p, topmost first.
func (s *Store) HitTest(surf *Surface, p Vec) []curio.HitTarget {
	var entities []ecs.Entity
	var targets []curio.HitTarget
	q := s.clickable.Query()
	for q.Next() {
		c, o := q.Get()
		if o.Surface != surf.id {
			continue
		}
		entities = append(entities, q.Entity())
		targets = append(targets, c.Target)
	}

	worldPt := s.ToWorld(surf, p)
	var hits []hitCandidate
	for i, e := range entities {
		lk := s.looks.Get(e)
		pt := worldPt
		if lk.Layer == LayerOverlay {
			pt = p
		}
		pos, scale, _ := s.resolve(e)
		if contains(lk, pos, scale, pt) {
			hits = append(hits, hitCandidate{target: targets[i], layer: lk.Layer, order: lk.order})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].layer != hits[j].layer {
			return hits[i].layer > hits[j].layer
		}
		return hits[i].order > hits[j].order
	})
	out := make([]curio.HitTarget, len(hits))
	for i, h := range hits {
		out[i] = h.target
	}
	return out
}

// FirstHit returns the topmost target under p, or a HitNone target.
func (s *Store) FirstHit(surf *Surface, p Vec) curio.HitTarget {
	if hits := s.HitTest(surf, p); len(hits) > 0 {
		return hits[0]
	}
	return curio.HitTarget{}
}

func contains(lk *Look, pos Vec, scale float64, p Vec) bool {
	d := p.Sub(pos)
	switch lk.Shape {
	case ShapeRect, ShapeImage:
		return math.Abs(d.X) <= lk.Size.X*scale/2 && math.Abs(d.Y) <= lk.Size.Y*scale/2
	case ShapeCircle:
		r := lk.Radius * scale
		return d.X*d.X+d.Y*d.Y <= r*r
	case ShapeLabel:
		w := float64(len(lk.Text)) * lk.FontSize * labelAdvance * scale
		h := lk.FontSize * scale
		if lk.Align == AlignLeft {
			return d.X >= 0 && d.X <= w && math.Abs(d.Y) <= h/2
		}
		return math.Abs(d.X) <= w/2 && math.Abs(d.Y) <= h/2
	default:
		return false
	}
}
