// Package scene is the renderer capability the screens talk to: surfaces,
// nodes, tweened animations, hit testing and background blur. Nodes are
// entities in an ark ECS world; drawing them is left to package render.
package scene

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"
	"github.com/worldofwater/waterworld/internal/curio"
)

// Node is a handle to a scene entity. The zero Node is "no node".
type Node struct {
	e ecs.Entity
}

// IsZero reports whether n refers to no node.
func (n Node) IsZero() bool { return n.e.IsZero() }

// Surface is a renderable region, one per screen. Surfaces live as long as
// the Store.
type Surface struct {
	Name       string
	Size       Vec
	Background color.RGBA

	id     int
	blur   float64
	camera Node
}

// Camera returns the surface's camera node.
func (s *Surface) Camera() Node { return s.camera }

// Center returns the middle of the surface.
func (s *Surface) Center() Vec { return s.Size.Mul(0.5) }

// Store owns the ECS world holding every node of every surface.
type Store struct {
	world *ecs.World

	nodes      *ecs.Map3[Transform, Look, Owner]
	transforms *ecs.Map[Transform]
	looks      *ecs.Map[Look]
	owners     *ecs.Map[Owner]
	parents    *ecs.Map[Parent]
	clicks     *ecs.Map[Clickable]

	drawable  *ecs.Filter3[Transform, Look, Owner]
	clickable *ecs.Filter2[Clickable, Owner]
	children  *ecs.Filter1[Parent]

	surfaces []*Surface
	visible  *Surface
	tweens   []*tween
	seq      uint64
}

// NewStore creates an empty store.
func NewStore() *Store {
	w := ecs.NewWorld(1024)
	return &Store{
		world:      w,
		nodes:      ecs.NewMap3[Transform, Look, Owner](w),
		transforms: ecs.NewMap[Transform](w),
		looks:      ecs.NewMap[Look](w),
		owners:     ecs.NewMap[Owner](w),
		parents:    ecs.NewMap[Parent](w),
		clicks:     ecs.NewMap[Clickable](w),
		drawable:   ecs.NewFilter3[Transform, Look, Owner](w),
		clickable:  ecs.NewFilter2[Clickable, Owner](w),
		children:   ecs.NewFilter1[Parent](w),
	}
}

// NewSurface creates a surface with its camera centred and unzoomed.
func (s *Store) NewSurface(name string, size Vec, bg color.RGBA) *Surface {
	surf := &Surface{Name: name, Size: size, Background: bg, id: len(s.surfaces)}
	s.surfaces = append(s.surfaces, surf)
	surf.camera = s.spawn(surf, Node{}, surf.Center(), Look{Shape: ShapeNone, Alpha: 1})
	return surf
}

// Show makes surf the sole visible surface.
func (s *Store) Show(surf *Surface) {
	s.visible = surf
}

// Visible returns the surface currently shown, or nil before the first Show.
func (s *Store) Visible() *Surface { return s.visible }

// Add places a node on surf at pos (relative to parent when parent is not
// zero) with the given look. Look.Alpha is the initial opacity.
func (s *Store) Add(surf *Surface, parent Node, pos Vec, look Look) Node {
	return s.spawn(surf, parent, pos, look)
}

func (s *Store) spawn(surf *Surface, parent Node, pos Vec, look Look) Node {
	s.seq++
	look.order = s.seq
	e := s.nodes.NewEntity(
		&Transform{Pos: pos, Scale: 1},
		&look,
		&Owner{Surface: surf.id},
	)
	if !parent.IsZero() {
		s.parents.Add(e, &Parent{Of: parent.e})
	}
	return Node{e}
}

// SetTarget makes n clickable with the given target.
func (s *Store) SetTarget(n Node, target curio.HitTarget) {
	if s.clicks.Has(n.e) {
		s.clicks.Get(n.e).Target = target
		return
	}
	s.clicks.Add(n.e, &Clickable{Target: target})
}

// Alive reports whether n still exists.
func (s *Store) Alive(n Node) bool {
	return !n.IsZero() && s.world.Alive(n.e)
}

// Remove deletes n and every node parented to it. Removing a dead node is
// a no-op.
func (s *Store) Remove(n Node) {
	if !s.Alive(n) {
		return
	}
	doomed := []ecs.Entity{n.e}
	for i := 0; i < len(doomed); i++ {
		doomed = append(doomed, s.childrenOf(doomed[i])...)
	}
	for _, e := range doomed {
		s.world.RemoveEntity(e)
	}
}

func (s *Store) childrenOf(e ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	q := s.children.Query()
	for q.Next() {
		if q.Get().Of == e {
			out = append(out, q.Entity())
		}
	}
	return out
}

// Position returns n's position relative to its parent.
func (s *Store) Position(n Node) Vec { return s.transforms.Get(n.e).Pos }

// SetPosition moves n immediately.
func (s *Store) SetPosition(n Node, p Vec) { s.transforms.Get(n.e).Pos = p }

// Scale returns n's own scale factor.
func (s *Store) Scale(n Node) float64 { return s.transforms.Get(n.e).Scale }

// SetScale rescales n immediately.
func (s *Store) SetScale(n Node, k float64) { s.transforms.Get(n.e).Scale = k }

// Alpha returns n's own opacity.
func (s *Store) Alpha(n Node) float64 { return s.looks.Get(n.e).Alpha }

// SetAlpha changes n's opacity immediately.
func (s *Store) SetAlpha(n Node, a float64) { s.looks.Get(n.e).Alpha = a }

// Text returns a label's text.
func (s *Store) Text(n Node) string { return s.looks.Get(n.e).Text }

// SetText replaces a label's text.
func (s *Store) SetText(n Node, text string) { s.looks.Get(n.e).Text = text }

// SetBlur sets the background filter radius of surf; zero clears it.
func (s *Store) SetBlur(surf *Surface, radius float64) { surf.blur = radius }

// Blur returns the background filter radius of surf.
func (s *Store) Blur(surf *Surface) float64 { return surf.blur }

// Count returns the number of live nodes on surf, camera included.
func (s *Store) Count(surf *Surface) int {
	n := 0
	q := s.drawable.Query()
	for q.Next() {
		_, _, o := q.Get()
		if o.Surface == surf.id {
			n++
		}
	}
	return n
}

// resolve walks the parent chain and returns n's surface-space position,
// accumulated scale and accumulated opacity.
func (s *Store) resolve(e ecs.Entity) (Vec, float64, float64) {
	tr := s.transforms.Get(e)
	lk := s.looks.Get(e)
	pos, scale, alpha := tr.Pos, tr.Scale, lk.Alpha
	for s.parents.Has(e) {
		e = s.parents.Get(e).Of
		if !s.world.Alive(e) {
			break
		}
		ptr := s.transforms.Get(e)
		pos = ptr.Pos.Add(pos.Mul(ptr.Scale))
		scale *= ptr.Scale
		alpha *= s.looks.Get(e).Alpha
	}
	return pos, scale, alpha
}

// WorldPosition returns n's position in surface space.
func (s *Store) WorldPosition(n Node) Vec {
	p, _, _ := s.resolve(n.e)
	return p
}

// ToWorld converts a view point on surf to surface space through its camera.
func (s *Store) ToWorld(surf *Surface, view Vec) Vec {
	cam := s.transforms.Get(surf.camera.e)
	return cam.Pos.Add(view.Sub(surf.Center()).Mul(cam.Scale))
}

// ToView converts a surface-space point on surf to a view point.
func (s *Store) ToView(surf *Surface, world Vec) Vec {
	cam := s.transforms.Get(surf.camera.e)
	return world.Sub(cam.Pos).Mul(1 / cam.Scale).Add(surf.Center())
}
