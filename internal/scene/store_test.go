package scene

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldofwater/waterworld/internal/curio"
)

var white = color.RGBA{255, 255, 255, 255}

func newTestSurface(s *Store) *Surface {
	return s.NewSurface("test", Vec{612, 600}, white)
}

func rect(w, h float64) Look {
	return Look{Shape: ShapeRect, Size: Vec{w, h}, Alpha: 1}
}

func TestAddAndRemoveSubtree(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	base := s.Count(surf)

	group := s.Add(surf, Node{}, Vec{100, 100}, Look{Alpha: 1})
	child := s.Add(surf, group, Vec{10, 0}, rect(5, 5))
	grandchild := s.Add(surf, child, Vec{1, 1}, rect(1, 1))
	other := s.Add(surf, Node{}, Vec{0, 0}, rect(5, 5))
	require.Equal(t, base+4, s.Count(surf))

	s.Remove(group)
	assert.False(t, s.Alive(group))
	assert.False(t, s.Alive(child))
	assert.False(t, s.Alive(grandchild))
	assert.True(t, s.Alive(other))
	assert.Equal(t, base+1, s.Count(surf))

	assert.NotPanics(t, func() { s.Remove(group) })
	assert.NotPanics(t, func() { s.Remove(Node{}) })
}

func TestWorldPositionThroughParents(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	page := s.Add(surf, Node{}, Vec{300, 200}, Look{Alpha: 1})
	s.SetScale(page, 0.5)
	title := s.Add(surf, page, Vec{-270, -220}, rect(10, 10))
	assert.Equal(t, Vec{165, 90}, s.WorldPosition(title))
}

func TestAnimateCompletesAndCallsDone(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	n := s.Add(surf, Node{}, Vec{0, 0}, rect(5, 5))
	s.SetAlpha(n, 0)

	var order []string
	s.MoveTo(n, Vec{100, 50}, 500*time.Millisecond, func() { order = append(order, "move") })
	s.FadeTo(n, 1, 200*time.Millisecond, func() { order = append(order, "fade") })
	require.Equal(t, 2, s.Animating())

	s.Advance(100 * time.Millisecond)
	assert.InDelta(t, 20, s.Position(n).X, 1e-9)
	assert.InDelta(t, 0.5, s.Alpha(n), 1e-9)

	s.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"fade"}, order)
	assert.Equal(t, 1.0, s.Alpha(n))

	s.Advance(time.Second)
	assert.Equal(t, []string{"fade", "move"}, order)
	assert.Equal(t, Vec{100, 50}, s.Position(n))
	assert.Equal(t, 0, s.Animating())
}

func TestAnimationOnRemovedNodeIsDropped(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	n := s.Add(surf, Node{}, Vec{0, 0}, rect(5, 5))
	called := false
	s.MoveTo(n, Vec{0, 600}, time.Second, func() { called = true })
	s.Remove(n)
	s.Advance(2 * time.Second)
	assert.False(t, called)
	assert.Equal(t, 0, s.Animating())
}

func TestCompletionMayStartNewAnimation(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	n := s.Add(surf, Node{}, Vec{0, 0}, rect(5, 5))
	second := false
	s.MoveTo(n, Vec{10, 0}, 100*time.Millisecond, func() {
		s.MoveTo(n, Vec{20, 0}, 100*time.Millisecond, func() { second = true })
	})
	s.Advance(100 * time.Millisecond)
	assert.Equal(t, 1, s.Animating())
	s.Advance(100 * time.Millisecond)
	assert.True(t, second)
}

func TestJoinFiresOnLastCall(t *testing.T) {
	n := 0
	done := Join(2, func() { n++ })
	done()
	assert.Equal(t, 0, n)
	done()
	assert.Equal(t, 1, n)
}

func TestHitTestOrderTopmostFirst(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	below := s.Add(surf, Node{}, Vec{100, 100}, rect(50, 50))
	s.SetTarget(below, curio.Region(curio.RegionEgypt))
	above := s.Add(surf, Node{}, Vec{110, 100}, Look{Shape: ShapeCircle, Radius: 20, Alpha: 1, Layer: LayerForeground})
	s.SetTarget(above, curio.Home())
	s.Add(surf, Node{}, Vec{100, 100}, rect(500, 500)) // not clickable

	hits := s.HitTest(surf, Vec{105, 100})
	assert.Equal(t, []curio.HitTarget{curio.Home(), curio.Region(curio.RegionEgypt)}, hits)
	assert.Equal(t, curio.Home(), s.FirstHit(surf, Vec{105, 100}))
	assert.Equal(t, curio.HitNone, s.FirstHit(surf, Vec{400, 400}).Kind)
}

func TestHitTestIgnoresOtherSurfaces(t *testing.T) {
	s := NewStore()
	a := newTestSurface(s)
	b := s.NewSurface("other", Vec{612, 600}, white)
	n := s.Add(b, Node{}, Vec{100, 100}, rect(50, 50))
	s.SetTarget(n, curio.Submit())
	assert.Empty(t, s.HitTest(a, Vec{100, 100}))
	assert.Len(t, s.HitTest(b, Vec{100, 100}), 1)
}

func TestCameraZoomAffectsHitTestButNotOverlay(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	marker := s.Add(surf, Node{}, Vec{340, 335}, Look{Shape: ShapeCircle, Radius: 10, Alpha: 0.6})
	s.SetTarget(marker, curio.Region(curio.RegionEgypt))

	cam := surf.Camera()
	s.SetPosition(cam, Vec{340, 335})
	s.SetScale(cam, 0.5)

	// The marker now sits at the view centre, drawn at twice its size.
	assert.Equal(t, curio.Region(curio.RegionEgypt), s.FirstHit(surf, surf.Center()))
	assert.Equal(t, curio.Region(curio.RegionEgypt), s.FirstHit(surf, surf.Center().Add(Vec{15, 0})))

	overlay := s.Add(surf, Node{}, Vec{50, 50}, Look{Shape: ShapeRect, Size: Vec{20, 20}, Alpha: 1, Layer: LayerOverlay})
	s.SetTarget(overlay, curio.Home())
	assert.Equal(t, curio.Home(), s.FirstHit(surf, Vec{50, 50}))
}

func TestDrawListOrderAndAlpha(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	fg := s.Add(surf, Node{}, Vec{1, 1}, Look{Shape: ShapeRect, Size: Vec{1, 1}, Alpha: 1, Layer: LayerForeground})
	bg := s.Add(surf, Node{}, Vec{2, 2}, rect(1, 1))
	hidden := s.Add(surf, Node{}, Vec{3, 3}, rect(1, 1))
	s.SetAlpha(hidden, 0)
	_ = fg
	_ = bg

	list := s.DrawList(surf)
	require.Len(t, list, 2)
	assert.Equal(t, LayerBackground, list[0].Layer)
	assert.Equal(t, LayerForeground, list[1].Layer)
}

func TestShowAndBlur(t *testing.T) {
	s := NewStore()
	surf := newTestSurface(s)
	assert.Nil(t, s.Visible())
	s.Show(surf)
	assert.Same(t, surf, s.Visible())
	s.SetBlur(surf, 20)
	assert.Equal(t, 20.0, s.Blur(surf))
	s.SetBlur(surf, 0)
	assert.Zero(t, s.Blur(surf))
}
