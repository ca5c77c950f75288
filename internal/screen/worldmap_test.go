package screen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/scene"
)

var (
	egypt   = scene.Vec{X: 340, Y: 335}
	chile   = scene.Vec{X: 170, Y: 445}
	nowhere = scene.Vec{X: 580, Y: 580}
)

func TestMapEgyptRoundTrip(t *testing.T) {
	f := newFixture(t, curio.ScreenMap)
	m := f.worldMap
	cam := m.Surface().Camera()

	m.HandleClick(egypt)
	assert.Equal(t, ZoomOpening, m.Phase())
	region, ok := m.ActiveRegion()
	require.True(t, ok)
	assert.Equal(t, curio.RegionEgypt, region)

	f.run(500 * time.Millisecond)
	assert.Equal(t, egypt, f.Store.Position(cam), "camera centred on the marker")
	assert.Equal(t, 0.5, f.Store.Scale(cam))
	assert.Equal(t, ZoomOpening, m.Phase(), "page still sliding in")

	f.run(200 * time.Millisecond)
	assert.Equal(t, ZoomOpen, m.Phase())
	assert.False(t, m.Animating())
	assert.Equal(t, 20.0, f.Store.Blur(m.Surface()))
	assert.Equal(t, egypt, f.Store.Position(m.page))
	assert.Equal(t, 1.0, f.Store.Alpha(m.page))

	m.HandleClick(nowhere)
	assert.Equal(t, ZoomClosing, m.Phase())
	region, _ = m.ActiveRegion()
	assert.Equal(t, curio.RegionEgypt, region, "region kept while closing")

	f.run(500 * time.Millisecond)
	assert.Equal(t, ZoomClosed, m.Phase())
	_, ok = m.ActiveRegion()
	assert.False(t, ok)
	assert.False(t, m.Animating())
	assert.Zero(t, f.Store.Blur(m.Surface()))
	assert.Equal(t, m.Surface().Center(), f.Store.Position(cam))
	assert.Equal(t, 1.0, f.Store.Scale(cam))
	assert.True(t, m.page.IsZero())
}

func TestMapClosingWaitsForSlowerAnimation(t *testing.T) {
	f := newFixture(t, curio.ScreenMap)
	m := f.worldMap
	m.HandleClick(egypt)
	f.run(700 * time.Millisecond)
	require.Equal(t, ZoomOpen, m.Phase())

	m.HandleClick(nowhere)
	f.run(200 * time.Millisecond)
	assert.True(t, m.page.IsZero(), "page gone after its fade")
	assert.Equal(t, ZoomClosing, m.Phase(), "camera still returning")
	f.run(300 * time.Millisecond)
	assert.Equal(t, ZoomClosed, m.Phase())
}

func TestMapIgnoresClicksWhileAnimating(t *testing.T) {
	f := newFixture(t, curio.ScreenMap)
	m := f.worldMap

	m.HandleClick(egypt)
	f.run(100 * time.Millisecond)
	tweens := f.Store.Animating()
	m.HandleClick(chile)
	m.HandleClick(home)
	m.HandleClick(nowhere)
	assert.Equal(t, ZoomOpening, m.Phase())
	region, _ := m.ActiveRegion()
	assert.Equal(t, curio.RegionEgypt, region)
	assert.Equal(t, tweens, f.Store.Animating())
	assert.Equal(t, curio.ScreenMap, f.active())

	f.run(600 * time.Millisecond)
	require.Equal(t, ZoomOpen, m.Phase())
	m.HandleClick(nowhere)
	f.run(100 * time.Millisecond)
	m.HandleClick(chile)
	assert.Equal(t, ZoomClosing, m.Phase())
	region, _ = m.ActiveRegion()
	assert.Equal(t, curio.RegionEgypt, region)
}

func TestMapHomeOnlyWhenClosed(t *testing.T) {
	f := newFixture(t, curio.ScreenMap)
	m := f.worldMap
	m.HandleClick(egypt)
	f.run(700 * time.Millisecond)
	require.Equal(t, ZoomOpen, m.Phase())

	m.HandleClick(home)
	assert.Equal(t, ZoomClosing, m.Phase(), "home closes the page like any click")
	assert.Equal(t, curio.ScreenMap, f.active())

	f.run(500 * time.Millisecond)
	m.HandleClick(home)
	assert.Equal(t, curio.ScreenHouse, f.active())
}

func TestMapEmptyClickWhenClosed(t *testing.T) {
	f := newFixture(t, curio.ScreenMap)
	tweens := f.Store.Animating()
	f.worldMap.HandleClick(nowhere)
	assert.Equal(t, ZoomClosed, f.worldMap.Phase())
	assert.Equal(t, tweens, f.Store.Animating())
}

func TestMapEveryMarkerOpensItsRegion(t *testing.T) {
	f := newFixture(t, curio.ScreenMap)
	m := f.worldMap
	for _, r := range f.Content.Regions() {
		m.HandleClick(markerPos(r))
		got, ok := m.ActiveRegion()
		require.True(t, ok, r.Title)
		assert.Equal(t, r.ID, got)
		f.run(700 * time.Millisecond)
		m.HandleClick(nowhere)
		f.run(500 * time.Millisecond)
		require.Equal(t, ZoomClosed, m.Phase(), r.Title)
	}
}

func TestZoomPhaseString(t *testing.T) {
	assert.Equal(t, "Closing", ZoomClosing.String())
	assert.Equal(t, "Unknown", ZoomPhase(9).String())
}
