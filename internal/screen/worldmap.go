package screen

import (
	"log"

	"github.com/worldofwater/waterworld/internal/config"
	"github.com/worldofwater/waterworld/internal/content"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/scene"
)

// ZoomPhase is the map's camera state.
type ZoomPhase uint8

const (
	ZoomClosed ZoomPhase = iota
	ZoomOpening
	ZoomOpen
	ZoomClosing
)

var zoomPhaseNames = [...]string{"Closed", "Opening", "Open", "Closing"}

func (p ZoomPhase) String() string {
	if int(p) < len(zoomPhaseNames) {
		return zoomPhaseNames[p]
	}
	return "Unknown"
}

const (
	markerAlpha = 0.6
	pageScale   = 0.5 // pages read at full size under the camera zoom
)

// Map is the world map. Clicking a marker flies the camera to it and opens
// the region's page; any click while a page is open closes it again.
type Map struct {
	base
	phase     ZoomPhase
	region    curio.RegionID
	animating bool
	page      scene.Node
}

// NewMap builds the map surface and registers it with the hub.
func NewMap(d Deps) *Map {
	m := &Map{base: newBase(d, curio.ScreenMap, scene.Palette[scene.ColorMapBG])}
	m.build()
	return m
}

func (m *Map) build() {
	heading := m.Content.Map()
	title := m.text(scene.Node{}, scene.Vec{X: 40, Y: 80}, heading.Title, headingStyle)
	m.text(scene.Node{}, scene.Vec{X: 40, Y: 160}, heading.Subtitle, bodyStyle)
	m.titles = append(m.titles, title)
	m.homeButton(scene.LayerForeground)

	m.image(scene.Node{}, scene.Vec{X: 305, Y: 350}, scene.Vec{X: 520, Y: 292}, heading.Image, scene.LayerBackground)
	for _, r := range m.Content.Regions() {
		marker := m.Store.Add(m.surf, scene.Node{}, markerPos(r), scene.Look{
			Shape:  scene.ShapeCircle,
			Layer:  scene.LayerBackground,
			Color:  r.Color,
			Radius: float64(r.Radius),
			Alpha:  markerAlpha,
		})
		m.Store.SetTarget(marker, curio.Region(r.ID))
	}
}

func markerPos(r content.Region) scene.Vec {
	return scene.Vec{X: float64(r.Marker[0]), Y: float64(r.Marker[1])}
}

// HandleClick ignores clicks while the camera moves, closes an open page,
// and otherwise acts on the first region or Home under p.
func (m *Map) HandleClick(p scene.Vec) {
	if m.animating {
		return
	}
	switch m.phase {
	case ZoomOpen:
		m.close()
	case ZoomClosed:
		for _, t := range m.Store.HitTest(m.surf, p) {
			switch t.Kind {
			case curio.HitHome:
				m.goHome()
				return
			case curio.HitRegion:
				m.open(t.Region)
				return
			}
		}
	}
}

func (m *Map) open(id curio.RegionID) {
	r := m.Content.Region(id)
	at := markerPos(r)
	m.phase, m.region, m.animating = ZoomOpening, id, true
	log.Printf("[map] open %s", id)

	cam := m.surf.Camera()
	d := config.Seconds(m.Config.Map.CameraMove)
	m.Store.ScaleTo(cam, m.Config.Map.Zoom, d, nil)
	m.Store.MoveTo(cam, at, d, func() { m.showPage(r, at) })
}

func (m *Map) showPage(r content.Region, at scene.Vec) {
	offset := scene.Vec{Y: m.Config.Map.ContentOffset}
	m.page = m.buildPage(r, at.Add(offset))
	m.Store.SetBlur(m.surf, m.Config.Transition.BlurRadius)

	d := config.Seconds(m.Config.Map.ContentSlide)
	opened := scene.Join(2, func() {
		m.phase, m.animating = ZoomOpen, false
	})
	m.Store.MoveTo(m.page, at, d, opened)
	m.Store.FadeTo(m.page, 1, d, opened)
}

func (m *Map) buildPage(r content.Region, at scene.Vec) scene.Node {
	page := m.Store.Add(m.surf, scene.Node{}, at, scene.Look{Layer: scene.LayerForeground})
	m.Store.SetScale(page, pageScale)
	m.text(page, scene.Vec{X: -270, Y: -220}, r.Title, textStyle{
		size: 48, bold: true, align: scene.AlignLeft,
		color: scene.Palette[scene.ColorBlack], layer: scene.LayerForeground,
	})
	m.text(page, scene.Vec{X: -270, Y: -145}, r.Body, bodyStyle)
	m.image(page, scene.Vec{X: 200, Y: -235}, scene.Vec{X: 150, Y: 100}, r.Image, scene.LayerForeground)
	return page
}

func (m *Map) close() {
	m.phase, m.animating = ZoomClosing, true
	log.Printf("[map] close %s", m.region)

	closed := scene.Join(2, func() {
		m.phase, m.region, m.animating = ZoomClosed, curio.NoRegion, false
	})

	page := m.page
	slide := config.Seconds(m.Config.Map.ContentSlide)
	away := m.Store.Position(page).Add(scene.Vec{Y: m.Config.Map.ContentOffset})
	m.Store.MoveTo(page, away, slide, nil)
	m.Store.FadeTo(page, 0, slide, func() {
		m.Store.Remove(page)
		m.page = scene.Node{}
		m.Store.SetBlur(m.surf, 0)
		closed()
	})

	cam := m.surf.Camera()
	d := config.Seconds(m.Config.Map.CameraMove)
	m.Store.ScaleTo(cam, 1, d, nil)
	m.Store.MoveTo(cam, m.surf.Center(), d, closed)
}

// Phase returns the camera state.
func (m *Map) Phase() ZoomPhase { return m.phase }

// ActiveRegion returns the region being opened, shown or closed.
func (m *Map) ActiveRegion() (curio.RegionID, bool) {
	return m.region, m.region != curio.NoRegion
}

// Animating reports whether clicks are currently ignored.
func (m *Map) Animating() bool { return m.animating }
