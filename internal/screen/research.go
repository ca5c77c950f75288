package screen

import (
	"log"
	"time"

	"github.com/worldofwater/waterworld/internal/config"
	"github.com/worldofwater/waterworld/internal/content"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/sched"
	"github.com/worldofwater/waterworld/internal/scene"
)

// ModalPhase is whether a research modal is up.
type ModalPhase uint8

const (
	ModalClosed ModalPhase = iota
	ModalOpen
)

func (p ModalPhase) String() string {
	if p == ModalOpen {
		return "Open"
	}
	return "Closed"
}

var (
	modalShown  = scene.Vec{X: 312, Y: 300}
	modalHidden = scene.Vec{X: 312, Y: 600}
)

// Research is the R&D room. A modal opens from one of two buttons; any
// click while it is up closes it. The desalination modal animates its
// diagram with markers spawned on a timer.
type Research struct {
	base
	phase   ModalPhase
	modal   curio.ModalID
	closing bool

	panel   scene.Node
	markers map[scene.Node]struct{}
	diagram *sched.Task
}

// NewResearch builds the research surface and registers it with the hub.
func NewResearch(d Deps) *Research {
	r := &Research{
		base:    newBase(d, curio.ScreenResearch, scene.Palette[scene.ColorResearchBG]),
		markers: make(map[scene.Node]struct{}),
	}
	r.diagram = d.Clock.Register(sched.NewTask("research.diagram",
		config.Seconds(d.Config.Research.DiagramInterval), r.spawnDiagram))
	r.build()
	return r
}

func (r *Research) build() {
	page := r.Content.Research()
	bg := scene.LayerBackground
	r.image(scene.Node{}, scene.Vec{X: 312, Y: 450}, scene.Vec{X: 560, Y: 260}, page.Image, bg)

	white := scene.Palette[scene.ColorWhite]
	title := r.text(scene.Node{}, scene.Vec{X: 40, Y: 80}, page.Title,
		textStyle{size: 48, align: scene.AlignLeft, color: white, layer: bg})
	sub := r.text(scene.Node{}, scene.Vec{X: 40, Y: 120}, page.Subtitle,
		textStyle{size: 28, align: scene.AlignLeft, color: white, layer: bg})
	r.titles = append(r.titles, title, sub)

	r.homeButton(bg)
	size := scene.Vec{X: 200, Y: 100}
	r.button(scene.Vec{X: 190, Y: 300}, size, curio.ModalDesalination.String(),
		scene.Palette[scene.ColorButton], bg, curio.ModalButton(curio.ModalDesalination))
	r.button(scene.Vec{X: 444, Y: 300}, size, curio.ModalFogCatching.String(),
		scene.Palette[scene.ColorButtonLight], bg, curio.ModalButton(curio.ModalFogCatching))
}

// HandleClick closes an open modal whatever was hit. With no modal up it
// acts on the first modal button or Home under p. Clicks during the close
// animation are dropped.
func (r *Research) HandleClick(p scene.Vec) {
	if r.closing {
		return
	}
	if r.phase == ModalOpen {
		r.close()
		return
	}
	for _, t := range r.Store.HitTest(r.surf, p) {
		switch t.Kind {
		case curio.HitHome:
			r.goHome()
			return
		case curio.HitModal:
			r.open(t.Modal)
			return
		}
	}
}

func (r *Research) open(id curio.ModalID) {
	r.phase, r.modal = ModalOpen, id
	log.Printf("[research] open %s", id)

	r.panel = r.buildModal(r.Content.Modal(id))
	d := config.Seconds(r.Config.Research.ModalIn)
	r.Store.MoveTo(r.panel, modalShown, d, nil)
	r.Store.FadeTo(r.panel, 1, d, nil)
	r.Store.SetBlur(r.surf, r.Config.Transition.BlurRadius)

	if id == curio.ModalDesalination {
		r.diagram.Start()
	}
}

func (r *Research) buildModal(m content.Modal) scene.Node {
	fg := scene.LayerForeground
	black := scene.Palette[scene.ColorBlack]
	panel := r.Store.Add(r.surf, scene.Node{}, modalHidden, scene.Look{Layer: fg})
	r.Store.Add(r.surf, panel, scene.Vec{}, scene.Look{
		Shape: scene.ShapeRect,
		Layer: fg,
		Color: scene.Palette[scene.ColorWhite],
		Size:  scene.Vec{X: 550, Y: 520},
		Alpha: 0.8,
	})
	r.text(panel, scene.Vec{X: -250, Y: -200}, m.Title, headingStyle)
	r.text(panel, scene.Vec{X: -40, Y: -170}, m.Body, bodyStyle.sized(16))
	r.image(panel, scene.Vec{X: -150, Y: -100}, scene.Vec{X: 200, Y: 130}, m.Image, fg)
	for _, l := range m.Labels {
		r.text(panel, scene.Vec{X: float64(l.At[0]), Y: float64(l.At[1])}, l.Text,
			textStyle{size: 14, color: black, layer: fg})
	}
	for _, sp := range m.Sprites {
		size := scene.Vec{X: float64(sp.Size[0]), Y: float64(sp.Size[1])}.Mul(sp.Scale)
		r.image(panel, scene.Vec{X: float64(sp.At[0]), Y: float64(sp.At[1])}, size, sp.Image, fg)
	}
	return panel
}

func (r *Research) close() {
	r.closing = true
	log.Printf("[research] close %s", r.modal)
	r.stopDiagram()

	panel := r.panel
	d := config.Seconds(r.Config.Research.ModalOut)
	r.Store.MoveTo(panel, modalHidden, d, nil)
	r.Store.FadeTo(panel, 0, d, func() {
		r.Store.Remove(panel)
		r.panel = scene.Node{}
		r.Store.SetBlur(r.surf, 0)
		r.phase, r.modal, r.closing = ModalClosed, curio.NoModal, false
	})
}

// stopDiagram halts the spawner and drops every live marker at once.
func (r *Research) stopDiagram() {
	r.diagram.Stop()
	for n := range r.markers {
		r.Store.Remove(n)
	}
	clear(r.markers)
}

// Exit stops the diagram.
func (r *Research) Exit() { r.stopDiagram() }

type diagramMarker struct {
	color    int
	radius   float64
	from, to scene.Vec
	dur      time.Duration
}

func (r *Research) spawnDiagram() {
	flow := config.Seconds(r.Config.Research.WaterFlow)
	fall := config.Seconds(r.Config.Research.DropFall)
	solidX := float64(160 + r.Rand.IntN(60))
	brineX := float64(320 + r.Rand.IntN(40))
	for _, dm := range [...]diagramMarker{
		{scene.ColorWater, 3, scene.Vec{X: 50, Y: 443}, scene.Vec{X: 430, Y: 447}, flow},
		{scene.ColorSolid, 3, scene.Vec{X: solidX, Y: 500}, scene.Vec{X: solidX, Y: 600}, fall},
		{scene.ColorBrine, 3, scene.Vec{X: brineX, Y: 500}, scene.Vec{X: brineX, Y: 600}, fall},
		{scene.ColorChemical, 1.5, scene.Vec{X: 387, Y: 400}, scene.Vec{X: 387, Y: 420}, fall},
	} {
		n := r.Store.Add(r.surf, scene.Node{}, dm.from, scene.Look{
			Shape:  scene.ShapeCircle,
			Layer:  scene.LayerForeground,
			Color:  scene.Palette[dm.color],
			Radius: dm.radius,
			Alpha:  1,
		})
		r.markers[n] = struct{}{}
		r.Store.MoveTo(n, dm.to, dm.dur, func() {
			r.Store.Remove(n)
			delete(r.markers, n)
		})
	}
}

// Phase returns whether a modal is up.
func (r *Research) Phase() ModalPhase { return r.phase }

// ActiveModal returns the modal on display.
func (r *Research) ActiveModal() (curio.ModalID, bool) {
	return r.modal, r.modal != curio.NoModal
}

// Closing reports whether the modal is animating out.
func (r *Research) Closing() bool { return r.closing }

// DiagramRunning reports whether the diagram spawner is armed.
func (r *Research) DiagramRunning() bool { return r.diagram.Running() }

// DiagramTicks returns how many times the diagram spawner has fired.
func (r *Research) DiagramTicks() uint64 { return r.diagram.Fired() }

// LiveMarkers returns the number of diagram markers on the surface.
func (r *Research) LiveMarkers() int { return len(r.markers) }
