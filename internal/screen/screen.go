// Package screen holds the controllers of the four screens. Each owns its
// surface, the nodes it adds to it and any periodic task its state needs.
package screen

import (
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/worldofwater/waterworld/internal/config"
	"github.com/worldofwater/waterworld/internal/content"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/nav"
	"github.com/worldofwater/waterworld/internal/sched"
	"github.com/worldofwater/waterworld/internal/scene"
)

// Screen is the capability set every controller offers.
type Screen interface {
	ID() curio.ScreenID
	Surface() *scene.Surface
	HandleClick(p scene.Vec)
	Enter()
	Exit()
}

// Deps are the collaborators shared by every controller. One set is built
// at startup.
type Deps struct {
	Store   *scene.Store
	Hub     *nav.Hub
	Clock   *sched.Clock
	Content *content.Provider
	Config  *config.Config
	Rand    *rand.Rand
}

// base is embedded by every controller.
type base struct {
	Deps
	id     curio.ScreenID
	surf   *scene.Surface
	titles []scene.Node // faded in on Enter
}

func newBase(d Deps, id curio.ScreenID, bg color.RGBA) base {
	size := scene.Vec{X: float64(d.Config.Window.Width), Y: float64(d.Config.Window.Height)}
	surf := d.Store.NewSurface(strings.ToLower(id.String()), size, bg)
	d.Hub.Register(id, surf)
	return base{Deps: d, id: id, surf: surf}
}

// ID returns the screen this controller owns.
func (b *base) ID() curio.ScreenID { return b.id }

// Surface returns the controller's surface.
func (b *base) Surface() *scene.Surface { return b.surf }

// Enter replays the title fade-in.
func (b *base) Enter() {
	d := config.Seconds(b.Config.Transition.TitleFade)
	for _, n := range b.titles {
		b.Store.SetAlpha(n, 0)
		b.Store.FadeTo(n, 1, d, nil)
	}
}

// Exit is a no-op for screens without periodic work.
func (b *base) Exit() {}

func (b *base) active() bool { return b.Hub.IsActive(b.id) }

func (b *base) goHome() { b.Hub.MustActivate(curio.ScreenHouse) }

type textStyle struct {
	size  float64
	bold  bool
	align scene.Align
	color color.RGBA
	layer scene.Layer
}

var (
	headingStyle = textStyle{size: 48, align: scene.AlignLeft, color: scene.Palette[scene.ColorBlack], layer: scene.LayerForeground}
	bodyStyle    = textStyle{size: 24, align: scene.AlignLeft, color: scene.Palette[scene.ColorBlack], layer: scene.LayerForeground}
)

func (t textStyle) sized(size float64) textStyle { t.size = size; return t }

func (b *base) text(parent scene.Node, at scene.Vec, s string, st textStyle) scene.Node {
	return b.Store.Add(b.surf, parent, at, scene.Look{
		Shape:    scene.ShapeLabel,
		Layer:    st.layer,
		Color:    st.color,
		Text:     s,
		FontSize: st.size,
		Bold:     st.bold,
		Align:    st.align,
		Alpha:    1,
	})
}

// image adds a framed placeholder for a named picture.
func (b *base) image(parent scene.Node, at, size scene.Vec, name string, layer scene.Layer) scene.Node {
	return b.Store.Add(b.surf, parent, at, scene.Look{
		Shape:    scene.ShapeImage,
		Layer:    layer,
		Color:    scene.Palette[scene.ColorPlaceholder],
		Size:     size,
		Image:    name,
		Text:     strings.TrimSuffix(name, ".png"),
		FontSize: 14,
		Alpha:    1,
	})
}

// button adds a clickable rectangle with a centred caption.
func (b *base) button(at, size scene.Vec, caption string, fill color.RGBA, layer scene.Layer, target curio.HitTarget) scene.Node {
	n := b.Store.Add(b.surf, scene.Node{}, at, scene.Look{
		Shape: scene.ShapeRect,
		Layer: layer,
		Color: fill,
		Size:  size,
		Alpha: 1,
	})
	b.text(n, scene.Vec{}, caption, textStyle{size: 32, color: scene.Palette[scene.ColorBlack], layer: layer})
	b.Store.SetTarget(n, target)
	return n
}

func (b *base) homeButton(layer scene.Layer) scene.Node {
	return b.button(scene.Vec{X: 550, Y: 50}, scene.Vec{X: 100, Y: 50}, "Home",
		scene.Palette[scene.ColorButton], layer, curio.Home())
}
