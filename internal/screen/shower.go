package screen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/worldofwater/waterworld/internal/config"
	"github.com/worldofwater/waterworld/internal/content"
	"github.com/worldofwater/waterworld/internal/curio"
	"github.com/worldofwater/waterworld/internal/sched"
	"github.com/worldofwater/waterworld/internal/scene"
)

const (
	dropRadius = 5
	dropTop    = 282
	faucetMin  = 30
	faucetSpan = 85 // drops fall at x in [faucetMin, faucetMin+faucetSpan)
)

// Shower is the shower usage calculator: a minute counter, a running
// shower while the counter is positive, and a usage line plus one random
// comparison fact on submit.
type Shower struct {
	base
	page content.Shower

	minutes  int
	lastFact int // index of the fact on display, -1 for none

	counter     scene.Node
	usage, fact scene.Node
	flow        *sched.Task
}

// NewShower builds the shower surface and registers it with the hub.
func NewShower(d Deps) *Shower {
	s := &Shower{
		base:     newBase(d, curio.ScreenShower, scene.Palette[scene.ColorShowerBG]),
		page:     d.Content.Shower(),
		lastFact: -1,
	}
	s.flow = d.Clock.Register(sched.NewTask("shower.flow",
		config.Seconds(d.Config.Shower.FlowInterval), s.spawnDrop))
	s.build()
	return s
}

func (s *Shower) build() {
	title := s.text(scene.Node{}, scene.Vec{X: 40, Y: 80}, s.page.Title, headingStyle)
	s.text(scene.Node{}, scene.Vec{X: 40, Y: 140}, s.page.Subtitle, bodyStyle.sized(32))
	s.titles = append(s.titles, title)

	s.image(scene.Node{}, scene.Vec{X: 60, Y: 270}, scene.Vec{X: 250, Y: 250}, s.page.Image, scene.LayerBackground)

	s.button(scene.Vec{X: 375, Y: 550}, scene.Vec{X: 160, Y: 60}, "Submit",
		scene.Palette[scene.ColorButton], scene.LayerForeground, curio.Submit())
	s.homeButton(scene.LayerForeground)

	s.text(scene.Node{}, scene.Vec{X: 250, Y: 207}, s.page.MinutesLabel,
		textStyle{size: 18, color: scene.Palette[scene.ColorBlack], layer: scene.LayerForeground})
	s.counter = s.text(scene.Node{}, scene.Vec{X: 460, Y: 210}, "0",
		textStyle{size: 32, color: scene.Palette[scene.ColorBlack], layer: scene.LayerForeground})

	mathSize := scene.Vec{X: 46, Y: 89}
	s.button(scene.Vec{X: 360, Y: 200}, mathSize, "-", scene.Palette[scene.ColorButton], scene.LayerForeground, curio.Math(curio.Down))
	s.button(scene.Vec{X: 560, Y: 200}, mathSize, "+", scene.Palette[scene.ColorButton], scene.LayerForeground, curio.Math(curio.Up))
}

// HandleClick dispatches on the topmost target under p.
func (s *Shower) HandleClick(p scene.Vec) {
	switch t := s.Store.FirstHit(s.surf, p); t.Kind {
	case curio.HitHome:
		s.GoHome()
	case curio.HitSubmit:
		s.Submit()
	case curio.HitMath:
		if t.Dir == curio.Up {
			s.Increment()
		} else {
			s.Decrement()
		}
	}
}

func (s *Shower) mustBeActive(op string) {
	if !s.active() {
		panic(fmt.Sprintf("shower: %s while the shower screen is hidden", op))
	}
}

// Increment adds a minute; the first minute turns the water on.
func (s *Shower) Increment() {
	s.mustBeActive("increment")
	if s.minutes == 0 {
		s.flow.Start()
	}
	s.minutes++
	s.Store.SetText(s.counter, strconv.Itoa(s.minutes))
}

// Decrement removes a minute if there is one; at zero the water stops.
func (s *Shower) Decrement() {
	s.mustBeActive("decrement")
	if s.minutes > 0 {
		s.minutes--
		s.Store.SetText(s.counter, strconv.Itoa(s.minutes))
	}
	if s.minutes == 0 {
		s.flow.Stop()
	}
}

// Submit shows the litres used and a fact different from the previous one.
// It does nothing at zero minutes.
func (s *Shower) Submit() {
	s.mustBeActive("submit")
	if s.minutes == 0 {
		return
	}
	facts := s.Facts()
	i := s.Rand.IntN(len(facts))
	for i == s.lastFact {
		i = s.Rand.IntN(len(facts))
	}
	s.lastFact = i

	s.Store.Remove(s.usage)
	s.Store.Remove(s.fact)
	s.usage = s.text(scene.Node{}, scene.Vec{X: 180, Y: 320}, fmt.Sprintf(s.page.Usage, decimal(s.Litres())), bodyStyle)
	s.fact = s.text(scene.Node{}, scene.Vec{X: 180, Y: 500}, facts[i], bodyStyle)
}

// GoHome sets the counter to one and decrements it, which zeroes the count
// and stops the water, then returns to the house.
func (s *Shower) GoHome() {
	s.minutes = 1
	s.Decrement()
	s.goHome()
}

// Exit stops the water. Leaving through GoHome has already done so.
func (s *Shower) Exit() {
	s.flow.Stop()
	if s.minutes != 0 {
		s.minutes = 0
		s.Store.SetText(s.counter, "0")
	}
}

// Minutes returns the counter.
func (s *Shower) Minutes() int { return s.minutes }

// Flowing reports whether the water effect is running.
func (s *Shower) Flowing() bool { return s.flow.Running() }

// Drops returns how many water drops have been spawned so far.
func (s *Shower) Drops() uint64 { return s.flow.Fired() }

// Litres is the water used by a shower of Minutes minutes.
func (s *Shower) Litres() float64 {
	return float64(s.minutes) * s.Config.Shower.LitresPerMinute
}

// Facts formats every fact template for the current count.
func (s *Shower) Facts() []string {
	litres := s.Litres()
	values := [content.FactCount]float64{
		litres / 0.5,
		math.Round(litres / 47.0 * 100),
		math.Round(litres*2.2*100) / 100,
	}
	out := make([]string, len(s.page.Facts))
	for i, tmpl := range s.page.Facts {
		out[i] = fmt.Sprintf(tmpl, decimal(values[i]))
	}
	return out
}

// Stats returns the usage line and the fact on display, empty before the
// first submit.
func (s *Shower) Stats() (usage, fact string) {
	if s.Store.Alive(s.usage) {
		usage = s.Store.Text(s.usage)
	}
	if s.Store.Alive(s.fact) {
		fact = s.Store.Text(s.fact)
	}
	return usage, fact
}

func (s *Shower) spawnDrop() {
	x := float64(faucetMin + s.Rand.IntN(faucetSpan))
	drop := s.Store.Add(s.surf, scene.Node{}, scene.Vec{X: x, Y: dropTop}, scene.Look{
		Shape:  scene.ShapeCircle,
		Layer:  scene.LayerForeground,
		Color:  scene.Palette[scene.ColorWater],
		Radius: dropRadius,
		Alpha:  1,
	})
	bottom := scene.Vec{X: x, Y: s.surf.Size.Y}
	s.Store.MoveTo(drop, bottom, config.Seconds(s.Config.Shower.DropFall), func() {
		s.Store.Remove(drop)
	})
}
