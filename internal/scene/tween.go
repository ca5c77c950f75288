package scene

import "time"

// Property is the node attribute an animation drives.
type Property uint8

const (
	PropPosition Property = iota
	PropAlpha
	PropScale
)

type tween struct {
	node     Node
	prop     Property
	from, to Vec
	dur      time.Duration
	elapsed  time.Duration
	done     func()
}

// Animate drives prop of n linearly towards target over d and calls done
// once it arrives. Alpha and scale read target.X. There is no cancel: if n
// is removed first, the animation is dropped and done never runs.
func (s *Store) Animate(n Node, prop Property, target Vec, d time.Duration, done func()) {
	if !s.Alive(n) {
		return
	}
	tw := &tween{node: n, prop: prop, to: target, dur: d, done: done}
	switch prop {
	case PropPosition:
		tw.from = s.Position(n)
	case PropAlpha:
		tw.from = Vec{X: s.Alpha(n)}
	case PropScale:
		tw.from = Vec{X: s.Scale(n)}
	}
	s.tweens = append(s.tweens, tw)
}

// MoveTo animates n's position.
func (s *Store) MoveTo(n Node, to Vec, d time.Duration, done func()) {
	s.Animate(n, PropPosition, to, d, done)
}

// FadeTo animates n's opacity.
func (s *Store) FadeTo(n Node, alpha float64, d time.Duration, done func()) {
	s.Animate(n, PropAlpha, Vec{X: alpha}, d, done)
}

// ScaleTo animates n's scale.
func (s *Store) ScaleTo(n Node, k float64, d time.Duration, done func()) {
	s.Animate(n, PropScale, Vec{X: k}, d, done)
}

// Animating reports how many animations are in flight.
func (s *Store) Animating() int { return len(s.tweens) }

// Advance steps every animation by dt. Completion callbacks run after all
// animations have been stepped, in the order they finished.
func (s *Store) Advance(dt time.Duration) {
	var finished []func()
	live := s.tweens[:0]
	for _, tw := range s.tweens {
		if !s.Alive(tw.node) {
			continue
		}
		tw.elapsed += dt
		t := 1.0
		if tw.dur > 0 && tw.elapsed < tw.dur {
			t = float64(tw.elapsed) / float64(tw.dur)
		}
		s.apply(tw, t)
		if t < 1 {
			live = append(live, tw)
			continue
		}
		if tw.done != nil {
			finished = append(finished, tw.done)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
	for _, fn := range finished {
		fn()
	}
}

func (s *Store) apply(tw *tween, t float64) {
	v := tw.from.Lerp(tw.to, t)
	switch tw.prop {
	case PropPosition:
		s.SetPosition(tw.node, v)
	case PropAlpha:
		s.SetAlpha(tw.node, v.X)
	case PropScale:
		s.SetScale(tw.node, v.X)
	}
}

// Join returns a callback that runs fn on its n-th invocation. It sequences
// an action after several parallel animations.
func Join(n int, fn func()) func() {
	return func() {
		n--
		if n == 0 {
			fn()
		}
	}
}
