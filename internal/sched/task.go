// Package sched drives repeating callbacks from the game loop's fixed step.
// Nothing here spawns goroutines; a Task only fires from inside Clock.Advance.
package sched

import "time"

// Task is a repeating callback with an explicit running state.
// The first fire happens one full interval after Start.
type Task struct {
	Name     string
	interval time.Duration
	fn       func()
	elapsed  time.Duration
	running  bool
	fired    uint64
}

// NewTask creates a stopped task. Register it with a Clock to have it tick.
func NewTask(name string, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic("sched: non-positive interval for task " + name)
	}
	return &Task{Name: name, interval: interval, fn: fn}
}

// Start arms the task. Starting a running task restarts its interval.
func (t *Task) Start() {
	t.running = true
	t.elapsed = 0
}

// Stop disarms the task. Stopping a stopped task is a no-op.
func (t *Task) Stop() {
	t.running = false
	t.elapsed = 0
}

// Running reports whether the task is armed.
func (t *Task) Running() bool { return t.running }

// Fired returns how many times the callback has run since creation.
func (t *Task) Fired() uint64 { return t.fired }

// Interval returns the configured period.
func (t *Task) Interval() time.Duration { return t.interval }

// advance moves the task forward by dt, firing once per elapsed interval.
// A callback that stops its own task ends the loop.
func (t *Task) advance(dt time.Duration) {
	if !t.running {
		return
	}
	t.elapsed += dt
	for t.running && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.fired++
		t.fn()
	}
}
