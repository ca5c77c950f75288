package sched

import "time"

// Clock owns every registered Task and advances them together.
type Clock struct {
	tasks []*Task
	now   time.Duration
}

// NewClock creates an empty clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Register adds a task to the clock and returns it for chaining.
func (c *Clock) Register(t *Task) *Task {
	c.tasks = append(c.tasks, t)
	return t
}

// Advance moves all running tasks forward by dt.
func (c *Clock) Advance(dt time.Duration) {
	c.now += dt
	for _, t := range c.tasks {
		t.advance(dt)
	}
}

// Now returns the total time advanced so far.
func (c *Clock) Now() time.Duration { return c.now }

// Running lists the names of armed tasks.
func (c *Clock) Running() []string {
	var names []string
	for _, t := range c.tasks {
		if t.running {
			names = append(names, t.Name)
		}
	}
	return names
}
