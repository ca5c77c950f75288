package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskFiresOncePerInterval(t *testing.T) {
	c := NewClock()
	n := 0
	task := c.Register(NewTask("flow", 100*time.Millisecond, func() { n++ }))

	c.Advance(time.Second)
	assert.Equal(t, 0, n, "stopped task must not fire")

	task.Start()
	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, n)
	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, n)
	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint64(3), task.Fired())
}

func TestTaskStopFreezesFiring(t *testing.T) {
	c := NewClock()
	n := 0
	task := c.Register(NewTask("diagram", 500*time.Millisecond, func() { n++ }))
	task.Start()
	c.Advance(time.Second)
	require.Equal(t, 2, n)

	task.Stop()
	assert.False(t, task.Running())
	c.Advance(10 * time.Second)
	assert.Equal(t, 2, n)
	assert.Empty(t, c.Running())
}

func TestTaskRestartResetsInterval(t *testing.T) {
	c := NewClock()
	n := 0
	task := c.Register(NewTask("flow", 100*time.Millisecond, func() { n++ }))
	task.Start()
	c.Advance(90 * time.Millisecond)
	task.Start()
	c.Advance(90 * time.Millisecond)
	assert.Equal(t, 0, n)
}

func TestTaskStoppingItselfEndsCatchUp(t *testing.T) {
	c := NewClock()
	n := 0
	var task *Task
	task = c.Register(NewTask("once", 10*time.Millisecond, func() {
		n++
		task.Stop()
	}))
	task.Start()
	c.Advance(time.Second)
	assert.Equal(t, 1, n)
}

func TestClockRunningNames(t *testing.T) {
	c := NewClock()
	a := c.Register(NewTask("a", time.Second, func() {}))
	c.Register(NewTask("b", time.Second, func() {}))
	a.Start()
	assert.Equal(t, []string{"a"}, c.Running())
	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, c.Now())
}

func TestNewTaskRejectsZeroInterval(t *testing.T) {
	assert.Panics(t, func() { NewTask("bad", 0, func() {}) })
}
