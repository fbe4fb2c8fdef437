package clocktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_FiresInDeadlineOrder(t *testing.T) {
	c := New()
	var order []string
	c.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	c.AfterFunc(time.Second, func() { order = append(order, "a") })
	c.AfterFunc(5*time.Second, func() { order = append(order, "late") })

	c.Advance(3 * time.Second)

	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 3*time.Second, c.Elapsed())
	assert.Equal(t, Epoch.Add(3*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestClock_StopPreventsFire(t *testing.T) {
	c := New()
	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	c.Advance(time.Minute)
	assert.False(t, fired)
	assert.Zero(t, c.Pending())
}

func TestClock_CallbackScheduledTimerFiresWithinWindow(t *testing.T) {
	c := New()
	n := 0
	var rearm func()
	rearm = func() {
		n++
		c.AfterFunc(time.Second, rearm)
	}
	c.AfterFunc(time.Second, rearm)

	c.Advance(3 * time.Second)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, c.Pending())
}
