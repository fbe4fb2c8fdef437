// Package clocktest provides a manually advanced state.Clock for tests.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"hooksdemo/internal/state"
)

// Clock is a state.Clock whose time only moves on Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*timer
}

var _ state.Clock = (*Clock)(nil)

type timer struct {
	c       *Clock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// New creates a clock at time zero.
func New() *Clock {
	return &Clock{}
}

// AfterFunc implements state.Clock.
func (c *Clock) AfterFunc(d time.Duration, f func()) state.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &timer{c: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Stop implements state.Timer.
func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Epoch is the time reported by a new Clock.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Now implements state.Clock.
func (c *Clock) Now() time.Time {
	return Epoch.Add(c.Elapsed())
}

// Elapsed returns the simulated time advanced since New.
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers that have neither fired nor stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing due timers in deadline order on the
// calling goroutine. Timers scheduled by a callback fire too if they fall due
// within the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(end)
		if next == nil {
			c.now = end
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()
		next.f()
	}
}

func (c *Clock) nextDue(end time.Duration) *timer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	if len(live) == 0 || live[0].at > end {
		return nil
	}
	return live[0]
}
