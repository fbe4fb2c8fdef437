package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hooksdemo/internal/state"
	"hooksdemo/internal/state/clocktest"
)

type tickerRig struct {
	sched *state.Scheduler
	queue *state.Queue
	clock *clocktest.Clock
	count *state.Cell[int]
	tk    *state.Ticker
}

func newTickerRig() *tickerRig {
	r := &tickerRig{
		sched: state.NewScheduler(),
		queue: state.NewQueue(),
		clock: clocktest.New(),
	}
	r.count = state.NewCell(r.sched, 0)
	r.tk = state.NewTicker(state.TickerConfig{
		Scheduler: r.sched,
		Loop:      r.queue,
		Clock:     r.clock,
		Interval:  time.Second,
		Count:     r.count,
	})
	return r
}

// advance moves simulated time one interval at a time, draining the loop
// after each step the way the UI does between messages.
func (r *tickerRig) advance(intervals int) {
	for range intervals {
		r.clock.Advance(time.Second)
		r.queue.Drain()
	}
}

func TestTicker_StartsStopped(t *testing.T) {
	r := newTickerRig()

	assert.Equal(t, state.Stopped, r.tk.State())
	assert.False(t, r.tk.Armed())
	r.advance(3)
	assert.Equal(t, 0, r.count.Get())
}

func TestTicker_StopAfterNTicksQuiesces(t *testing.T) {
	for _, n := range []int{1, 3, 12} {
		r := newTickerRig()
		require.True(t, r.tk.Start())

		r.advance(n)
		require.True(t, r.tk.Stop())
		r.advance(10)

		assert.Equal(t, n, r.count.Get(), "n=%d", n)
		assert.Equal(t, n, r.tk.Ticks(), "n=%d", n)
		assert.Equal(t, state.Stopped, r.tk.State())
		assert.Zero(t, r.clock.Pending(), "no timer outstanding after stop")
	}
}

func TestTicker_AtMostOneLiveTimer(t *testing.T) {
	r := newTickerRig()
	r.tk.Start()
	for range 5 {
		assert.LessOrEqual(t, r.clock.Pending(), 1)
		r.advance(1)
	}
	r.tk.Stop()
	r.tk.Start()
	assert.Equal(t, 1, r.clock.Pending())
}

func TestTicker_StartWhileRunningIsRejected(t *testing.T) {
	r := newTickerRig()

	assert.True(t, r.tk.Start())
	assert.False(t, r.tk.Start())
	r.advance(2)
	assert.Equal(t, 2, r.count.Get())
}

func TestTicker_ResetFromAnyState(t *testing.T) {
	r := newTickerRig()
	r.tk.Reset()
	assert.Equal(t, 0, r.count.Get())
	assert.Equal(t, state.Stopped, r.tk.State())

	r.tk.Start()
	r.advance(4)
	r.tk.Reset()
	assert.Equal(t, 0, r.count.Get())
	assert.Equal(t, state.Stopped, r.tk.State())
	r.advance(3)
	assert.Equal(t, 0, r.count.Get())

	r.tk.Start()
	r.advance(2)
	r.tk.Stop()
	r.tk.Reset()
	assert.Equal(t, 0, r.count.Get())
	assert.Equal(t, state.Stopped, r.tk.State())
}

func TestTicker_ResetIsOneFlush(t *testing.T) {
	r := newTickerRig()
	r.tk.Start()
	r.advance(2)
	calls := 0
	sub := func() { calls++ }
	r.count.SubscribeFunc(sub)
	r.tk.RunningCell().SubscribeFunc(sub)

	r.tk.Reset()

	assert.Equal(t, 2, calls, "two distinct subscribers, one flush")
	before := r.sched.Flushes()
	r.tk.Reset()
	assert.Equal(t, before+1, r.sched.Flushes())
}

func TestTicker_QueuedFireAfterStopIsDropped(t *testing.T) {
	r := newTickerRig()
	r.tk.Start()
	r.advance(1)

	// The timer fires and posts, but Stop runs before the loop drains.
	r.clock.Advance(time.Second)
	require.Equal(t, 1, r.queue.Len())
	r.tk.Stop()
	r.queue.Drain()

	assert.Equal(t, 1, r.count.Get())
	assert.Equal(t, 1, r.tk.Dropped())
}

func TestTicker_RestartDropsPreviousGeneration(t *testing.T) {
	r := newTickerRig()
	r.tk.Start()
	r.clock.Advance(time.Second)
	r.tk.Stop()
	r.tk.Start()
	r.queue.Drain()

	assert.Equal(t, 0, r.count.Get(), "fire from the first run is stale")
	r.advance(1)
	assert.Equal(t, 1, r.count.Get())
}

func TestTicker_CloseWhileRunningNeverFiresAgain(t *testing.T) {
	r := newTickerRig()
	r.tk.Start()
	r.advance(2)

	r.clock.Advance(time.Second)
	r.tk.Close()
	r.count.Dispose()
	r.queue.Drain()
	r.advance(10)

	assert.Equal(t, 2, r.count.Get())
	assert.Equal(t, 2, r.tk.Ticks())
	assert.True(t, r.tk.Closed())
	assert.False(t, r.tk.Armed())
	assert.Zero(t, r.clock.Pending())
	assert.False(t, r.tk.Start(), "closed ticker cannot restart")
	assert.NotPanics(t, r.tk.Close)
}

func TestTicker_SubscriberStoppingDuringTickCancelsNext(t *testing.T) {
	r := newTickerRig()
	state.Watch(r.count, func(n int) {
		if n == 3 {
			r.tk.Stop()
		}
	})
	r.tk.Start()
	r.advance(6)

	assert.Equal(t, 3, r.count.Get())
	assert.Zero(t, r.clock.Pending())
}

func TestTicker_LoopLatencyDoesNotAccumulate(t *testing.T) {
	r := newTickerRig()
	require.True(t, r.tk.Start())

	// Every fire waits 300ms in the loop before it is applied.
	r.clock.Advance(time.Second)
	r.clock.Advance(300 * time.Millisecond)
	r.queue.Drain()
	for range 9 {
		r.clock.Advance(700 * time.Millisecond)
		r.clock.Advance(300 * time.Millisecond)
		r.queue.Drain()
	}

	assert.Equal(t, 10300*time.Millisecond, r.clock.Elapsed())
	assert.Equal(t, 10, r.count.Get())
	assert.Equal(t, 1, r.clock.Pending())
}

func TestTicker_RestartMeasuresFromStart(t *testing.T) {
	r := newTickerRig()
	require.True(t, r.tk.Start())
	r.advance(2)
	require.True(t, r.tk.Stop())

	r.clock.Advance(1500 * time.Millisecond)
	require.True(t, r.tk.Start())
	r.clock.Advance(900 * time.Millisecond)
	r.queue.Drain()
	assert.Equal(t, 2, r.count.Get())

	r.clock.Advance(100 * time.Millisecond)
	r.queue.Drain()
	assert.Equal(t, 3, r.count.Get())
}

func TestTicker_MilestoneObserverIsReadOnly(t *testing.T) {
	r := newTickerRig()
	var milestones []int
	state.Watch(r.count, func(n int) {
		if n > 0 && n%10 == 0 {
			milestones = append(milestones, n)
		}
	})
	r.tk.Start()
	r.advance(25)

	assert.Equal(t, []int{10, 20}, milestones)
	assert.Equal(t, 25, r.count.Get())
}

func TestQueue_DrainRunsWorkPostedWhileDraining(t *testing.T) {
	q := state.NewQueue()
	var order []int
	q.Post(func() {
		order = append(order, 1)
		q.Post(func() { order = append(order, 2) })
	})
	q.Post(nil)

	select {
	case <-q.Ready():
	default:
		t.Fatal("expected Ready to signal after Post")
	}
	assert.Equal(t, 2, q.Drain())
	assert.Equal(t, []int{1, 2}, order)
	assert.Zero(t, q.Len())
}
