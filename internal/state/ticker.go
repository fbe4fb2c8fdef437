package state

import "time"

// TickerState is the run state of a Ticker.
type TickerState int

const (
	Stopped TickerState = iota
	Running
)

func (s TickerState) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// TickerConfig wires a Ticker to its collaborators.
type TickerConfig struct {
	Scheduler *Scheduler
	Loop      Loop
	Clock     Clock
	Interval  time.Duration
	// Count is incremented by one on every tick.
	Count *Cell[int]
}

// Ticker increments a cell once per interval while running.
//
// Timer callbacks never touch state directly: they post to the Loop with the
// generation they were armed under, and the posted function discards itself
// unless that generation is still current. Stop and Close bump the generation,
// so a fire that was already queued when they ran is dropped.
//
// All methods must be called from the loop goroutine.
type Ticker struct {
	sched    *Scheduler
	loop     Loop
	clock    Clock
	interval time.Duration
	count    *Cell[int]
	running  *Cell[bool]

	timer    Timer
	deadline time.Time
	gen      uint64
	closed   bool
	ticks    int
	dropped  int
}

// NewTicker creates a stopped ticker. A nil Clock uses SystemClock.
func NewTicker(cfg TickerConfig) *Ticker {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return &Ticker{
		sched:    cfg.Scheduler,
		loop:     cfg.Loop,
		clock:    cfg.Clock,
		interval: cfg.Interval,
		count:    cfg.Count,
		running:  NewCell(cfg.Scheduler, false),
	}
}

// Start moves Stopped to Running and arms the first tick. It returns false if
// the ticker is already running or closed.
func (t *Ticker) Start() bool {
	if t.closed || t.running.Get() {
		return false
	}
	t.gen++
	t.deadline = t.clock.Now()
	t.arm(t.gen)
	t.running.Set(true)
	return true
}

// Stop moves Running to Stopped and cancels the pending tick. It returns false
// if the ticker was not running.
func (t *Ticker) Stop() bool {
	if !t.running.Get() {
		return false
	}
	t.release()
	t.running.Set(false)
	return true
}

// Reset stops the ticker and zeroes the count in one batch.
func (t *Ticker) Reset() {
	t.sched.Batch(func() {
		t.Stop()
		t.count.Set(0)
	})
}

// Close stops the ticker for good. Start has no effect afterwards.
func (t *Ticker) Close() {
	if t.closed {
		return
	}
	t.release()
	t.closed = true
	t.running.Set(false)
	t.running.Dispose()
}

// State returns Running or Stopped.
func (t *Ticker) State() TickerState {
	if t.running.Get() {
		return Running
	}
	return Stopped
}

// Running reports whether the ticker is running.
func (t *Ticker) Running() bool {
	return t.running.Get()
}

// RunningCell exposes the running flag so views can subscribe to it.
func (t *Ticker) RunningCell() *Cell[bool] {
	return t.running
}

// Closed reports whether Close has been called.
func (t *Ticker) Closed() bool {
	return t.closed
}

// Armed reports whether a timer handle is outstanding.
func (t *Ticker) Armed() bool {
	return t.timer != nil
}

// Interval returns the tick interval.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Ticks returns how many ticks were applied.
func (t *Ticker) Ticks() int {
	return t.ticks
}

// Dropped returns how many timer fires were discarded as stale.
func (t *Ticker) Dropped() int {
	return t.dropped
}

// arm schedules the next fire one interval after the previous deadline, so
// time spent waiting in the loop is not added to the period.
func (t *Ticker) arm(gen uint64) {
	t.deadline = t.deadline.Add(t.interval)
	delay := max(t.deadline.Sub(t.clock.Now()), 0)
	t.timer = t.clock.AfterFunc(delay, func() {
		t.loop.Post(func() { t.fire(gen) })
	})
}

func (t *Ticker) release() {
	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Ticker) fire(gen uint64) {
	if t.closed || gen != t.gen || !t.running.Get() {
		t.dropped++
		return
	}
	// Re-arm before applying the tick so a subscriber that stops the ticker
	// cancels the next fire.
	t.arm(gen)
	t.ticks++
	t.sched.Batch(func() {
		t.count.Update(func(n int) int { return n + 1 })
	})
}
