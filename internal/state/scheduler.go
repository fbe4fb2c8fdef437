package state

// Subscriber is notified after a flush in which a cell it subscribed to changed.
// Implementations are compared by identity, so use pointer receivers.
type Subscriber interface {
	Invalidate()
}

// funcSubscriber adapts a plain func to Subscriber with pointer identity.
type funcSubscriber struct {
	fn func()
}

func (f *funcSubscriber) Invalidate() { f.fn() }

// notifier is implemented by every cell so the scheduler can collect
// subscribers without knowing the cell's value type.
type notifier interface {
	subscribers() []Subscriber
}

// Scheduler serializes cell transitions and batches notifications.
//
// Scheduler is NOT thread-safe. All cells sharing a scheduler must only be
// touched from the loop goroutine; background work posts through a Loop.
type Scheduler struct {
	depth    int
	flushing bool
	dirty    []notifier
	marked   map[notifier]struct{}
	flushes  int
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{marked: make(map[notifier]struct{})}
}

// Batch runs fn and defers notifications until the outermost batch returns.
func (s *Scheduler) Batch(fn func()) {
	s.depth++
	defer func() {
		s.depth--
		if s.depth == 0 {
			s.flush()
		}
	}()
	fn()
}

// Flushes returns the number of notification passes run so far.
func (s *Scheduler) Flushes() int {
	return s.flushes
}

// markDirty records a changed cell and flushes right away when no batch is open.
func (s *Scheduler) markDirty(n notifier) {
	if _, ok := s.marked[n]; !ok {
		s.marked[n] = struct{}{}
		s.dirty = append(s.dirty, n)
	}
	if s.depth == 0 {
		s.flush()
	}
}

// flush notifies each subscriber of the dirty cells once. Transitions made by
// subscribers are picked up by another pass once the current one finishes.
func (s *Scheduler) flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for len(s.dirty) > 0 {
		dirty := s.dirty
		s.dirty = nil
		clear(s.marked)

		seen := make(map[Subscriber]struct{})
		var pending []Subscriber
		for _, n := range dirty {
			for _, sub := range n.subscribers() {
				if _, ok := seen[sub]; ok {
					continue
				}
				seen[sub] = struct{}{}
				pending = append(pending, sub)
			}
		}
		s.flushes++
		for _, sub := range pending {
			sub.Invalidate()
		}
	}
}
