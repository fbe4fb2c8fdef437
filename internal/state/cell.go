package state

// Cell holds one value and notifies its subscribers after every transition.
//
// Get always returns the latest value, including right after Set or Update
// inside an open batch; only notification is deferred.
type Cell[T any] struct {
	sched    *Scheduler
	value    T
	subs     []Subscriber
	disposed bool
}

// NewCell creates a cell bound to the scheduler that batches its notifications.
func NewCell[T any](s *Scheduler, initial T) *Cell[T] {
	return &Cell[T]{sched: s, value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value. No-op after Dispose.
func (c *Cell[T]) Set(v T) {
	if c.disposed {
		return
	}
	c.value = v
	c.sched.markDirty(c)
}

// Update derives the new value from the value held when the update is applied
// and returns it. No-op after Dispose; the frozen value is returned.
func (c *Cell[T]) Update(fn func(prev T) T) T {
	if c.disposed {
		return c.value
	}
	c.value = fn(c.value)
	c.sched.markDirty(c)
	return c.value
}

// Subscribe registers sub and returns a function that removes it.
// Subscribing the same subscriber twice has no extra effect.
func (c *Cell[T]) Subscribe(sub Subscriber) func() {
	if c.disposed || sub == nil {
		return func() {}
	}
	for _, s := range c.subs {
		if s == sub {
			return func() { c.unsubscribe(sub) }
		}
	}
	c.subs = append(c.subs, sub)
	return func() { c.unsubscribe(sub) }
}

// SubscribeFunc registers fn as a subscriber.
func (c *Cell[T]) SubscribeFunc(fn func()) func() {
	return c.Subscribe(&funcSubscriber{fn: fn})
}

func (c *Cell[T]) unsubscribe(sub Subscriber) {
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// Dispose clears all subscribers and freezes the value.
func (c *Cell[T]) Dispose() {
	c.disposed = true
	c.subs = nil
}

// Disposed reports whether Dispose has been called.
func (c *Cell[T]) Disposed() bool {
	return c.disposed
}

func (c *Cell[T]) subscribers() []Subscriber {
	return c.subs
}

// Watch calls fn with the cell's value after each flush in which it changed.
// fn must only observe; it runs during notification.
func Watch[T any](c *Cell[T], fn func(T)) func() {
	return c.SubscribeFunc(func() { fn(c.Get()) })
}
