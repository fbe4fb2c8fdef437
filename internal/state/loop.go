package state

import "sync"

// Loop serializes work onto the goroutine that owns the UI state.
// Post may be called from any goroutine.
type Loop interface {
	Post(fn func())
}

// Queue is a FIFO Loop drained explicitly by its owner.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	ready   chan struct{}
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Post appends fn and wakes any waiter on Ready.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Ready receives a value whenever work has been posted since the last receive.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}

// Len returns the number of posted functions not yet run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs posted functions on the calling goroutine until the queue is
// empty, including functions posted while draining. It returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()
		if len(batch) == 0 {
			return n
		}
		for _, fn := range batch {
			fn()
			n++
		}
	}
}
