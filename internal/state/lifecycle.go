package state

import "sync"

// Lifecycle collects cleanups acquired while a widget is mounted and releases
// them exactly once, in reverse order, when the widget is torn down.
type Lifecycle struct {
	mu        sync.Mutex
	disposers []func()
	disposed  bool
}

// OnDispose registers cleanup and returns a function that unregisters it.
// If the lifecycle is already disposed, cleanup runs immediately.
func (l *Lifecycle) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(l.disposers)
	l.disposers = append(l.disposers, cleanup)
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if index < len(l.disposers) {
			l.disposers[index] = nil
		}
	}
}

// Dispose runs the registered cleanups in LIFO order. Later calls are no-ops.
func (l *Lifecycle) Dispose() {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	l.disposed = true
	disposers := l.disposers
	l.disposers = nil
	l.mu.Unlock()

	for i := len(disposers) - 1; i >= 0; i-- {
		if disposers[i] != nil {
			disposers[i]()
		}
	}
}

// Disposed reports whether Dispose has run.
func (l *Lifecycle) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}
