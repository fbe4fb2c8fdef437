package diag

import "sync"

// Multi fans out events to several emitters.
// It handles nil emitters gracefully by skipping them.
type Multi struct {
	emitters []Emitter
}

var _ Emitter = (*Multi)(nil)

// NewMulti creates a Multi forwarding to every non-nil emitter.
func NewMulti(emitters ...Emitter) *Multi {
	filtered := make([]Emitter, 0, len(emitters))
	for _, e := range emitters {
		if e != nil {
			filtered = append(filtered, e)
		}
	}
	return &Multi{emitters: filtered}
}

// Emit forwards ev to every emitter. A panicking emitter does not stop the others.
func (m *Multi) Emit(ev Event) {
	ev = stamp(ev)
	for _, e := range m.emitters {
		safeEmit(e, ev)
	}
}

func safeEmit(e Emitter, ev Event) {
	defer func() {
		_ = recover()
	}()
	e.Emit(ev)
}

// ChanEmitter emits events to a channel (non-blocking; drops if full).
type ChanEmitter struct {
	Ch chan<- Event
}

// Emit sends the event to the channel.
func (e *ChanEmitter) Emit(ev Event) {
	select {
	case e.Ch <- stamp(ev):
	default:
		// Channel full; the status line only needs the latest events.
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit implements Emitter.
func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, stamp(ev))
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]Kind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}
