// Package diag carries diagnostic events out of the widgets: to the log, to
// the page's status line, and optionally to an OTLP collector.
package diag

import "time"

// Kind identifies the kind of diagnostic event.
type Kind string

const (
	KindTimerStart     Kind = "timer_start"
	KindTimerStop      Kind = "timer_stop"
	KindTimerReset     Kind = "timer_reset"
	KindTimerMilestone Kind = "timer_milestone" // elapsed ticks crossed a multiple of the milestone
	KindLogin          Kind = "login"
	KindLogout         Kind = "logout"
	KindMount          Kind = "mount"
	KindUnmount        Kind = "unmount"
)

// Event is one diagnostic notification.
type Event struct {
	Kind       Kind
	Widget     string
	Message    string
	Timestamp  time.Time
	Attributes map[string]string
}

// Emitter receives diagnostic events. Emit must not block the caller.
type Emitter interface {
	Emit(Event)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(Event)

// Emit implements Emitter.
func (f EmitterFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(Event) {})

// stamp fills in the timestamp if the caller left it zero.
func stamp(ev Event) Event {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	return ev
}
