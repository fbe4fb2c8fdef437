package diag

import (
	"context"
	"log/slog"
	"sort"
)

// LogEmitter writes events through slog. Milestones and session changes log
// at info, lifecycle events at debug.
type LogEmitter struct {
	Logger *slog.Logger
}

// NewLogEmitter creates a LogEmitter; a nil logger uses slog.Default().
func NewLogEmitter(logger *slog.Logger) *LogEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEmitter{Logger: logger}
}

// Emit implements Emitter.
func (e *LogEmitter) Emit(ev Event) {
	level := slog.LevelInfo
	switch ev.Kind {
	case KindMount, KindUnmount, KindTimerStart, KindTimerStop:
		level = slog.LevelDebug
	}
	args := []any{
		slog.String("kind", string(ev.Kind)),
		slog.String("widget", ev.Widget),
	}
	keys := make([]string, 0, len(ev.Attributes))
	for k := range ev.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, slog.String(k, ev.Attributes[k]))
	}
	e.Logger.Log(context.Background(), level, ev.Message, args...)
}
