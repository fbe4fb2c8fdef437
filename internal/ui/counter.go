package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hooksdemo/internal/state"
)

type counterKeys struct {
	Decrement key.Binding
	Reset     key.Binding
	Increment key.Binding
	Double    key.Binding
}

var defaultCounterKeys = counterKeys{
	Decrement: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrease")),
	Reset:     key.NewBinding(key.WithKeys("0", "r"), key.WithHelp("0", "reset")),
	Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increase")),
	Double:    key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "double")),
}

// CounterView demonstrates local component state: a count and a message that
// always describes the most recent operation.
type CounterView struct {
	sched   *state.Scheduler
	count   *state.Cell[int]
	message *state.Cell[string]
	keys    counterKeys
	cache   *renderCache
	life    state.Lifecycle
	mounted bool
}

var _ Widget = (*CounterView)(nil)

// NewCounterView creates an unmounted counter at zero.
func NewCounterView(s *state.Scheduler) *CounterView {
	v := &CounterView{
		sched:   s,
		count:   state.NewCell(s, 0),
		message: state.NewCell(s, "Starting at 0"),
		keys:    defaultCounterKeys,
	}
	v.cache = newRenderCache(func() string {
		return renderCounter(v.count.Get(), v.message.Get(), v.keys)
	})
	return v
}

// Mount subscribes the view to its cells.
func (v *CounterView) Mount() {
	if v.mounted || v.life.Disposed() {
		return
	}
	v.mounted = true
	v.life.OnDispose(v.count.Subscribe(v.cache))
	v.life.OnDispose(v.message.Subscribe(v.cache))
	v.life.OnDispose(v.count.Dispose)
	v.life.OnDispose(v.message.Dispose)
}

// Unmount releases the cells.
func (v *CounterView) Unmount() {
	v.mounted = false
	v.life.Dispose()
}

// Mounted reports whether the view is mounted.
func (v *CounterView) Mounted() bool { return v.mounted }

// Count returns the displayed value.
func (v *CounterView) Count() int { return v.count.Get() }

// Message returns the displayed message.
func (v *CounterView) Message() string { return v.message.Get() }

// Increment adds one.
func (v *CounterView) Increment() {
	v.apply(func(n int) int { return n + 1 }, "Increased to %d")
}

// Decrement subtracts one.
func (v *CounterView) Decrement() {
	v.apply(func(n int) int { return n - 1 }, "Decreased to %d")
}

// Double multiplies by two.
func (v *CounterView) Double() {
	v.apply(func(n int) int { return n * 2 }, "Doubled to %d")
}

// Reset returns to zero.
func (v *CounterView) Reset() {
	v.sched.Batch(func() {
		v.count.Set(0)
		v.message.Set("Reset to 0")
	})
}

// apply updates the count and formats the message from the value the update
// produced, never from a snapshot taken before it.
func (v *CounterView) apply(op func(int) int, format string) {
	v.sched.Batch(func() {
		next := v.count.Update(op)
		v.message.Set(fmt.Sprintf(format, next))
	})
}

// Title implements Widget.
func (v *CounterView) Title() string { return "useState · Counter" }

// Bindings implements Widget.
func (v *CounterView) Bindings() []key.Binding {
	return []key.Binding{v.keys.Decrement, v.keys.Reset, v.keys.Increment, v.keys.Double}
}

// Renders implements Widget.
func (v *CounterView) Renders() int { return v.cache.Renders() }

// Init implements View.
func (v *CounterView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *CounterView) Update(msg tea.Msg) (View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !v.mounted {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, v.keys.Increment):
		v.Increment()
	case key.Matches(keyMsg, v.keys.Decrement):
		v.Decrement()
	case key.Matches(keyMsg, v.keys.Double):
		v.Double()
	case key.Matches(keyMsg, v.keys.Reset):
		v.Reset()
	}
	return v, nil
}

// View implements View.
func (v *CounterView) View() string {
	return v.cache.View()
}

func renderCounter(count int, message string, keys counterKeys) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Big.Render(fmt.Sprintf("%d", count)),
		Styles.Muted.Render(message),
		"",
		buttonRow(
			button(keys.Decrement.Help().Key, "Decrease", ColorDanger, false),
			button(keys.Reset.Help().Key, "Reset", ColorGray, false),
			button(keys.Increment.Help().Key, "Increase", ColorBlue, false),
			button(keys.Double.Help().Key, "Double", ColorYellow, false),
		),
	)
}
