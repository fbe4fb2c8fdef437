package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hooksdemo/internal/diag"
	"hooksdemo/internal/state"
)

type timerKeys struct {
	Start key.Binding
	Stop  key.Binding
	Reset key.Binding
}

var defaultTimerKeys = timerKeys{
	Start: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
	Stop:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop")),
	Reset: key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),
}

// TimerDeps wires a TimerView to the app's loop, clock and diagnostics.
type TimerDeps struct {
	Scheduler *state.Scheduler
	Loop      state.Loop
	Clock     state.Clock
	Interval  time.Duration
	Milestone int // emit a diagnostic every Milestone ticks; <= 0 disables
	Emitter   diag.Emitter
}

// TimerView demonstrates a side effect tied to the widget lifecycle: a ticker
// that counts while running and is always released at unmount.
type TimerView struct {
	sched     *state.Scheduler
	elapsed   *state.Cell[int]
	ticker    *state.Ticker
	interval  time.Duration
	milestone int
	emitter   diag.Emitter
	spinner   spinner.Model
	keys      timerKeys
	cache     *renderCache
	life      state.Lifecycle
	mounted   bool
}

var _ Widget = (*TimerView)(nil)

// NewTimerView creates a stopped, unmounted timer at 00:00.
func NewTimerView(d TimerDeps) *TimerView {
	if d.Emitter == nil {
		d.Emitter = diag.Discard
	}
	elapsed := state.NewCell(d.Scheduler, 0)
	ticker := state.NewTicker(state.TickerConfig{
		Scheduler: d.Scheduler,
		Loop:      d.Loop,
		Clock:     d.Clock,
		Interval:  d.Interval,
		Count:     elapsed,
	})
	v := &TimerView{
		sched:     d.Scheduler,
		elapsed:   elapsed,
		ticker:    ticker,
		interval:  ticker.Interval(),
		milestone: d.Milestone,
		emitter:   d.Emitter,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		keys:      defaultTimerKeys,
	}
	v.cache = newRenderCache(func() string {
		return renderTimer(time.Duration(v.elapsed.Get())*v.interval, v.ticker.Running(), v.spinner.View(), v.keys)
	})
	return v
}

// Mount subscribes the view and the milestone observer. The ticker is closed
// at unmount whatever state it is in.
func (v *TimerView) Mount() {
	if v.mounted || v.life.Disposed() {
		return
	}
	v.mounted = true
	v.life.OnDispose(v.elapsed.Dispose)
	v.life.OnDispose(v.ticker.Close)
	v.life.OnDispose(v.elapsed.Subscribe(v.cache))
	v.life.OnDispose(v.ticker.RunningCell().Subscribe(v.cache))
	v.life.OnDispose(state.Watch(v.elapsed, v.observeMilestone))
	v.emit(diag.KindMount, "timer mounted", nil)
}

// Unmount stops the ticker for good and releases the cells.
func (v *TimerView) Unmount() {
	if !v.mounted {
		v.life.Dispose()
		return
	}
	v.mounted = false
	v.life.Dispose()
	v.emit(diag.KindUnmount, "timer unmounted", map[string]string{
		"elapsed": strconv.Itoa(v.elapsed.Get()),
	})
}

// Mounted reports whether the view is mounted.
func (v *TimerView) Mounted() bool { return v.mounted }

// Elapsed returns the number of ticks counted.
func (v *TimerView) Elapsed() int { return v.elapsed.Get() }

// State returns the ticker state.
func (v *TimerView) State() state.TickerState { return v.ticker.State() }

// Ticker exposes the underlying ticker.
func (v *TimerView) Ticker() *state.Ticker { return v.ticker }

// Start begins counting. Returns the spinner's first tick while running.
func (v *TimerView) Start() tea.Cmd {
	if !v.mounted || !v.ticker.Start() {
		return nil
	}
	v.emit(diag.KindTimerStart, "timer started", nil)
	return v.spinner.Tick
}

// Stop pauses counting.
func (v *TimerView) Stop() {
	if v.ticker.Stop() {
		v.emit(diag.KindTimerStop, "timer stopped", map[string]string{
			"elapsed": strconv.Itoa(v.elapsed.Get()),
		})
	}
}

// Reset stops and returns to 00:00.
func (v *TimerView) Reset() {
	if !v.mounted {
		return
	}
	v.ticker.Reset()
	v.emit(diag.KindTimerReset, "timer reset", nil)
}

func (v *TimerView) observeMilestone(n int) {
	if v.milestone <= 0 || n <= 0 || n%v.milestone != 0 {
		return
	}
	v.emit(diag.KindTimerMilestone,
		milestoneMessage(time.Duration(n)*v.interval),
		map[string]string{"elapsed": strconv.Itoa(n)})
}

// milestoneMessage describes d in whole seconds when it is one, and as a
// duration otherwise so sub-second intervals never repeat a message.
func milestoneMessage(d time.Duration) string {
	switch {
	case d == time.Second:
		return "1 second elapsed"
	case d%time.Second == 0:
		return fmt.Sprintf("%d seconds elapsed", d/time.Second)
	default:
		return d.String() + " elapsed"
	}
}

func (v *TimerView) emit(kind diag.Kind, msg string, attrs map[string]string) {
	v.emitter.Emit(diag.Event{Kind: kind, Widget: PanelTimer, Message: msg, Attributes: attrs})
}

// Title implements Widget.
func (v *TimerView) Title() string { return "useEffect · Timer" }

// Bindings implements Widget.
func (v *TimerView) Bindings() []key.Binding {
	start, stop := v.keys.Start, v.keys.Stop
	start.SetEnabled(!v.ticker.Running())
	stop.SetEnabled(v.ticker.Running())
	return []key.Binding{start, stop, v.keys.Reset}
}

// Renders implements Widget.
func (v *TimerView) Renders() int { return v.cache.Renders() }

// Init implements View.
func (v *TimerView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *TimerView) Update(msg tea.Msg) (View, tea.Cmd) {
	if !v.mounted {
		return v, nil
	}
	switch msg := msg.(type) {
	case spinner.TickMsg:
		// Let the spinner loop die out once stopped.
		if !v.ticker.Running() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		v.cache.Invalidate()
		return v, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Start):
			return v, v.Start()
		case key.Matches(msg, v.keys.Stop):
			v.Stop()
		case key.Matches(msg, v.keys.Reset):
			v.Reset()
		}
	}
	return v, nil
}

// View implements View.
func (v *TimerView) View() string {
	return v.cache.View()
}

// formatElapsed renders d as MM:SS, truncating to whole seconds.
func formatElapsed(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func renderTimer(elapsed time.Duration, running bool, spin string, keys timerKeys) string {
	status := Styles.Muted.Render("stopped")
	if running {
		status = Styles.Status.Render(spin + " running")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		Styles.Big.Render(formatElapsed(elapsed))+"  "+status,
		"",
		buttonRow(
			button(keys.Start.Help().Key, "Start", ColorGreen, running),
			button(keys.Stop.Help().Key, "Stop", ColorDanger, !running),
			button(keys.Reset.Help().Key, "Reset", ColorGray, false),
		),
		"",
		Styles.Hint.Render("Milestones appear in the status line."),
	)
}
