package ui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hooksdemo/internal/config"
	"hooksdemo/internal/diag"
	"hooksdemo/internal/state"
	"hooksdemo/internal/ui/textutil"
)

const (
	pageTitle     = "React Hooks Examples"
	defaultWidth  = 100
	defaultHeight = 32
	headerHeight  = 3 // title, status, blank
	diagBuffer    = 64
)

// Options configures NewAppModel.
type Options struct {
	Config  *config.Config // nil uses config.DefaultConfig
	Clock   state.Clock    // nil uses the wall clock
	Emitter diag.Emitter   // receives every diagnostic event besides the status line
	Logger  *slog.Logger
}

// AppModel is the root model: four demo panels in a grid, one shared
// scheduler, and a loop queue that carries ticker callbacks back onto the
// Update goroutine.
type AppModel struct {
	Sched  *state.Scheduler
	Queue  *state.Queue
	Clock  state.Clock
	Config *config.Config

	// Root is the page scope; ProfileScope nests under it and provides UserContext.
	Root         *state.Scope
	ProfileScope *state.Scope
	UserProvider *state.Provider[User]

	Counter *CounterView
	Timer   *TimerView // nil while unmounted
	Input   *FocusInputView
	Profile *UserProfileView

	Layout     *GridLayout
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Status     string

	emitter diag.Emitter
	events  chan diag.Event
	logger  *slog.Logger
	width   int
	height  int
	closed  bool
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the page and mounts every widget.
func NewAppModel(opts Options) *AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = state.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	events := make(chan diag.Event, diagBuffer)
	sched := state.NewScheduler()
	root := state.NewScope(nil)
	profileScope := root.Child()

	m := &AppModel{
		Sched:        sched,
		Queue:        state.NewQueue(),
		Clock:        clock,
		Config:       cfg,
		Root:         root,
		ProfileScope: profileScope,
		UserProvider: state.Provide(profileScope, UserContext, sched, User{}),
		Layout:       NewGridLayout(2, PanelCounter, PanelTimer, PanelInput, PanelProfile),
		Status:       "Press ? for an explanation of each hook",
		emitter:      diag.NewMulti(opts.Emitter, &diag.ChanEmitter{Ch: events}),
		events:       events,
		logger:       logger,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.Focus = NewFocusManager(m.Layout.FocusOrder())
	m.Focus.OnChange = func(from, _ string) {
		if from == PanelInput {
			m.Input.Blur()
		}
	}
	m.KeyHandler = NewKeyHandler(newPageRegistry())

	m.Counter = NewCounterView(sched)
	m.Input = NewFocusInputView(sched, FocusInputConfig{
		Placeholder: cfg.Input.Placeholder,
		Name:        cfg.Input.Name,
		CharLimit:   cfg.Input.CharLimit,
	})
	m.Profile = NewUserProfileView(profileScope, User{
		Name:  cfg.Profile.Name,
		Email: cfg.Profile.Email,
	}, m.emitter)

	m.mount(PanelCounter, m.Counter)
	m.mount(PanelTimer, m.newTimer())
	m.mount(PanelInput, m.Input)
	m.mount(PanelProfile, m.Profile)
	return m
}

func newPageRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("?", msgCmd(ToggleHelpMsg{}), "Explain hooks")
	reg.BindWithDesc("SPC ?", msgCmd(ToggleHelpMsg{}), "Explain hooks")
	reg.BindWithDesc("tab", msgCmd(FocusNextMsg{}), "Next panel")
	reg.BindWithDesc("shift+tab", msgCmd(FocusPrevMsg{}), "Previous panel")
	reg.BindWithDesc("SPC t", msgCmd(ToggleTimerMsg{}), "Mount/unmount timer")
	reg.BindWithDesc("SPC l", msgCmd(LoginMsg{}), "Sign in")
	reg.BindWithDesc("SPC o", msgCmd(RequestLogoutMsg{}), "Sign out")
	reg.BindForPanels("SPC r", msgCmd(ResetFocusedMsg{}), "Reset", []string{PanelCounter, PanelTimer})
	return reg
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) newTimer() *TimerView {
	return NewTimerView(TimerDeps{
		Scheduler: m.Sched,
		Loop:      m.Queue,
		Clock:     m.Clock,
		Interval:  m.Config.Timer.Interval.Duration,
		Milestone: m.Config.Timer.Milestone,
		Emitter:   m.emitter,
	})
}

func (m *AppModel) mount(id string, w Widget) {
	p, ok := m.Layout.Panel(id)
	if !ok {
		return
	}
	if t, isTimer := w.(*TimerView); isTimer {
		m.Timer = t
	}
	p.Widget = w
	w.Mount()
	m.logger.Debug("widget mounted", "panel", id)
}

func (m *AppModel) unmount(id string) {
	p, ok := m.Layout.Panel(id)
	if !ok || p.Widget == nil {
		return
	}
	p.Widget.Unmount()
	p.Widget = nil
	if id == PanelTimer {
		m.Timer = nil
	}
	m.logger.Debug("widget unmounted", "panel", id)
}

// ToggleTimer unmounts the timer, or mounts a fresh one at 00:00.
func (m *AppModel) ToggleTimer() {
	if m.Timer != nil {
		m.unmount(PanelTimer)
		return
	}
	m.mount(PanelTimer, m.newTimer())
}

// Close unmounts every widget and disposes the scopes. Safe to call twice.
func (m *AppModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.Sched.Batch(func() {
		for _, p := range m.Layout.Panels() {
			m.unmount(p.ID)
		}
		m.Root.Dispose()
	})
}

// Resize sets the page dimensions.
func (m *AppModel) Resize(width, height int) {
	m.width, m.height = width, height
}

// FocusedWidget returns the widget of the focused panel, or nil.
func (m *AppModel) FocusedWidget() Widget {
	p, ok := m.Layout.Panel(m.Focus.Current)
	if !ok {
		return nil
	}
	return p.Widget
}

func (m *AppModel) waitForLoop() tea.Cmd {
	q := m.Queue
	return func() tea.Msg {
		<-q.Ready()
		return loopReadyMsg{}
	}
}

func (m *AppModel) waitForDiag() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		return diagMsg(<-ch)
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.waitForLoop(), a.waitForDiag(), a.Input.Init())
}

// Update implements tea.Model. Each message is handled inside one batch, so
// widgets see a single notification per key press or tick.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.Sched.Batch(func() {
		cmd = a.update(msg)
	})
	return a, cmd
}

func (a *appModelAdapter) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Resize(msg.Width, msg.Height)
		return nil
	case loopReadyMsg:
		a.Queue.Drain()
		return a.waitForLoop()
	case diagMsg:
		a.Status = msg.Message
		return a.waitForDiag()
	case spinner.TickMsg:
		if a.Timer == nil {
			return nil
		}
		_, cmd := a.Timer.Update(msg)
		return cmd
	case FocusNextMsg:
		a.Focus.Next()
		return nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return nil
	case ToggleTimerMsg:
		a.ToggleTimer()
		return nil
	case ToggleHelpMsg:
		if top, ok := a.Overlays.Peek(); ok {
			if _, isHelp := top.View.(*ExplainView); isHelp {
				a.Overlays.Pop()
				return nil
			}
		}
		a.Overlays.Push(Overlay{View: &ExplainView{}, Dismiss: []string{"esc", "?"}})
		return nil
	case ResetFocusedMsg:
		switch a.Focus.Current {
		case PanelCounter:
			a.Counter.Reset()
		case PanelTimer:
			if a.Timer != nil {
				a.Timer.Reset()
			}
		}
		return nil
	case LoginMsg:
		a.Profile.Login()
		return nil
	case RequestLogoutMsg:
		return a.Profile.RequestLogout()
	case ShowLogoutConfirmMsg:
		a.Overlays.Push(Overlay{View: NewLogoutConfirmModal(msg.Name), Dismiss: []string{"esc"}})
		return nil
	case LogoutMsg:
		a.popConfirm()
		a.Profile.Logout()
		return nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blink and other text input traffic.
	_, cmd := a.Input.Update(msg)
	return cmd
}

func (a *appModelAdapter) popConfirm() {
	if top, ok := a.Overlays.Peek(); ok {
		if _, isConfirm := top.View.(*ConfirmModal); isConfirm {
			a.Overlays.Pop()
		}
	}
}

// handleKey routes a key press: overlays first, then the text input while it
// is being edited, then page bindings, then the focused widget.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, handled := a.Overlays.HandleKey(msg); handled {
		return cmd
	}
	if a.Focus.Focused(PanelInput) && a.Input.Editing() {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		_, cmd := a.Input.Update(msg)
		return cmd
	}
	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Focus.Current); consumed {
			return cmd
		}
	}
	w := a.FocusedWidget()
	if w == nil {
		return nil
	}
	_, cmd := w.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}

	var b strings.Builder
	b.WriteString(Styles.PageTitle.Width(a.width).Render(pageTitle))
	b.WriteString("\n")
	b.WriteString(Styles.Status.Render(textutil.Truncate(a.Status, a.width)))
	b.WriteString("\n\n")

	gridHeight := max(a.height-headerHeight-2, 0)
	rows := make([]string, 0, 2)
	for _, row := range a.Layout.Rows() {
		cells := make([]string, 0, len(row))
		for _, p := range row {
			cells = append(cells, a.renderPanel(p, gridHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Focus.Current))
	} else {
		b.WriteString("\n" + Styles.Hint.Render("tab: next panel  SPC: commands  ?: explain  q: quit"))
	}
	return b.String()
}

func (a *appModelAdapter) renderPanel(p Panel, gridHeight int) string {
	_, _, w, h := p.Bounds(a.width, gridHeight)
	focused := a.Focus.Focused(p.ID)
	style := panelStyle(p.ID, focused).Width(max(w-2, 10))
	if h > 2 {
		style = style.Height(h - 2)
	}

	var title, body, footer string
	if p.Widget == nil {
		title = "useEffect · Timer"
		body = Styles.Empty.Render("Timer unmounted. Press SPC t to mount a fresh one.")
	} else {
		title = p.Widget.Title()
		body = p.Widget.View()
		if focused {
			footer = renderFooter(p.Widget.Bindings())
		}
	}
	titleStyle := Styles.Title
	if c, ok := panelColors[p.ID]; ok {
		titleStyle = titleStyle.Foreground(lipgloss.Color(c))
	}
	content := titleStyle.Render(textutil.Truncate(title, max(w-4, 1))) + "\n\n" + body
	if footer != "" {
		content += "\n\n" + footer
	}
	return style.Render(content)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
