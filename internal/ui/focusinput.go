package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hooksdemo/internal/state"
)

type focusInputKeys struct {
	Focus     key.Binding
	Clear     key.Binding
	AddName   key.Binding
	Increment key.Binding
	Blur      key.Binding
}

var defaultFocusInputKeys = focusInputKeys{
	Focus:     key.NewBinding(key.WithKeys("f", "i"), key.WithHelp("f", "focus input")),
	Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
	AddName:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add name")),
	Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
	Blur:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave input")),
}

// textField adapts a bubbles text input to state.Target. Focus yields a
// cursor command that the owning view collects after the handler ran.
type textField struct {
	model   *textinput.Model
	pending tea.Cmd
}

var _ state.Target = (*textField)(nil)

func (f *textField) Focus() {
	f.pending = f.model.Focus()
}

func (f *textField) SetContent(text string) {
	f.model.SetValue(text)
	f.model.CursorEnd()
}

func (f *textField) takeCmd() tea.Cmd {
	cmd := f.pending
	f.pending = nil
	return cmd
}

// FocusInputConfig configures the input widget.
type FocusInputConfig struct {
	Placeholder string
	Name        string // text written by AddName
	CharLimit   int
}

// FocusInputView demonstrates references that bypass the render cycle: a
// handle driving a text input imperatively, and a ref remembering the
// previous counter value without causing a render of its own.
type FocusInputView struct {
	sched    *state.Scheduler
	input    textinput.Model
	field    *textField
	handle   state.Handle[*textField]
	count    *state.Cell[int]
	previous *state.Ref[int]
	name     string
	keys     focusInputKeys
	cache    *renderCache
	life     state.Lifecycle
	mounted  bool
}

var _ Widget = (*FocusInputView)(nil)

// NewFocusInputView creates an unmounted widget. Its handle stays unbound
// until Mount.
func NewFocusInputView(s *state.Scheduler, cfg FocusInputConfig) *FocusInputView {
	in := textinput.New()
	in.Placeholder = cfg.Placeholder
	if cfg.CharLimit > 0 {
		in.CharLimit = cfg.CharLimit
	}
	in.Width = 30
	v := &FocusInputView{
		sched:    s,
		input:    in,
		count:    state.NewCell(s, 0),
		previous: state.NewRef(0),
		name:     cfg.Name,
		keys:     defaultFocusInputKeys,
	}
	v.field = &textField{model: &v.input}
	v.cache = newRenderCache(func() string {
		return renderFocusInput(v.input.View(), v.count.Get(), v.previous.Current(), v.keys)
	})
	return v
}

// Mount binds the handle to the text input and subscribes the view.
func (v *FocusInputView) Mount() {
	if v.mounted || v.life.Disposed() {
		return
	}
	v.mounted = true
	v.handle.Bind(v.field)
	v.life.OnDispose(v.handle.Unbind)
	v.life.OnDispose(v.count.Dispose)
	v.life.OnDispose(v.count.Subscribe(v.cache))
}

// Unmount unbinds the handle; later imperative calls are no-ops.
func (v *FocusInputView) Unmount() {
	v.mounted = false
	v.input.Blur()
	v.life.Dispose()
}

// Mounted reports whether the view is mounted.
func (v *FocusInputView) Mounted() bool { return v.mounted }

// Handle exposes the text input handle.
func (v *FocusInputView) Handle() *state.Handle[*textField] { return &v.handle }

// Value returns the text input content.
func (v *FocusInputView) Value() string { return v.input.Value() }

// Editing reports whether the text input has focus.
func (v *FocusInputView) Editing() bool { return v.input.Focused() }

// Count returns the current counter value.
func (v *FocusInputView) Count() int { return v.count.Get() }

// Previous returns the counter value before the last increment.
func (v *FocusInputView) Previous() int { return v.previous.Current() }

// FocusInput gives the text input focus through the handle.
func (v *FocusInputView) FocusInput() tea.Cmd {
	v.handle.Focus()
	v.cache.Invalidate()
	return v.field.takeCmd()
}

// ClearInput empties the text input through the handle.
func (v *FocusInputView) ClearInput() {
	v.handle.Clear()
	v.cache.Invalidate()
}

// AddName writes the configured name through the handle.
func (v *FocusInputView) AddName() {
	v.handle.SetContent(v.name)
	v.cache.Invalidate()
}

// Blur releases text input focus.
func (v *FocusInputView) Blur() {
	if v.input.Focused() {
		v.input.Blur()
		v.cache.Invalidate()
	}
}

// IncrementCount adds one, remembering the prior value in the ref.
func (v *FocusInputView) IncrementCount() {
	v.sched.Batch(func() {
		v.count.Update(func(prev int) int {
			v.previous.Set(prev)
			return prev + 1
		})
	})
}

// Title implements Widget.
func (v *FocusInputView) Title() string { return "useRef · Input" }

// Bindings implements Widget.
func (v *FocusInputView) Bindings() []key.Binding {
	if v.input.Focused() {
		return []key.Binding{v.keys.Blur}
	}
	return []key.Binding{v.keys.Focus, v.keys.Clear, v.keys.AddName, v.keys.Increment}
}

// Renders implements Widget.
func (v *FocusInputView) Renders() int { return v.cache.Renders() }

// Init implements View.
func (v *FocusInputView) Init() tea.Cmd { return nil }

// Update implements View. While the text input has focus every key but esc
// is typed into it.
func (v *FocusInputView) Update(msg tea.Msg) (View, tea.Cmd) {
	if !v.mounted {
		return v, nil
	}
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !v.input.Focused() {
		switch {
		case key.Matches(keyMsg, v.keys.Focus):
			return v, v.FocusInput()
		case key.Matches(keyMsg, v.keys.Clear):
			v.ClearInput()
		case key.Matches(keyMsg, v.keys.AddName):
			v.AddName()
		case key.Matches(keyMsg, v.keys.Increment):
			v.IncrementCount()
		}
		return v, nil
	}
	if isKey && key.Matches(keyMsg, v.keys.Blur) {
		v.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	v.cache.Invalidate()
	return v, cmd
}

// View implements View.
func (v *FocusInputView) View() string {
	return v.cache.View()
}

func renderFocusInput(input string, count, previous int, keys focusInputKeys) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		input,
		"",
		buttonRow(
			button(keys.Focus.Help().Key, "Focus input", ColorBlue, false),
			button(keys.Clear.Help().Key, "Clear", ColorWarning, false),
			button(keys.AddName.Help().Key, "Add name", ColorPink, false),
		),
		"",
		Styles.Section.Render("Keeping the previous value:"),
		fmt.Sprintf("Current value: %d", count),
		fmt.Sprintf("Previous value: %d", previous),
		button(keys.Increment.Help().Key, "Increment", ColorGreen, false),
	)
}
