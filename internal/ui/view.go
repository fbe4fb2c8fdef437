package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or major UI region with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Widget is a View that acquires resources at Mount and releases all of them
// at Unmount. A widget instance is mounted at most once; remounting means
// building a fresh instance.
type Widget interface {
	View
	Mount()
	Unmount()
	Mounted() bool
	// Title is shown in the panel header.
	Title() string
	// Bindings lists the widget's own keys for the footer help.
	Bindings() []key.Binding
	// Renders counts how many times the widget body was rebuilt.
	Renders() int
}
