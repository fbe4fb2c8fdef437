package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles help model with the shared key colors.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return m
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by the focused panel.
func RenderKeybindHelp(keyHandler *KeyHandler, panel string) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler, panel).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpContent := newHelpModel().ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	content := Styles.Muted.Render(keyHandler.CurrentSeq()) + " " + helpContent
	return boxStyle.Render(content)
}

// renderFooter renders a widget's own key bindings as a one-line help bar.
func renderFooter(bindings []key.Binding) string {
	if len(bindings) == 0 {
		return ""
	}
	return newHelpModel().ShortHelpView(bindings)
}
