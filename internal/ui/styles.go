package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for the focused panel border
	ColorDanger    = "196" // Red - for destructive actions
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDisabled  = "238" // Dark gray - for disabled buttons
	ColorWarning   = "208" // Orange - for warning details

	ColorGreen  = "42"
	ColorBlue   = "33"
	ColorYellow = "220"
	ColorPurple = "141"
	ColorPink   = "212"
	ColorGray   = "245"
)

// panelColors gives each demo panel its border tint.
var panelColors = map[string]string{
	PanelCounter: ColorGreen,
	PanelTimer:   ColorYellow,
	PanelInput:   ColorPurple,
	PanelProfile: ColorBlue,
}

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	// Title styles
	PageTitle    lipgloss.Style // Bold, centered page heading
	Title        lipgloss.Style // Bold accent color - for panel titles
	TitleWarning lipgloss.Style // Bold danger color - for warning titles

	// Box styles
	Panel     lipgloss.Style // Unfocused panel
	Box       lipgloss.Style // Standard overlay box (accent border)
	BoxDanger lipgloss.Style // Confirmation box (danger border)

	// Text styles
	Big      lipgloss.Style // Large value display (counter, timer)
	Muted    lipgloss.Style // Dimmed text (muted color)
	Normal   lipgloss.Style // Normal text (text color)
	Hint     lipgloss.Style // Help/hint text (muted color)
	Status   lipgloss.Style // Status line (accent color)
	Section  lipgloss.Style // Section headers (highlight color)
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Label    lipgloss.Style // Modal label/content (default)
	Details  lipgloss.Style // Warning details (warning color)
	Disabled lipgloss.Style // Disabled buttons
}{
	PageTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Align(lipgloss.Center),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Big: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabled)).
		Strikethrough(true),
}

// panelStyle returns the border style for a panel, highlighted when focused.
func panelStyle(id string, focused bool) lipgloss.Style {
	color := ColorMuted
	if c, ok := panelColors[id]; ok {
		color = c
	}
	if focused {
		return Styles.Panel.
			BorderForeground(lipgloss.Color(color)).
			BorderStyle(lipgloss.ThickBorder())
	}
	return Styles.Panel.BorderForeground(lipgloss.Color(color))
}

// button renders a key-labelled action, e.g. "[+] Increase".
func button(key, label, color string, disabled bool) string {
	text := "[" + key + "] " + label
	if disabled {
		return Styles.Disabled.Render(text)
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color)).
		Render(text)
}

// buttonRow joins buttons with two spaces.
func buttonRow(buttons ...string) string {
	out := ""
	for i, b := range buttons {
		if i > 0 {
			out += "  "
		}
		out += b
	}
	return out
}
