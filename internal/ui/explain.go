package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// explanation describes one of the primitives shown on the page.
type explanation struct {
	Hook  string
	Color string
	Text  string
}

var explanations = []explanation{
	{
		Hook:  "useState",
		Color: ColorBlue,
		Text: "Keeps changeable data inside a component and re-renders it " +
			"whenever that data changes.",
	},
	{
		Hook:  "useEffect",
		Color: ColorGreen,
		Text: "Runs side effects such as API calls, timers, or subscribing " +
			"to external data, and cleans them up again.",
	},
	{
		Hook:  "useRef",
		Color: ColorPurple,
		Text: "References an input directly, or keeps a value that does not " +
			"cause a re-render when it changes, such as the previous value.",
	},
	{
		Hook:  "useContext",
		Color: ColorWarning,
		Text: "Reads a value shared through the component tree without " +
			"passing it down through every level.",
	},
}

// ExplainView lists what each demo panel shows. It is pushed as an overlay.
type ExplainView struct{}

var _ View = (*ExplainView)(nil)

// Init implements View.
func (e *ExplainView) Init() tea.Cmd { return nil }

// Update implements View.
func (e *ExplainView) Update(tea.Msg) (View, tea.Cmd) { return e, nil }

// View implements View.
func (e *ExplainView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("About the hooks"))
	for _, ex := range explanations {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ex.Color)).Render(ex.Hook))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(60).Render(ex.Text))
	}
	b.WriteString("\n\n" + Styles.Hint.Render("? or Esc: close"))
	return Styles.Box.Render(b.String())
}
