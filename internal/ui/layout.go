package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// GridLayout places panels row-major in a grid with a fixed column count.
type GridLayout struct {
	Columns int
	panels  []Panel
}

var _ Layout = (*GridLayout)(nil)

// NewGridLayout creates a grid; each panel gets an equal share of the area
// below the page header.
func NewGridLayout(columns int, ids ...string) *GridLayout {
	if columns < 1 {
		columns = 1
	}
	g := &GridLayout{Columns: columns}
	rows := (len(ids) + columns - 1) / columns
	for i, id := range ids {
		col, row := i%columns, i/columns
		g.panels = append(g.panels, Panel{ID: id, Bounds: gridBounds(col, row, columns, rows)})
	}
	return g
}

func gridBounds(col, row, columns, rows int) BoundsFunc {
	return func(width, height int) (x, y, w, h int) {
		w = width / columns
		h = 0
		if rows > 0 {
			h = height / rows
		}
		return col * w, row * h, w, h
	}
}

// Panels implements Layout.
func (g *GridLayout) Panels() []Panel {
	return g.panels
}

// FocusOrder implements Layout.
func (g *GridLayout) FocusOrder() []string {
	ids := make([]string, len(g.panels))
	for i, p := range g.panels {
		ids[i] = p.ID
	}
	return ids
}

// Panel returns the panel with the given ID.
func (g *GridLayout) Panel(id string) (*Panel, bool) {
	for i := range g.panels {
		if g.panels[i].ID == id {
			return &g.panels[i], true
		}
	}
	return nil, false
}

// Rows groups panels by grid row.
func (g *GridLayout) Rows() [][]Panel {
	var rows [][]Panel
	for i := 0; i < len(g.panels); i += g.Columns {
		end := min(i+g.Columns, len(g.panels))
		rows = append(rows, g.panels[i:end])
	}
	return rows
}
