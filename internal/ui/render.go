package ui

import "hooksdemo/internal/state"

// renderCache memoizes a widget body until a cell it reads changes.
// It is the state.Subscriber each widget registers with its cells.
type renderCache struct {
	render  func() string
	out     string
	dirty   bool
	renders int
}

var _ state.Subscriber = (*renderCache)(nil)

func newRenderCache(render func() string) *renderCache {
	return &renderCache{render: render, dirty: true}
}

// Invalidate implements state.Subscriber.
func (c *renderCache) Invalidate() {
	c.dirty = true
}

// View returns the cached body, rebuilding it if invalidated.
func (c *renderCache) View() string {
	if c.dirty {
		c.out = c.render()
		c.dirty = false
		c.renders++
	}
	return c.out
}

// Renders returns how many times the body was rebuilt.
func (c *renderCache) Renders() int {
	return c.renders
}
