package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel IDs of the demo page, in tab order.
const (
	PanelCounter = "counter"
	PanelTimer   = "timer"
	PanelInput   = "input"
	PanelProfile = "profile"
)

// Panel hosts a Widget and knows its bounds within a layout.
// Widget is nil while the panel's widget is unmounted.
type Panel struct {
	ID     string
	Widget Widget
	Bounds BoundsFunc
}
