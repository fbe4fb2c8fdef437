// Package ui renders the hooks demo page with Bubble Tea.
//
// Core abstractions:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - Widget: a View with a mount/unmount lifecycle
//   - Panel: a bounded region of the page grid that hosts a Widget
//   - GridLayout: arranges the four demo panels two by two
//   - FocusManager: tracks and rotates focus across panels
//   - OverlayStack: modal or popup views with dismiss key
//
// Each widget keeps its state in state.Cell values and renders through a
// renderCache subscribed to those cells, so a key press re-renders a widget
// once no matter how many of its cells the handler touched.
package ui
