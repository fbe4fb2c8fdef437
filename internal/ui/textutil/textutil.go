// Package textutil fits text into terminal columns.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when
// anything was cut. Wide runes are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= Width(Ellipsis) {
		return Ellipsis
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}
