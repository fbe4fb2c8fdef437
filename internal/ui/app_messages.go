package ui

import "hooksdemo/internal/diag"

// FocusNextMsg moves focus to the next panel (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous panel (shift+tab).
type FocusPrevMsg struct{}

// ToggleTimerMsg unmounts the timer panel, or mounts a fresh one (SPC t).
type ToggleTimerMsg struct{}

// ToggleHelpMsg opens or closes the explanations overlay (? or SPC ?).
type ToggleHelpMsg struct{}

// ResetFocusedMsg resets the focused counter or timer (SPC r).
type ResetFocusedMsg struct{}

// LoginMsg signs in the configured user (SPC l).
type LoginMsg struct{}

// RequestLogoutMsg asks the profile to confirm signing out (SPC o).
type RequestLogoutMsg struct{}

// ShowLogoutConfirmMsg pushes the sign-out confirmation modal.
type ShowLogoutConfirmMsg struct {
	Name string
}

// LogoutMsg is sent when the user confirms signing out.
type LogoutMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// loopReadyMsg reports that work was posted to the state loop.
type loopReadyMsg struct{}

// diagMsg carries a diagnostic event to the status line.
type diagMsg diag.Event
