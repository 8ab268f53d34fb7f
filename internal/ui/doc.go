// Package ui provides the lipgloss styles shared by the CLI presenters.
//
// A single Theme is active at a time. InitTheme selects it from the
// --no-color flag and the NO_COLOR environment variable.
package ui
