package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles used by the CLI presenters.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Title styles section headings such as "Self-check summary".
	Title lipgloss.Style
	// Header styles table column headers.
	Header lipgloss.Style
	// Label styles operation and check names.
	Label lipgloss.Style
	// Value styles computed numbers.
	Value lipgloss.Style
	// Success marks passed checks and successful runs.
	Success lipgloss.Style
	// Failure marks failed checks and errors.
	Failure lipgloss.Style
	// Dim styles secondary details such as durations and seeds.
	Dim lipgloss.Style
}

func newTheme(name string, accent, label, value, ok, bad, dim lipgloss.TerminalColor) Theme {
	return Theme{
		Name:    name,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:  lipgloss.NewStyle().Underline(true),
		Label:   lipgloss.NewStyle().Foreground(label),
		Value:   lipgloss.NewStyle().Foreground(value),
		Success: lipgloss.NewStyle().Bold(true).Foreground(ok),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(bad),
		Dim:     lipgloss.NewStyle().Foreground(dim),
	}
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = newTheme("dark",
		lipgloss.Color("#FF8C00"), lipgloss.Color("39"), lipgloss.Color("220"),
		lipgloss.Color("82"), lipgloss.Color("196"), lipgloss.Color("245"))

	// LightTheme uses darker colors for light backgrounds.
	LightTheme = newTheme("light",
		lipgloss.Color("#B35900"), lipgloss.Color("27"), lipgloss.Color("130"),
		lipgloss.Color("28"), lipgloss.Color("124"), lipgloss.Color("240"))

	// NoColorTheme keeps emphasis but drops every color. Used when NO_COLOR
	// is set or --no-color is given.
	NoColorTheme = Theme{
		Name:    "none",
		Title:   lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Underline(true),
		Label:   lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle().Bold(true),
		Failure: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle(),
	}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name. Valid names are "dark",
// "light" and "none"; unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/): any
// value, even empty, disables colors.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}

// Status renders the PASS or FAIL marker of a check.
func Status(passed bool) string {
	t := GetCurrentTheme()
	if passed {
		return t.Success.Render("PASS")
	}
	return t.Failure.Render("FAIL")
}

// TUITheme holds the colors of the live self-check dashboard.
type TUITheme struct {
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme matches DarkTheme.
	DarkTUITheme = TUITheme{
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Text:    lipgloss.Color("#E0E0E0"),
		Success: lipgloss.Color("82"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("196"),
		Dim:     lipgloss.Color("245"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the dashboard palette of the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}
