// Package theme provides the terminal color themes for devloop output.
//
// A [Theme] maps the five semantic output roles (success, info, divider,
// error, warn) to lipgloss styles. Two palettes are built in: dark (the
// default) and light. The palette is selected once at startup from the -m
// flag or the config file and is immutable afterwards.
package theme

import "github.com/charmbracelet/lipgloss"

// Mode selects which built-in palette to use.
type Mode string

const (
	// ModeDark is the default palette, tuned for dark terminal backgrounds.
	ModeDark Mode = "dark"

	// ModeLight is the alternate palette for light terminal backgrounds.
	ModeLight Mode = "light"
)

// ParseMode converts a raw mode string to a [Mode].
//
// Only "light" selects the light palette; any other value, including the
// empty string, silently falls back to dark. Mode selection never fails.
func ParseMode(s string) Mode {
	if s == string(ModeLight) {
		return ModeLight
	}
	return ModeDark
}

// Theme holds the styles for the five semantic output roles.
type Theme struct {
	// Success styles passing banners and check marks.
	Success lipgloss.Style

	// Info styles per-file progress lines.
	Info lipgloss.Style

	// Divider styles the section rules printed between pipeline phases.
	Divider lipgloss.Style

	// Error styles failure banners and verbatim tool findings.
	Error lipgloss.Style

	// Warn styles "nothing to do" notices (no sources, no test file).
	Warn lipgloss.Style
}

// ForMode returns the built-in [Theme] for the given mode.
func ForMode(m Mode) Theme {
	if m == ModeLight {
		return Theme{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
			Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
			Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		}
	}
	return Theme{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
