// Package styles provides the colour theme used when printing reports
// to a terminal.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for console output.
type Theme struct {
	// Primary is the main accent colour, used for headers.
	Primary lipgloss.Color

	// Secondary highlights n-gram keys.
	Secondary lipgloss.Color

	// Muted is for less important text such as relative frequencies.
	Muted lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for report headers.
	Title lipgloss.Style

	// Key style for n-gram keys.
	Key lipgloss.Style

	// Muted style for secondary figures.
	Muted lipgloss.Style

	// Warning style for empty-report notices.
	Warning lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Key: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
