package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the colour palette for the chat TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Error:   lipgloss.Color("#F38BA8"), // Red
		Border:  lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles for the chat TUI.
type Styles struct {
	theme *Theme

	// Title style for the header.
	Title lipgloss.Style

	// UserLabel prefixes user turns in the transcript.
	UserLabel lipgloss.Style

	// BotLabel prefixes assistant turns in the transcript.
	BotLabel lipgloss.Style

	// Muted style for hints and provenance.
	Muted lipgloss.Style

	// Evidence style for retrieved profile lines.
	Evidence lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputBox frames the text input.
	InputBox lipgloss.Style
}

// DefaultStyles returns styles built from the default theme.
func DefaultStyles() *Styles {
	theme := DefaultTheme()
	return &Styles{
		theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),
		BotLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),
		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),
		Evidence: lipgloss.NewStyle().
			Foreground(theme.Muted).
			PaddingLeft(2),
		Error: lipgloss.NewStyle().
			Foreground(theme.Error),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}
