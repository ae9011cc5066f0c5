// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	// Accent colours titles and the menu brand.
	Accent lipgloss.Color

	// Highlight marks the focused item and section headers.
	Highlight lipgloss.Color

	// Text is the default foreground.
	Text lipgloss.Color

	// Faint is for hints, dates and secondary text.
	Faint lipgloss.Color

	// Bar is the status bar background.
	Bar lipgloss.Color

	// Border outlines input fields.
	Border lipgloss.Color

	// Overdue, Due and Done colour the three check-in states.
	Overdue lipgloss.Color
	Due     lipgloss.Color
	Done    lipgloss.Color

	// Error colours failures that are not about a check-in.
	Error lipgloss.Color
}

// DefaultTheme returns a warm palette that reads on dark terminals.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#E07A5F"), // terracotta
		Highlight: lipgloss.Color("#F2CC8F"), // sand
		Text:      lipgloss.Color("#F4F1DE"),
		Faint:     lipgloss.Color("#8D8A7F"),
		Bar:       lipgloss.Color("#2B2D42"),
		Border:    lipgloss.Color("#5C5F73"),
		Overdue:   lipgloss.Color("#E63946"),
		Due:       lipgloss.Color("#81B29A"), // sage
		Done:      lipgloss.Color("#6C8EAD"),
		Error:     lipgloss.Color("#FF6B6B"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Selected is the focused row of a list.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style

	// Status styles colour check-in status labels.
	Overdue   lipgloss.Style
	Scheduled lipgloss.Style
	Completed lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	faint := lipgloss.NewStyle().Foreground(theme.Faint)

	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Highlight),
		Normal:   lipgloss.NewStyle().Foreground(theme.Text),
		Muted:    faint,
		Help:     faint.Italic(true),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Bar).
			Background(theme.Highlight),

		Error:   lipgloss.NewStyle().Foreground(theme.Error),
		Success: lipgloss.NewStyle().Foreground(theme.Due),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Faint).
			Background(theme.Bar).
			Padding(0, 1),

		Overdue:   lipgloss.NewStyle().Bold(true).Foreground(theme.Overdue),
		Scheduled: lipgloss.NewStyle().Foreground(theme.Due),
		Completed: lipgloss.NewStyle().Foreground(theme.Done),
	}
}

// Status returns the style for a check-in status.
func (s *Styles) Status(status domain.CheckInStatus) lipgloss.Style {
	switch status {
	case domain.StatusOverdue:
		return s.Overdue
	case domain.StatusCompleted:
		return s.Completed
	case domain.StatusScheduled:
		return s.Scheduled
	default:
		return s.Muted
	}
}

// Category returns a bold style in a category's hex colour, or Subtitle
// when the category has none.
func (s *Styles) Category(color string) lipgloss.Style {
	if color == "" {
		return s.Subtitle
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
