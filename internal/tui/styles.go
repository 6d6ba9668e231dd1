package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockface/internal/tui/components/face"
	"github.com/julianstephens/clockface/internal/tui/components/panel"
)

// Theme groups every style the view uses. One exists per colour scheme.
type Theme struct {
	Doc     lipgloss.Style
	Time    lipgloss.Style
	Date    lipgloss.Style
	Warning lipgloss.Style
	Face    face.Styles
	Panel   panel.Styles
}

func newTheme(bg, fg, accent, muted, selectedBg string) Theme {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
	return Theme{
		Doc: lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Padding(1, 2),
		Time: base.
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center),
		Date: lipgloss.NewStyle().
			Foreground(lipgloss.Color(muted)).
			Align(lipgloss.Center),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		Face: face.Styles{
			Rim:    base,
			Marker: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			Label:  lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			Hour:   base.Bold(true),
			Minute: base,
			Second: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
			Center: base.Bold(true),
		},
		Panel: panel.Styles{
			Title: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(accent)).
				MarginBottom(1),
			Item: base,
			Selected: base.
				Background(lipgloss.Color(selectedBg)).
				Bold(true),
			Value: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			Box: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(muted)).
				Padding(0, 1).
				MarginTop(1),
		},
	}
}

var (
	lightTheme = newTheme("255", "235", "205", "240", "252")
	darkTheme  = newTheme("235", "252", "205", "245", "238")
)

// ThemeFor picks the theme for the dark mode setting.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme
	}
	return lightTheme
}
