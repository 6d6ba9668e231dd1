package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/tui/components/face"
	"github.com/julianstephens/clockface/internal/tui/components/panel"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := ThemeFor(m.settings.IsDarkMode)
	sections := []string{m.viewClock(theme)}

	if m.snap.HasDate() {
		sections = append(sections, theme.Date.Render(m.snap.DateText))
	}

	switch m.state {
	case constants.StateSettings:
		sections = append(sections, panel.Render(m.items(), m.cursor, m.settings, theme.Panel))
	case constants.StateEditFace:
		sections = append(sections, theme.Panel.Box.Render(m.form.View()))
	}

	if m.err != "" {
		sections = append(sections, theme.Warning.Render("⚠ "+m.err))
	}
	sections = append(sections, m.help.View(m))

	content := theme.Doc.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewClock(theme Theme) string {
	if m.snap.Analog == nil {
		return theme.Time.Render(m.snap.TimeText)
	}
	return face.Render(*m.snap.Analog, m.faceRadius(), theme.Face)
}

// faceRadius fits the face into the window, leaving room for the date line,
// the options panel and help.
func (m Model) faceRadius() int {
	const fallback = 8
	if m.height == 0 || m.width == 0 {
		return fallback
	}
	reserved := 6
	if m.state != constants.StateClock {
		reserved += 12
	}
	r := (m.height - reserved) / 2
	if w := (m.width - 8) / 4; w < r {
		r = w
	}
	if r > 12 {
		r = 12
	}
	if r < face.MinRadius {
		r = face.MinRadius
	}
	return r
}
