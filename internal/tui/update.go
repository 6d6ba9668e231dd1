package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		m.refresh()
		return m, m.ticks.wait()
	}

	if m.state == constants.StateEditFace {
		return m.updateFaceForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state == constants.StateSettings {
		return m.updateSettings(keyMsg)
	}

	if key.Matches(keyMsg, m.keys.Options) {
		m.state = constants.StateSettings
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Options), key.Matches(msg, m.keys.Back):
		m.state = constants.StateClock
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		items := m.items()
		if m.cursor >= len(items) {
			return m, nil
		}
		item := items[m.cursor]
		if item.IsFace() {
			m.faceForm = &FaceFormModel{Face: m.settings.ClockFace}
			m.form = NewFaceForm(m.faceForm)
			m.state = constants.StateEditFace
			return m, m.form.Init()
		}
		next, err := m.store.Toggle(context.Background(), item.Field)
		if err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.settings = next
		m.refresh()
		m.clampCursor()
	}
	return m, nil
}

func (m Model) updateFaceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		next, err := m.store.SetClockFace(context.Background(), m.faceForm.Face)
		if err != nil {
			m.err = err.Error()
		} else {
			m.settings = next
			m.refresh()
		}
		m.state = constants.StateSettings
	case huh.StateAborted:
		m.state = constants.StateSettings
	}
	return m, tea.Batch(cmds...)
}

// NewFaceForm builds the clock face picker.
func NewFaceForm(fm *FaceFormModel) *huh.Form {
	options := make([]huh.Option[models.ClockFace], 0, len(models.ClockFaces))
	for _, f := range models.ClockFaces {
		options = append(options, huh.NewOption(f.Title(), f))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.ClockFace]().
				Title("Clock face").
				Options(options...).
				Value(&fm.Face),
		),
	)
}
