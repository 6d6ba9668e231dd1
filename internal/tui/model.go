package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/clockface/internal/clock"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/format"
	"github.com/julianstephens/clockface/internal/logger"
	"github.com/julianstephens/clockface/internal/models"
	"github.com/julianstephens/clockface/internal/settings"
	"github.com/julianstephens/clockface/internal/snapshot"
	"github.com/julianstephens/clockface/internal/tui/components/panel"
)

type FaceFormModel struct {
	Face models.ClockFace
}

type Model struct {
	store     *settings.Store
	source    *clock.Source
	formatter *format.Formatter
	interval  time.Duration
	ticks     *tickBridge

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	faceForm *FaceFormModel

	settings models.Settings
	now      time.Time
	snap     snapshot.Snapshot
	cursor   int
	err      string
	quitting bool
	width    int
	height   int
}

// NewModel builds the clock UI around an already loaded store.
func NewModel(store *settings.Store, source *clock.Source, formatter *format.Formatter, interval time.Duration) Model {
	if formatter == nil {
		formatter = format.NewFormatter(constants.DefaultLocale)
	}
	m := Model{
		store:     store,
		source:    source,
		formatter: formatter,
		interval:  interval,
		ticks:     newTickBridge(),
		state:     constants.StateClock,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		settings:  store.Current(),
		now:       source.Now(),
	}
	m.refresh()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	if m.state == constants.StateSettings {
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Back, m.keys.Quit}
	}
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

// Init subscribes to the time source and waits for the first tick.
func (m Model) Init() tea.Cmd {
	m.ticks.start(m.source, m.interval)
	return m.ticks.wait()
}

// Close stops the tick subscription. Safe to call more than once.
func (m Model) Close() {
	m.ticks.stop()
}

// refresh re-derives the snapshot from the current instant and settings.
func (m *Model) refresh() {
	snap, err := snapshot.Take(m.now, m.settings, m.formatter)
	if err != nil {
		logger.Error("Failed to build clock snapshot", "error", err)
		m.err = err.Error()
		return
	}
	m.err = ""
	m.snap = snap
}

func (m Model) items() []panel.Item {
	return panel.Items(m.settings)
}

func (m *Model) clampCursor() {
	n := len(m.items())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Settings returns the settings the view currently renders.
func (m Model) Settings() models.Settings {
	return m.settings
}

func (m Model) State() constants.SessionState {
	return m.state
}

func (m Model) Snapshot() snapshot.Snapshot {
	return m.snap
}
