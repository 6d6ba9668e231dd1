package system

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/lock"
	"github.com/julianstephens/clockface/internal/logger"
	"github.com/julianstephens/clockface/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	l := lock.New(ctx.ConfigDir())
	if err := l.Acquire(); err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "path", l.Path(), "error", err)
		}
	}()

	var interval time.Duration
	if ctx.Config != nil {
		interval = ctx.Config.Clock.TickInterval.Duration
	}
	m := tui.NewModel(ctx.Settings, ctx.Source, ctx.Formatter(), interval)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
