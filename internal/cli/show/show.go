package show

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/snapshot"
	"github.com/julianstephens/clockface/internal/tui"
	"github.com/julianstephens/clockface/internal/tui/components/face"
)

type ShowCmd struct {
	At     string `help:"Render this instant instead of now (RFC3339, HH:MM:SS or HH:MM)."`
	Output string `help:"Output format." enum:"text,json,yaml" default:"text" short:"o"`
	Radius int    `help:"Analog face radius in rows." default:"8"`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	now := ctx.Source.Now()
	if c.At != "" {
		t, err := ParseInstant(c.At, now)
		if err != nil {
			return err
		}
		now = t
	}

	snap, err := snapshot.Take(now, ctx.Settings.Current(), ctx.Formatter())
	if err != nil {
		return err
	}

	out := ctx.Stdout()
	switch c.Output {
	case "json":
		data, err := snap.JSON()
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := snap.YAML()
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Fprint(out, string(data))
	default:
		fmt.Fprintln(out, renderText(snap, c.Radius, isTerminal(out)))
	}
	return nil
}

func renderText(snap snapshot.Snapshot, radius int, color bool) string {
	var styles face.Styles
	if color {
		styles = tui.ThemeFor(snap.Settings.IsDarkMode).Face
	}

	var lines []string
	if snap.Analog != nil {
		lines = append(lines, face.Render(*snap.Analog, radius, styles))
	} else {
		lines = append(lines, snap.TimeText)
	}
	if snap.HasDate() {
		lines = append(lines, snap.DateText)
	}
	return strings.Join(lines, "\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseInstant accepts a full RFC3339 timestamp or a wall-clock time, which
// is placed on now's date in now's location.
func ParseInstant(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{constants.TimeFormat, "15:04"} {
		t, err := time.ParseInLocation(layout, s, now.Location())
		if err == nil {
			y, m, d := now.Date()
			return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, now.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339, HH:MM:SS or HH:MM", s)
}
