package settings

import (
	"context"
	"fmt"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/models"
	settingsstore "github.com/julianstephens/clockface/internal/settings"
)

type SettingsCmd struct {
	List   bool     `help:"List current settings."`
	Toggle []string `help:"Toggle a boolean setting by its key (repeatable), e.g. isAnalog or showSeconds." placeholder:"FIELD"`
	Face   string   `help:"Set the analog clock face (classic, modern, minimal, roman)."`
	Reset  bool     `help:"Restore the default settings before applying other changes."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	store := ctx.Settings

	// Dry-run the toggles so a bad argument changes nothing
	fields := make([]models.Field, 0, len(c.Toggle))
	preview := store.Current()
	for _, name := range c.Toggle {
		next, err := settingsstore.ToggleByName(preview, name)
		if err != nil {
			return err
		}
		preview = next
		fields = append(fields, models.Field(name))
	}
	var face models.ClockFace
	if c.Face != "" {
		parsed, err := models.ParseClockFace(c.Face)
		if err != nil {
			return err
		}
		face = parsed
	}

	if !c.Reset && len(fields) == 0 && face == "" {
		if !c.List {
			fmt.Fprintln(out, "No changes specified. Use --toggle, --face or --reset to change settings.")
			fmt.Fprintln(out)
		}
		printSettings(ctx, store.Current())
		return nil
	}

	prev := store.Current()
	store.Subscribe(func(next models.Settings) {
		printChanges(ctx, prev, next)
		prev = next
	})

	bg := context.Background()
	if c.Reset {
		store.Reset(bg)
	}
	for _, field := range fields {
		if _, err := store.Toggle(bg, field); err != nil {
			return err
		}
	}
	if face != "" {
		if _, err := store.SetClockFace(bg, face); err != nil {
			return err
		}
	}

	// The store only logs persistence failures; the CLI reports them.
	if err := store.Save(bg, store.Current()); err != nil {
		return err
	}
	fmt.Fprintln(out, "Settings updated successfully.")

	if c.List {
		fmt.Fprintln(out)
		printSettings(ctx, store.Current())
	}
	return nil
}

func printSettings(ctx *cli.Context, s models.Settings) {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Current Settings:")
	for _, f := range models.Fields {
		v, _ := s.Bool(f)
		fmt.Fprintf(out, "  %-14s %-12s %v\n", f.Label()+":", f, v)
	}
	fmt.Fprintf(out, "  %-14s %-12s %s\n", "Clock face:", "clockFace", s.ClockFace)
}

func printChanges(ctx *cli.Context, prev, next models.Settings) {
	out := ctx.Stdout()
	for _, f := range models.Fields {
		before, _ := prev.Bool(f)
		after, _ := next.Bool(f)
		if before != after {
			fmt.Fprintf(out, "  %s: %v -> %v\n", f, before, after)
		}
	}
	if prev.ClockFace != next.ClockFace {
		fmt.Fprintf(out, "  clockFace: %s -> %s\n", prev.ClockFace, next.ClockFace)
	}
}
