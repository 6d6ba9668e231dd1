package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/models"
	"github.com/julianstephens/clockface/internal/settings"
	"github.com/julianstephens/clockface/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing store before initialization."`
	Source string `help:"Source store DSN to copy settings from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	bg := context.Background()

	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized clockface storage at: %s\n", storage.RedactDSN(ctx.Store.GetConfigPath()))

	if c.Force && !isFileStore(ctx.Store) {
		// Shared backends cannot be deleted; overwrite the record instead.
		if err := settings.NewStore(ctx.Store).Save(bg, models.DefaultSettings()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Settings reset to defaults")
	}

	if c.Source != "" {
		fmt.Fprintf(out, "Copying settings from: %s\n", storage.RedactDSN(c.Source))
		if err := c.copySettings(bg, ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Fprintln(out, "Migration completed successfully!")
	}

	if ctx.Settings != nil {
		return ctx.LoadSettings()
	}
	return nil
}

func isFileStore(store storage.Provider) bool {
	switch storage.KindOf(store.GetConfigPath()) {
	case storage.KindSQLite, storage.KindJSON:
		return true
	}
	return false
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	if !isFileStore(ctx.Store) {
		return nil
	}
	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absPath, err := filepath.Abs(path)
		if err == nil {
			path = absPath
		}
		absSource, err := filepath.Abs(c.Source)
		if err == nil && absSource == path {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to access existing store: %w", err)
	}
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing store: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing store: %w", err)
	}
	fmt.Fprintf(ctx.Stdout(), "Deleted existing store at: %s\n", path)
	return nil
}

func (c *InitCmd) copySettings(ctx context.Context, cctx *cli.Context) error {
	source, err := cli.OpenStore(c.Source)
	if err != nil {
		return err
	}
	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source store: %w", err)
	}
	defer source.Close()

	raw, err := source.Get(ctx, constants.SettingsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Fprintln(cctx.Stdout(), "  Source has no settings record; nothing to copy")
			return nil
		}
		return fmt.Errorf("failed to read settings from source: %w", err)
	}
	// Re-encode through the decoder so a malformed source record is refused
	decoded, err := settings.Decode([]byte(raw))
	if err != nil {
		return err
	}
	if err := settings.NewStore(cctx.Store).Save(ctx, decoded); err != nil {
		return err
	}
	fmt.Fprintf(cctx.Stdout(), "  Copied settings: %s\n", decoded)
	return nil
}
