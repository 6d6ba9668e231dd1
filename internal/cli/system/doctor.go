package system

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/keyring"
	"github.com/julianstephens/clockface/internal/lock"
	"github.com/julianstephens/clockface/internal/settings"
	"github.com/julianstephens/clockface/internal/storage"
)

// errWarning marks a check that reports a problem without failing doctor.
type errWarning struct {
	msg string
}

func (w errWarning) Error() string { return w.msg }

type DoctorCmd struct{}

type check struct {
	name string
	// needsStore checks are skipped when storage is unreachable
	needsStore bool
	run        func(*cli.Context) error
}

var checks = []check{
	{"Schema version", true, checkSchemaVersion},
	{"Migrations complete", true, checkMigrationsComplete},
	{"Settings record", true, checkSettingsRecord},
	{"Lockfile", false, checkLock},
	{"OS keyring", false, checkKeyring},
	{"Clock/timezone", false, checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	reachable := report(out, "Storage reachable", checkStoreReachable(ctx), &hasError)

	for _, c := range checks {
		if c.needsStore && !reachable {
			fmt.Fprintf(out, "⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		report(out, c.name, c.run(ctx), &hasError)
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Some checks failed. Please review the errors above.")
		return errors.New("diagnostics failed")
	}
	fmt.Fprintln(out, "All checks passed!")
	return nil
}

func report(out io.Writer, name string, err error, hasError *bool) bool {
	var warning errWarning
	switch {
	case err == nil:
		fmt.Fprintf(out, "✓ %s: OK\n", name)
		return true
	case errors.As(err, &warning):
		fmt.Fprintf(out, "⚠ %s: WARNING\n", name)
		fmt.Fprintf(out, "   %v\n", err)
		return true
	default:
		fmt.Fprintf(out, "❌ %s: FAIL\n", name)
		fmt.Fprintf(out, "   Error: %v\n", err)
		*hasError = true
		return false
	}
}

func checkStoreReachable(ctx *cli.Context) error {
	if ctx.Store == nil {
		return errors.New("no store configured")
	}
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("%s: %w", storage.RedactDSN(ctx.Store.GetConfigPath()), err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(Migrator)
	if !ok {
		return nil
	}
	runner, err := m.Migrator()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, ok := ctx.Store.(Migrator)
	if !ok {
		return nil
	}
	runner, err := m.Migrator()
	if err != nil {
		return err
	}
	pending, err := runner.Pending()
	if err != nil {
		return err
	}
	if pending > 0 {
		return fmt.Errorf("%d migration(s) pending, run 'clockface migrate'", pending)
	}
	return nil
}

func checkSettingsRecord(ctx *cli.Context) error {
	raw, err := ctx.Store.Get(context.Background(), constants.SettingsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	if _, err := settings.Decode([]byte(raw)); err != nil {
		return fmt.Errorf("%w; defaults will be used until settings are saved again", err)
	}
	return nil
}

func checkLock(ctx *cli.Context) error {
	info, err := lock.New(ctx.ConfigDir()).Status()
	if err != nil {
		return err
	}
	if info.Exists && !info.Alive {
		return errWarning{fmt.Sprintf("lockfile %s is %s and will be replaced on next start", info.Path, info)}
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if keyring.IsAvailable() {
		return nil
	}
	return errWarning{"OS keyring is not available; the \"keyring\" store DSN cannot be used"}
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if ctx.Source != nil {
		now = ctx.Source.Now()
	}
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system clock appears to be incorrect: %s", now.Format(time.RFC3339))
	}
	if time.Local == nil {
		return errors.New("local timezone is not configured")
	}
	if name, _ := now.Zone(); name == "" {
		return errors.New("local timezone has no name")
	}
	return nil
}
