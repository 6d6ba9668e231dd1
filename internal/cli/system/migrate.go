package system

import (
	"fmt"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/migration"
)

// Migrator is implemented by the SQL backends.
type Migrator interface {
	Migrator() (*migration.Runner, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()

	m, ok := ctx.Store.(Migrator)
	if !ok {
		fmt.Fprintln(out, "This store has no schema. No migrations needed.")
		return nil
	}

	runner, err := m.Migrator()
	if err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	count, err := runner.ApplyMigrations(func(msg string) {
		fmt.Fprintln(out, msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Fprintln(out, "No migrations to apply. Database is up to date.")
	} else {
		fmt.Fprintf(out, "\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
