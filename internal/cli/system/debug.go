package system

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/storage"
)

type DebugCmd struct {
	DBPath       DebugDBPathCmd       `cmd:"" name:"db-path" help:"Show the store location."`
	DumpSettings DebugDumpSettingsCmd `cmd:"" help:"Dump the raw persisted settings record."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	// Output in machine-readable format
	output := map[string]string{
		"path": storage.RedactDSN(path),
		"kind": string(storage.KindOf(path)),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Fprintln(ctx.Stdout(), string(jsonBytes))
	return nil
}

// DebugDumpSettingsCmd prints the record exactly as stored, even when it
// does not decode.
type DebugDumpSettingsCmd struct {
	Key string `help:"Key to read." default:"clockSettings"`
}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	key := cmd.Key
	if key == "" {
		key = constants.SettingsKey
	}

	raw, err := ctx.Store.Get(context.Background(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no record stored under %q", key)
		}
		return fmt.Errorf("failed to get settings: %w", err)
	}

	var pretty any
	if err := json.Unmarshal([]byte(raw), &pretty); err != nil {
		fmt.Fprintln(ctx.Stdout(), raw)
		return nil
	}
	jsonBytes, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	fmt.Fprintln(ctx.Stdout(), string(jsonBytes))
	return nil
}
