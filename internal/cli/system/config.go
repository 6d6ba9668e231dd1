package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/config"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/storage"
)

// ConfigCmd prints the effective configuration, or writes it out as a
// starting config file.
type ConfigCmd struct {
	Write bool   `help:"Write the effective configuration to a file."`
	Path  string `help:"Destination for --write (defaults to the config directory)." type:"path"`
	Force bool   `help:"Overwrite an existing file with --write."`
}

func (c *ConfigCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	cfg := ctx.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if !c.Write {
		shown := *cfg
		shown.Storage.DSN = storage.RedactDSN(cfg.Storage.DSN)
		if cfg.Path != "" {
			fmt.Fprintf(out, "# loaded from %s\n", cfg.Path)
		}
		return toml.NewEncoder(out).Encode(shown)
	}

	path := c.Path
	if path == "" {
		path = filepath.Join(config.Dir(), constants.ConfigFileName)
	}
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}
	if err := config.Write(path, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(out, "✓ Wrote config to %s\n", path)
	return nil
}
