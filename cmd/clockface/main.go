package main

import (
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/clockface/internal/cli"
	"github.com/julianstephens/clockface/internal/cli/settings"
	"github.com/julianstephens/clockface/internal/cli/show"
	"github.com/julianstephens/clockface/internal/cli/system"
	"github.com/julianstephens/clockface/internal/clock"
	"github.com/julianstephens/clockface/internal/config"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/errors"
	"github.com/julianstephens/clockface/internal/logger"
	settingsstore "github.com/julianstephens/clockface/internal/settings"
	"github.com/julianstephens/clockface/internal/storage"
)

var CLI struct {
	Version    kong.VersionFlag
	ConfigFile string `name:"config" help:"Config file path." type:"path"`
	Store      string `help:"Store DSN: a SQLite or .json path, mem://, redis://, a PostgreSQL connection string without a password, or \"keyring\". Overrides the config file."`
	Locale     string `help:"Date locale (en, de, fr, es)."`
	DebugLog   bool   `name:"debug" help:"Enable debug logging to stderr."`

	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive clock." default:"1"`
	Show     show.ShowCmd         `cmd:"" help:"Print the clock once."`
	Settings settings.SettingsCmd `cmd:"" help:"View or change clock settings."`
	Init     system.InitCmd       `cmd:"" help:"Initialize clockface storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the store connection string in the OS keyring."`
	Config   system.ConfigCmd     `cmd:"" help:"Show or write the configuration file."`
	Debug    system.DebugCmd      `cmd:"" help:"Debug commands for troubleshooting."`
}

// Commands that manage storage themselves or never touch it.
var (
	skipLoad  = map[string]bool{"init": true, "doctor": true}
	skipStore = map[string]bool{"keyring": true, "config": true}
)

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A configurable terminal clock"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := loadConfig()
	if err != nil {
		errors.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Log.Debug,
		Level:     cfg.Log.Level,
		ConfigDir: configDir(cfg),
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	command := strings.Fields(ctx.Command())[0]
	logger.Debug("Starting", "command", ctx.Command(), "store", storage.RedactDSN(cfg.Storage.DSN))

	appCtx := &cli.Context{
		Source: clock.NewSource(nil),
		Config: cfg,
	}
	defer appCtx.Source.Close()

	if !skipStore[command] {
		store, err := cli.OpenStore(cfg.Storage.DSN)
		if err != nil {
			errors.Fatal(err)
		}
		defer store.Close()

		if !skipLoad[command] {
			if err := cli.LoadOrInit(store); err != nil {
				errors.Fatal(err)
			}
		}

		appCtx.Store = store
		appCtx.Settings = settingsstore.NewStore(store)
		if !skipLoad[command] {
			if err := appCtx.LoadSettings(); err != nil {
				errors.Fatal(err)
			}
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if CLI.ConfigFile != "" {
		cfg, err = config.LoadFromFile(CLI.ConfigFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if CLI.Store != "" {
		cfg.Storage.DSN = CLI.Store
	}
	if CLI.Locale != "" {
		cfg.Clock.Locale = CLI.Locale
	}
	if CLI.DebugLog {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

func configDir(cfg *config.Config) string {
	return (&cli.Context{Config: cfg}).ConfigDir()
}
