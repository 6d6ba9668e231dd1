package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/julianstephens/clockface/internal/clock"
	"github.com/julianstephens/clockface/internal/config"
	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/format"
	"github.com/julianstephens/clockface/internal/keyring"
	"github.com/julianstephens/clockface/internal/logger"
	"github.com/julianstephens/clockface/internal/settings"
	"github.com/julianstephens/clockface/internal/storage"
	"github.com/julianstephens/clockface/internal/storage/jsonfile"
	"github.com/julianstephens/clockface/internal/storage/memory"
	"github.com/julianstephens/clockface/internal/storage/postgres"
	"github.com/julianstephens/clockface/internal/storage/redis"
	"github.com/julianstephens/clockface/internal/storage/sqlite"
)

// ErrEmbeddedCredentials is returned for a postgres DSN carrying a password
// outside the keyring.
var ErrEmbeddedCredentials = errors.New("PostgreSQL connection strings with embedded credentials are not allowed; store them with 'clockface keyring set' and set the store to \"keyring\"")

type Context struct {
	Store    storage.Provider
	Settings *settings.Store
	Source   *clock.Source
	Config   *config.Config

	// Out receives command output; nil means stdout.
	Out io.Writer
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Formatter returns a date formatter for the configured locale.
func (c *Context) Formatter() *format.Formatter {
	locale := ""
	if c.Config != nil {
		locale = c.Config.Clock.Locale
	}
	return format.NewFormatter(locale)
}

// ConfigDir is where logs and the lockfile live: next to the loaded config
// file, or the default config directory.
func (c *Context) ConfigDir() string {
	if c.Config != nil && c.Config.Path != "" {
		return filepath.Dir(c.Config.Path)
	}
	return config.Dir()
}

// OpenStore builds the backend a DSN names. The literal "keyring" is replaced
// by the DSN stored in the OS keyring; only that DSN may carry a postgres
// password.
func OpenStore(dsn string) (storage.Provider, error) {
	fromKeyring := dsn == constants.KeyringDSN
	resolved, err := keyring.ResolveDSN(dsn)
	if err != nil {
		return nil, err
	}

	switch storage.KindOf(resolved) {
	case storage.KindMemory:
		return memory.NewStore(), nil
	case storage.KindPostgres:
		if !fromKeyring && storage.HasEmbeddedCredentials(resolved) {
			return nil, ErrEmbeddedCredentials
		}
		return postgres.New(resolved), nil
	case storage.KindRedis:
		return redis.New(resolved), nil
	case storage.KindJSON:
		return jsonfile.NewStore(config.ExpandHome(resolved)), nil
	default:
		return sqlite.NewStore(config.ExpandHome(resolved)), nil
	}
}

// LoadOrInit loads the store, initialising it first when it has never been
// created.
func LoadOrInit(store storage.Provider) error {
	err := store.Load()
	if errors.Is(err, storage.ErrNotInitialized) {
		logger.Info("Initializing storage on first use", "store", store.GetConfigPath())
		return store.Init()
	}
	return err
}

// LoadSettings reads the persisted record into the settings store.
func (c *Context) LoadSettings() error {
	if c.Settings == nil {
		return fmt.Errorf("settings store not configured")
	}
	c.Settings.Load(context.Background())
	return nil
}
