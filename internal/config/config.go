package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/clockface/internal/constants"
)

const (
	EnvStore  = "CLOCKFACE_STORE"
	EnvLocale = "CLOCKFACE_LOCALE"
	EnvDebug  = "CLOCKFACE_DEBUG"
)

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Clock   ClockConfig   `toml:"clock"`

	// Path is the file the config was read from, empty when defaults were used.
	Path string `toml:"-"`
}

type StorageConfig struct {
	// DSN selects the backend: a sqlite path, a *.json file, mem://,
	// postgres://, redis:// or the literal "keyring".
	DSN string `toml:"dsn"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

type ClockConfig struct {
	Locale       string   `toml:"locale"`
	TickInterval Duration `toml:"tick_interval"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{DSN: constants.DefaultStorePath},
		Log:     LogConfig{Level: "warn"},
		Clock: ClockConfig{
			Locale:       constants.DefaultLocale,
			TickInterval: Duration{constants.DefaultTickInterval},
		},
	}
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/clockface/config.toml
//  2. ~/.config/clockface/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
func Load() (*Config, error) {
	for _, p := range SearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvStore); v != "" {
		cfg.Storage.DSN = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		cfg.Clock.Locale = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = b
		}
	}
}

// SearchPaths returns the ordered list of config file paths to try.
func SearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, constants.AppName, constants.ConfigFileName))

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, constants.AppName, constants.ConfigFileName))
	}

	return paths
}

// Dir returns the directory holding the config file, logs and the lockfile.
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgConfigHome(home), constants.AppName)
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// ExpandHome resolves a leading "~/" against the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
