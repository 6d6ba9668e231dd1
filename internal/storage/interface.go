package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/julianstephens/clockface/internal/constants"
)

// ErrNotFound is returned by Get when the key has never been set
var ErrNotFound = errors.New("key not found")

// ErrNotLoaded is returned when a store is used before Init or Load
var ErrNotLoaded = errors.New("storage not loaded")

// ErrNotInitialized is returned by Load when the backing file does not exist yet
var ErrNotInitialized = errors.New("storage not initialized, run 'clockface init' first")

// Provider is a string key-value store. Every backend persists whole
// values; a Set overwrites the previous value (last write wins).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error

	// Utils
	GetConfigPath() string
}

// Kind identifies a backend from its DSN
type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindRedis    Kind = "redis"
	KindJSON     Kind = "json"
	KindMemory   Kind = "memory"
)

// KindOf classifies a store DSN by scheme or file extension.
func KindOf(dsn string) Kind {
	switch {
	case strings.HasPrefix(dsn, constants.SchemeMemory):
		return KindMemory
	case strings.HasPrefix(dsn, constants.SchemePostgres), strings.HasPrefix(dsn, constants.SchemePostgreSQL):
		return KindPostgres
	case strings.HasPrefix(dsn, constants.SchemeRedis), strings.HasPrefix(dsn, constants.SchemeRedisTLS):
		return KindRedis
	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL URL or DSN carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, constants.SchemePostgres) || strings.HasPrefix(connStr, constants.SchemePostgreSQL) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}
	for _, pair := range strings.Fields(connStr) {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[0]), "password") {
			return true
		}
	}
	return false
}

// RedactDSN hides the password of a URL-style DSN for logging.
func RedactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
