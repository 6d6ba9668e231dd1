package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "clockface"
	DefaultKeyringUser = "database-connection"
	DefaultStorePath   = "~/.config/clockface/clockface.db"
	ConfigFileName     = "config.toml"
	LogFileName        = "clockface.log"
	LockfileName       = "clockface.lock"
	Version            = "v0.2.0"

	// SettingsKey is the single key holding the JSON-encoded settings record.
	SettingsKey = "clockSettings"

	// Store DSN schemes and markers
	SchemeMemory     = "mem://"
	SchemePostgres   = "postgres://"
	SchemePostgreSQL = "postgresql://"
	SchemeRedis      = "redis://"
	SchemeRedisTLS   = "rediss://"
	KeyringDSN       = "keyring"
	RedisKeyPrefix   = "clockface:"

	// Session States
	StateClock SessionState = iota
	StateSettings
	StateEditFace
)

// DefaultTickInterval is how often the clock is redrawn.
const DefaultTickInterval = time.Second
