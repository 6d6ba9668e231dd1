package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/logger"
	"github.com/julianstephens/clockface/internal/models"
	"github.com/julianstephens/clockface/internal/storage"
)

// KV is the persistence capability the store needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the current settings record. It has a single writer; callers
// mutate through Toggle, SetClockFace and Reset, each of which persists the
// full record.
type Store struct {
	kv        KV
	key       string
	current   models.Settings
	listeners []func(models.Settings)
}

// Option configures a Store
type Option func(*Store)

// WithKey overrides the key the record is stored under.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		key:     constants.SettingsKey,
		current: models.DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted record and makes it current. Missing, unreadable
// or malformed data yields the defaults; Load never fails.
func (s *Store) Load(ctx context.Context) models.Settings {
	loaded, err := s.read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Falling back to default settings", "key", s.key, "error", err)
		}
		loaded = models.DefaultSettings()
	}
	s.current = loaded
	return loaded
}

func (s *Store) read(ctx context.Context) (models.Settings, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return models.Settings{}, err
	}
	return Decode([]byte(raw))
}

// Decode parses a persisted record. Absent fields keep their default value.
func Decode(data []byte) (models.Settings, error) {
	settings := models.DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// Save writes the full record. Persistence is best-effort; the error is
// returned for logging only.
func (s *Store) Save(ctx context.Context, settings models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Current returns the record most recently loaded or mutated.
func (s *Store) Current() models.Settings {
	return s.current
}

// Subscribe registers fn to be called after every mutation.
func (s *Store) Subscribe(fn func(models.Settings)) {
	s.listeners = append(s.listeners, fn)
}

// Toggle negates a boolean field of the current record and persists the result.
func (s *Store) Toggle(ctx context.Context, field models.Field) (models.Settings, error) {
	next, err := Toggle(s.current, field)
	if err != nil {
		return s.current, err
	}
	s.commit(ctx, next)
	return next, nil
}

// SetClockFace assigns the analog face and persists the result.
func (s *Store) SetClockFace(ctx context.Context, face models.ClockFace) (models.Settings, error) {
	next, err := SetClockFace(s.current, face)
	if err != nil {
		return s.current, err
	}
	s.commit(ctx, next)
	return next, nil
}

// Reset restores the defaults and persists them.
func (s *Store) Reset(ctx context.Context) models.Settings {
	next := models.DefaultSettings()
	s.commit(ctx, next)
	return next
}

func (s *Store) commit(ctx context.Context, next models.Settings) {
	s.current = next
	if err := s.Save(ctx, next); err != nil {
		logger.Warn("Settings not persisted", "error", err)
	}
	for _, fn := range s.listeners {
		fn(next)
	}
}
