// Package redis stores values in a Redis server, one string key per value.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/julianstephens/clockface/internal/constants"
	"github.com/julianstephens/clockface/internal/storage"
)

type Store struct {
	url    string
	prefix string
	client *goredis.Client
}

// Option configures a Store
type Option func(*Store)

// WithPrefix overrides the key namespace.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithClient uses an existing client instead of dialing url.
func WithClient(client *goredis.Client) Option {
	return func(s *Store) {
		s.client = client
	}
}

func New(url string, opts ...Option) *Store {
	s := &Store{
		url:    url,
		prefix: constants.RedisKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) connect() error {
	if s.client != nil {
		return nil
	}
	opts, err := goredis.ParseURL(s.url)
	if err != nil {
		return fmt.Errorf("invalid redis url: %w", err)
	}
	s.client = goredis.NewClient(opts)
	return nil
}

// Init connects and checks the server is reachable. Redis needs no schema.
func (s *Store) Init() error {
	return s.Load()
}

func (s *Store) Load() error {
	if err := s.connect(); err != nil {
		return err
	}
	if err := s.client.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if s.client == nil {
		return "", storage.ErrNotLoaded
	}
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if s.client == nil {
		return storage.ErrNotLoaded
	}
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *Store) GetConfigPath() string {
	return storage.RedactDSN(s.url)
}
