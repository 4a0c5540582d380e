package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is a namespaced string store on top of a Redis client.
// It is used to share raw resource text between processes.
type Storage struct {
	db     redis.UniversalClient
	prefix string
}

// NewStorage wraps a client. Every key is prefixed with cfg.KeyPrefix.
func NewStorage(redisClient redis.UniversalClient, cfg Config) *Storage {
	return &Storage{
		db:     redisClient,
		prefix: cfg.KeyPrefix,
	}
}

// Get returns the value of key. A missing key is reported with ok == false
// and a nil error.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	val, err := s.db.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores key with expiration. Zero duration means no expiration.
func (s *Storage) Set(ctx context.Context, key, val string, exp time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Set(ctx, s.prefix+key, val, exp).Err()
}

// Close terminates the Redis connection.
func (s *Storage) Close() error {
	return s.db.Close()
}
