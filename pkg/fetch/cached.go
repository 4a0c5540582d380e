package fetch

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/l20n/pkg/l10n"
	"github.com/dmitrymomot/l20n/pkg/logger"
)

// Store keeps raw resource text shared between processes.
// *redis.Storage satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, val string, exp time.Duration) error
}

// Cached is a read-through cache in front of another fetcher. Store failures
// are logged and never fail a fetch. Failed fetches are not stored.
type Cached struct {
	next   l10n.Fetcher
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// CachedOption configures a Cached fetcher.
type CachedOption func(*Cached)

// WithTTL sets the expiration of stored resources. Zero means no expiration.
func WithTTL(ttl time.Duration) CachedOption {
	return func(c *Cached) {
		c.ttl = ttl
	}
}

// WithLogger sets the logger for store failures.
// If not specified, a discard logger is used.
func WithLogger(log *slog.Logger) CachedOption {
	return func(c *Cached) {
		if log != nil {
			c.logger = log
		}
	}
}

// NewCached wraps next with store.
func NewCached(next l10n.Fetcher, store Store, opts ...CachedOption) *Cached {
	c := &Cached{
		next:   next,
		store:  store,
		ttl:    time.Hour,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cached) Fetch(ctx context.Context, resID string, lang l10n.Language) (string, error) {
	key := CacheKey(resID, lang)

	src, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		c.logger.WarnContext(ctx, "resource store read failed",
			logger.Component("fetch"),
			logger.ResourceID(resID),
			logger.Error(err),
		)
	case ok:
		return src, nil
	}

	src, err = c.next.Fetch(ctx, resID, lang)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(ctx, key, src, c.ttl); err != nil && !errors.Is(err, context.Canceled) {
		c.logger.WarnContext(ctx, "resource store write failed",
			logger.Component("fetch"),
			logger.ResourceID(resID),
			logger.Error(err),
		)
	}
	return src, nil
}

// CacheKey is the store key of a resource: "<src>:<code>:<resID>".
// All entries of a tier share the "<src>:" prefix.
func CacheKey(resID string, lang l10n.Language) string {
	return string(lang.Src) + ":" + lang.Code + ":" + resID
}
