package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect opens a client for cfg.ConnectionURL and pings it until it answers.
// The server gets cfg.RetryAttempts pings (at least one) spaced by
// cfg.RetryInterval, all within cfg.ConnectTimeout.
//
// Errors: ErrEmptyConnectionURL, ErrFailedToParseRedisConnString, or
// ErrRedisNotReady joined with the last ping or context error.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)
	attempts := max(cfg.RetryAttempts, 1)

	var pingErr error
	for attempt := 1; ; attempt++ {
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
		if attempt == attempts {
			break
		}

		wait := time.NewTimer(cfg.RetryInterval)
		select {
		case <-ctx.Done():
			wait.Stop()
			_ = client.Close()
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-wait.C:
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrRedisNotReady, pingErr)
}
