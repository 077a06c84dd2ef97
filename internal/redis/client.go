// Package redis wraps go-redis so repositories depend on a small
// interface and tests can swap in miniredis
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-dpr/internal/errors"
)

// Options tunes the connection pool
type Options struct {
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single Redis instance. go-redis
// connects lazily, so a bad address only shows up on first use or Ping.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:            endpoint,
		Password:        opts.Password,
		DB:              opts.DB,
		MinIdleConns:    opts.MinIdleConns,
		PoolSize:        opts.PoolSize,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // managed Redis with self-signed certs
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks connectivity, returning an Unavailable error on failure
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Unavailablef("redis ping failed: %v", err)
	}
	return nil
}

// IsNil reports whether err is the go-redis "key does not exist" result
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
