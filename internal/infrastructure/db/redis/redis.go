package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the connection settings for the revocation store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// DialTimeout bounds connection establishment and the startup ping.
	DialTimeout time.Duration
}

// Connect opens a Redis client and verifies it is reachable. The token
// revocation list lives here and the authorizer rejects requests when it
// cannot be read, so an unreachable Redis is a startup failure rather than a
// degraded mode.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unreachable at %s: %w", cfg.Addr, err)
	}

	return client, nil
}
