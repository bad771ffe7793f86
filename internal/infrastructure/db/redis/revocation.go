package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sportsmeet/sportsmeet-api/internal/api/metrics"
)

// RevocationList tracks tokens invalidated before their natural expiry,
// backed by Redis. Key format: revoked:<jti>, expiring when the token itself
// would have expired anyway.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks the token ID as invalid for ttl.
func (r *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	metrics.TokenRevocationsTotal.Inc()
	return nil
}

// IsRevoked reports whether the token ID has been revoked.
func (r *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *RevocationList) key(jti string) string {
	return "revoked:" + jti
}
