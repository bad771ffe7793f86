package ports

import (
	"context"
	"time"
)

// TokenRevoker tracks token IDs invalidated before their natural expiry.
// Revocation entries only need to outlive the token itself, so every entry
// carries a TTL.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
