package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// TokenDenylistImpl implements domain.TokenDenylist using Redis key expiry
type TokenDenylistImpl struct {
	client *redis.Client
	prefix string
}

// NewTokenDenylist creates a new Redis-backed denylist
func NewTokenDenylist(client *redis.Client) domain.TokenDenylist {
	return &TokenDenylistImpl{
		client: client,
		prefix: "revoked:",
	}
}

// Revoke implements domain.TokenDenylist. Tokens with no remaining lifetime are skipped.
func (r *TokenDenylistImpl) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.prefix+tokenID, 1, ttl).Err()
}

// IsRevoked implements domain.TokenDenylist
func (r *TokenDenylistImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, r.prefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
