package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRepo is the access-token denylist. Keys live exactly as long as the
// token they shadow, so the set cleans itself up.
type TokenRepo struct {
	client *redis.Client
}

func NewTokenRepo(client *redis.Client) *TokenRepo {
	return &TokenRepo{client: client}
}

func (r *TokenRepo) RevokeAccess(ctx context.Context, jti string, expiresAt time.Time) error {
	return r.client.Set(ctx, "a:"+jti, 1, safeTTL(expiresAt)).Err()
}

func (r *TokenRepo) IsAccessRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, "a:"+jti).Result()
	return n > 0, err
}

func safeTTL(exp time.Time) time.Duration {
	ttl := time.Until(exp)
	if ttl <= 0 {
		// minimum TTL so the key still disappears
		return time.Hour
	}
	return ttl
}
