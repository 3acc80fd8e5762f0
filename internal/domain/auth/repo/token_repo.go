package repo

import (
	"context"
	"time"
)

// TokenRepo is the access-token JTI denylist. Logout and password reset
// write to it so a still-valid access token stops working immediately;
// entries expire together with the token itself.
type TokenRepo interface {
	RevokeAccess(ctx context.Context, jti string, expiresAt time.Time) error

	IsAccessRevoked(ctx context.Context, jti string) (bool, error)
}
