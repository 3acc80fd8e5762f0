package token

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind selects which secret and lifetime a token is issued and verified
// against. Access and refresh tokens share the same claim shape but are
// signed with distinct secrets, so one can never be presented as the other.
type Kind int

const (
	KindAccess Kind = iota
	KindRefresh
)

type Claims struct {
	jwt.RegisteredClaims
}

type Codec interface {
	// Issue signs a token of the given kind for the account. The payload
	// always carries a fresh JTI and the issue time.
	Issue(userID uuid.UUID, kind Kind) (token string, claims Claims, err error)

	// Verify checks signature and expiry against the kind's secret. Every
	// failure collapses to ErrInvalidToken so callers cannot distinguish
	// expired from malformed.
	Verify(raw string, kind Kind) (Claims, error)

	// Decode reads the subject off a refresh token. The signature is still
	// verified; only the stored-hash cross-check is left to the caller.
	Decode(raw string) (Claims, error)
}
