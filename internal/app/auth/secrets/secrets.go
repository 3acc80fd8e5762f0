package secrets

import (
	"crypto/rand"
	"encoding/hex"

	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
)

// Generator produces the verification and password-reset secrets. The
// strategy is chosen once at startup from configuration instead of branching
// on the environment name inside the auth flow, so the fixed variant cannot
// leak into a production build path by accident.
type Generator interface {
	Secret() (string, error)
}

// Random draws 40 bytes from crypto/rand, hex encoded.
type Random struct{}

func (Random) Secret() (string, error) {
	buf := make([]byte, 40)
	if _, err := rand.Read(buf); err != nil {
		return "", customErrors.WrapInternal(err, "generate secret")
	}
	return hex.EncodeToString(buf), nil
}

// Fixed always returns the same value. Used only in dev configurations to
// make the verification and reset flows scriptable.
type Fixed struct {
	Value string
}

func (f Fixed) Secret() (string, error) { return f.Value, nil }
