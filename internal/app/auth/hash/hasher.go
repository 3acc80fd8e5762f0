package hash

import (
	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	"github.com/alexedwards/argon2id"
)

var argonParams = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// Hasher is the one-way digest used for login passwords, refresh tokens at
// rest and password-reset secrets at rest. Verification of a plaintext
// against a digest never reveals which byte differed.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) (bool, error)
}

// Argon2 peppers every input before hashing; the pepper lives only in
// configuration, so a database dump alone is not enough for offline cracking.
type Argon2 struct {
	pepper string
}

func NewArgon2(pepper string) *Argon2 {
	return &Argon2{pepper: pepper}
}

func (a *Argon2) Hash(plaintext string) (string, error) {
	digest, err := argon2id.CreateHash(plaintext+a.pepper, argonParams)
	if err != nil {
		return "", customErrors.WrapInternal(err, "Hash")
	}
	return digest, nil
}

func (a *Argon2) Verify(plaintext, digest string) (bool, error) {
	ok, err := argon2id.ComparePasswordAndHash(plaintext+a.pepper, digest)
	if err != nil {
		return false, customErrors.WrapInternal(err, "Verify")
	}
	return ok, nil
}
