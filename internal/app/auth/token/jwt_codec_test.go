package token

import (
	"strings"
	"testing"
	"time"

	customErrors "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/errors"
	domaintoken "github.com/Miraines/ContactNest/contacts-service/internal/domain/auth/token"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestCodec(accessTTL, refreshTTL time.Duration) *JWTCodec {
	return NewJWTCodec(&config.Config{
		AccessTokenSecret:  "access-secret-for-tests",
		RefreshTokenSecret: "refresh-secret-for-tests",
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	})
}

func TestJWTCodec_IssueVerifyRoundTrip(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	uid := uuid.New()

	raw, issued, err := codec.Issue(uid, domaintoken.KindAccess)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.NotEmpty(t, issued.ID)

	claims, err := codec.Verify(raw, domaintoken.KindAccess)
	require.NoError(t, err)
	require.Equal(t, uid.String(), claims.Subject)
	require.Equal(t, issued.ID, claims.ID)
	require.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTCodec_KindsUseDistinctSecrets(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	uid := uuid.New()

	refresh, _, err := codec.Issue(uid, domaintoken.KindRefresh)
	require.NoError(t, err)

	_, err = codec.Verify(refresh, domaintoken.KindAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)

	access, _, err := codec.Issue(uid, domaintoken.KindAccess)
	require.NoError(t, err)

	_, err = codec.Verify(access, domaintoken.KindRefresh)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

func TestJWTCodec_VerifyRejectsTampering(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)

	raw, _, err := codec.Issue(uuid.New(), domaintoken.KindAccess)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	_, err = codec.Verify(tampered, domaintoken.KindAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)

	_, err = codec.Verify("not.a.jwt", domaintoken.KindAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)

	_, err = codec.Verify("", domaintoken.KindAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

func TestJWTCodec_VerifyRejectsExpired(t *testing.T) {
	codec := newTestCodec(-time.Minute, time.Hour)

	raw, _, err := codec.Issue(uuid.New(), domaintoken.KindAccess)
	require.NoError(t, err)

	_, err = codec.Verify(raw, domaintoken.KindAccess)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

func TestJWTCodec_DecodeChecksSignature(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	uid := uuid.New()

	raw, _, err := codec.Issue(uid, domaintoken.KindRefresh)
	require.NoError(t, err)

	claims, err := codec.Decode(raw)
	require.NoError(t, err)
	require.Equal(t, uid.String(), claims.Subject)

	other := NewJWTCodec(&config.Config{
		AccessTokenSecret:  "access-secret-for-tests",
		RefreshTokenSecret: "a completely different secret",
		AccessTokenTTL:     time.Minute,
		RefreshTokenTTL:    time.Hour,
	})
	_, err = other.Decode(raw)
	require.ErrorIs(t, err, customErrors.ErrInvalidToken)
}

func TestJWTCodec_UniqueJTIs(t *testing.T) {
	codec := newTestCodec(time.Minute, time.Hour)
	uid := uuid.New()

	_, first, err := codec.Issue(uid, domaintoken.KindAccess)
	require.NoError(t, err)
	_, second, err := codec.Issue(uid, domaintoken.KindAccess)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}
