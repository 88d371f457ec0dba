package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huecas/internal/pkg/auth/jwt"
)

// signToken issues an HS256 token with the given expiry, mimicking what the
// backend hands out.
func signToken(t *testing.T, expiresAt int64) string {
	t.Helper()

	claims := gojwt.StandardClaims{
		Subject:   "u1",
		ExpiresAt: expiresAt,
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

func TestPeekExpiry(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, expiry.Unix())

	got, err := jwt.PeekExpiry(token)
	require.NoError(t, err)
	assert.True(t, got.Equal(expiry))
}

func TestPeekExpiry_Malformed(t *testing.T) {
	_, err := jwt.PeekExpiry("not-a-token")
	assert.Error(t, err)
}

func TestPeekExpiry_NoExpClaim(t *testing.T) {
	token := signToken(t, 0)

	_, err := jwt.PeekExpiry(token)
	assert.Error(t, err)
}

func TestIsExpired(t *testing.T) {
	now := time.Now()

	fresh := signToken(t, now.Add(time.Hour).Unix())
	assert.False(t, jwt.IsExpired(fresh, now))

	stale := signToken(t, now.Add(-time.Hour).Unix())
	assert.True(t, jwt.IsExpired(stale, now))

	// unreadable expiry is reported as not expired; the server decides anyway
	assert.False(t, jwt.IsExpired("garbage", now))
}
