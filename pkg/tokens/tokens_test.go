package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestNewAndParse(t *testing.T) {
	t.Parallel()

	token, err := New("64f000000000000000000001", "buyer@example.com", "buyer", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.Subject)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "buyer", claims.Role)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenTTL, ttl)
}

func TestParseWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := New("64f000000000000000000001", "buyer@example.com", "buyer", testSecret)
	require.NoError(t, err)

	_, err = Parse(token, []byte("another-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	t.Parallel()

	_, err := Parse("not.a.token", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = Parse("", testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseExpired(t *testing.T) {
	t.Parallel()

	claims := Claims{
		Email: "buyer@example.com",
		Role:  "buyer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "64f000000000000000000001",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNonHMAC(t *testing.T) {
	t.Parallel()

	// alg=none tokens must never validate, whatever the payload says.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "x"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(token, testSecret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
