package credentials

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims AccessClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	return raw
}

func TestPeekClaims_OK(t *testing.T) {
	t.Parallel()

	raw := signedToken(t, AccessClaims{
		UserID: "42",
		Role:   "teacher",
		Email:  "teacher@example.uz",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := PeekClaims(raw)
	require.NoError(t, err)
	require.Equal(t, "42", claims.UserID)
	require.Equal(t, "teacher", claims.Role)
	require.Equal(t, "teacher@example.uz", claims.Email)
}

// Подпись не проверяется: токен с любой подписью разбирается,
// в т.ч. уже просроченный.
func TestPeekClaims_ExpiredStillDecodes(t *testing.T) {
	t.Parallel()

	raw := signedToken(t, AccessClaims{
		UserID: "7",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	claims, err := PeekClaims(raw)
	require.NoError(t, err)
	require.Equal(t, "7", claims.UserID)
}

func TestPeekClaims_Empty(t *testing.T) {
	t.Parallel()

	_, err := PeekClaims("")
	require.ErrorIs(t, err, ErrNoCredentials)
}

func TestPeekClaims_Malformed(t *testing.T) {
	t.Parallel()

	_, err := PeekClaims("not-a-jwt")
	require.ErrorIs(t, err, ErrMalformedToken)
}
