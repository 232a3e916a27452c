package credentials

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken — access-токен не является корректным JWT.
	ErrMalformedToken = errors.New("malformed access token")
)

// AccessClaims — полезная нагрузка access-токена, которую выпускает бэкенд.
type AccessClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// PeekClaims декодирует claims access-токена БЕЗ проверки подписи.
//
// Подпись знает только бэкенд, поэтому результат годится лишь для
// отображения (whoami в оффлайне, роль в шапке) и никогда не должен
// использоваться для принятия решений о доступе: авторитетный ответ
// даёт только сам бэкенд через 401.
func PeekClaims(access string) (*AccessClaims, error) {
	const op = "credentials.claims.PeekClaims"

	if access == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}

	var claims AccessClaims

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(access, &claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrMalformedToken)
	}

	return &claims, nil
}
