package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/AkkAshy/kursi-sub000/internal/models"
	"github.com/AkkAshy/kursi-sub000/internal/pkg/log"
)

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
}

// authResponse — ответ логина/регистрации: профиль + пара токенов.
type authResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    models.User `json:"user"`
}

// Login выполняет вход и сохраняет выданную пару токенов в хранилище.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	in := map[string]string{"email": email, "password": password}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login/", in, &out); err != nil {
		return nil, err
	}

	pair := models.TokenPair{Access: out.Access, Refresh: out.Refresh}
	if err := c.creds.Set(ctx, pair); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Register создаёт аккаунт и сохраняет пару токенов: после регистрации
// пользователь сразу аутентифицирован.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register/", in, &out); err != nil {
		return nil, err
	}

	pair := models.TokenPair{Access: out.Access, Refresh: out.Refresh}
	if err := c.creds.Set(ctx, pair); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// Me возвращает профиль текущего пользователя.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me/", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout отзывает refresh-токен на бэкенде и очищает хранилище.
// Провал отзыва не мешает локальному выходу: пара очищается в любом случае.
func (c *Client) Logout(ctx context.Context) error {
	const op = "client.auth.Logout"

	if pair, ok := c.creds.Pair(); ok && pair.Refresh != "" {
		in := map[string]string{"refresh": pair.Refresh}
		if err := c.do(ctx, http.MethodPost, "/auth/logout/", in, nil); err != nil {
			log.WithOp(ctx, op).Warn("remote_logout_failed", slog.String("err", err.Error()))
		}
	}

	return c.creds.Clear(ctx)
}
