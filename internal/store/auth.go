package store

import (
	"context"
	"sync"

	"github.com/AkkAshy/kursi-sub000/internal/client"
	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// AuthAPI — срез API-поверхности, нужный стору аутентификации.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, in client.RegisterInput) (*models.User, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// Auth — кэш профиля текущего пользователя.
// Парой токенов владеет credentials.Store; этот стор — её потребитель.
type Auth struct {
	api AuthAPI

	mu   sync.Mutex
	user *models.User
	err  error
}

// NewAuth создаёт стор аутентификации.
func NewAuth(api AuthAPI) *Auth {
	return &Auth{api: api}
}

// Login выполняет вход и кэширует профиль.
func (s *Auth) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.user = user
	s.err = nil

	return user, nil
}

// Register создаёт аккаунт и кэширует профиль.
func (s *Auth) Register(ctx context.Context, in client.RegisterInput) (*models.User, error) {
	user, err := s.api.Register(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.user = user
	s.err = nil

	return user, nil
}

// Fetch запрашивает профиль с бэкенда и кэширует его.
func (s *Auth) Fetch(ctx context.Context) (*models.User, error) {
	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.user = user
	s.err = nil

	return user, nil
}

// Logout выходит и сбрасывает кэш профиля.
func (s *Auth) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	if err != nil {
		s.err = err
		return err
	}

	s.err = nil

	return nil
}

// User возвращает кэшированный профиль (nil, если не загружен).
func (s *Auth) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user
}

// Err — последняя ошибка стора.
func (s *Auth) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// ClearErr сбрасывает сохранённую ошибку.
func (s *Auth) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = nil
}
