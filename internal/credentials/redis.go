package credentials

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// RedisStore хранит пару access/refresh в Redis — вариант для серверного
// встраивания SDK, где на каждую пользовательскую сессию создаётся свой
// экземпляр с собственным sessionID.
//
// Храним как Redis Hash с полями: access, refresh.
type RedisStore struct {
	rdb *redis.Client
	key string

	mu   sync.RWMutex
	pair models.TokenPair
	held bool
}

// NewRedisStore создаёт хранилище из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "kursi:creds:".
func NewRedisStore(redisURL, prefix, sessionID string) (*RedisStore, error) {
	const op = "credentials.redis.NewRedisStore"

	if sessionID == "" {
		return nil, fmt.Errorf("%s: empty session id", op)
	}

	if prefix == "" {
		prefix = "kursi:creds:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RedisStore{rdb: rdb, key: prefix + sessionID}, nil
}

// Load читает сохранённую пару. Отсутствие ключа — нормальное
// начальное состояние.
func (s *RedisStore) Load(ctx context.Context) error {
	const op = "credentials.redis.Load"

	m, err := s.rdb.HGetAll(ctx, s.key).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(m) == 0 {
		return nil
	}

	pair := models.TokenPair{
		Access:  m["access"],
		Refresh: m["refresh"],
	}

	s.mu.Lock()
	s.pair = pair
	s.held = !pair.Empty()
	s.mu.Unlock()

	return nil
}

// Set заменяет пару в памяти и в Redis.
func (s *RedisStore) Set(ctx context.Context, pair models.TokenPair) error {
	const op = "credentials.redis.Set"

	kv := map[string]string{
		"access":  pair.Access,
		"refresh": pair.Refresh,
	}

	if err := s.rdb.HSet(ctx, s.key, kv).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.pair = pair
	s.held = true
	s.mu.Unlock()

	return nil
}

// SetAccess заменяет только access-токен.
func (s *RedisStore) SetAccess(ctx context.Context, access string) error {
	const op = "credentials.redis.SetAccess"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.held {
		return fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}

	if err := s.rdb.HSet(ctx, s.key, "access", access).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.pair.Access = access

	return nil
}

// Clear удаляет пару из памяти и из Redis.
func (s *RedisStore) Clear(ctx context.Context) error {
	const op = "credentials.redis.Clear"

	s.mu.Lock()
	s.pair = models.TokenPair{}
	s.held = false
	s.mu.Unlock()

	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Pair возвращает текущую пару и признак её наличия.
func (s *RedisStore) Pair() (models.TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pair, s.held
}

// IsAuthenticated — true, если access-токен присутствует.
func (s *RedisStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pair.Access != ""
}

// Close закрывает клиент Redis.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
