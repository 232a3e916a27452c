package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// FileStore хранит пару access/refresh в одном JSON-файле
// вида {"access": "...", "refresh": "..."} — тот же блоб, что кладётся
// в durable storage браузерного клиента.
type FileStore struct {
	path string

	mu   sync.RWMutex
	pair models.TokenPair
	held bool
}

// NewFileStore создаёт файловое хранилище. Файл не читается до Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load читает сохранённую пару. Отсутствие файла — нормальное
// начальное состояние.
func (s *FileStore) Load(_ context.Context) error {
	const op = "credentials.file.Load"

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	var pair models.TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.pair = pair
	s.held = !pair.Empty()
	s.mu.Unlock()

	return nil
}

// Set заменяет пару в памяти и на диске.
func (s *FileStore) Set(_ context.Context, pair models.TokenPair) error {
	const op = "credentials.file.Set"

	if err := s.persist(pair); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.pair = pair
	s.held = true
	s.mu.Unlock()

	return nil
}

// SetAccess заменяет только access-токен; refresh остаётся прежним.
func (s *FileStore) SetAccess(_ context.Context, access string) error {
	const op = "credentials.file.SetAccess"

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.held {
		return fmt.Errorf("%s: %w", op, ErrNoCredentials)
	}

	next := s.pair
	next.Access = access

	if err := s.persist(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.pair = next

	return nil
}

// Clear удаляет пару из памяти и с диска. Отсутствие файла не ошибка.
func (s *FileStore) Clear(_ context.Context) error {
	const op = "credentials.file.Clear"

	s.mu.Lock()
	s.pair = models.TokenPair{}
	s.held = false
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Pair возвращает текущую пару и признак её наличия.
func (s *FileStore) Pair() (models.TokenPair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pair, s.held
}

// IsAuthenticated — true, если access-токен присутствует.
func (s *FileStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pair.Access != ""
}

// persist пишет пару во временный файл и атомарно подменяет целевой,
// чтобы параллельный Load не увидел обрезанный JSON.
func (s *FileStore) persist(pair models.TokenPair) error {
	raw, err := json.Marshal(pair)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
