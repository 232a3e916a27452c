package credentials

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestFileStore_LoadMissingFile_IsNotError(t *testing.T) {
	t.Parallel()

	s := newFileStore(t)
	require.NoError(t, s.Load(context.Background()))

	_, held := s.Pair()
	require.False(t, held)
	require.False(t, s.IsAuthenticated())
}

// Сохранённая пара переживает "перезапуск": новый инстанс поверх того же
// файла видит ровно то, что записал предыдущий.
func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.json")
	ctx := context.Background()

	first := NewFileStore(path)
	pair := models.TokenPair{Access: "access-1", Refresh: "refresh-1"}
	require.NoError(t, first.Set(ctx, pair))

	second := NewFileStore(path)
	require.NoError(t, second.Load(ctx))

	got, held := second.Pair()
	require.True(t, held)
	require.Equal(t, pair, got)
	require.True(t, second.IsAuthenticated())
}

// Формат персиста — плоский JSON {access, refresh}.
func TestFileStore_PersistFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set(context.Background(), models.TokenPair{Access: "a", Refresh: "r"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var blob map[string]string
	require.NoError(t, json.Unmarshal(raw, &blob))
	require.Equal(t, map[string]string{"access": "a", "refresh": "r"}, blob)
}

func TestFileStore_SetAccess(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.json")
	ctx := context.Background()

	s := NewFileStore(path)
	require.NoError(t, s.Set(ctx, models.TokenPair{Access: "old", Refresh: "keep"}))
	require.NoError(t, s.SetAccess(ctx, "new"))

	got, held := s.Pair()
	require.True(t, held)
	require.Equal(t, "new", got.Access)
	require.Equal(t, "keep", got.Refresh)

	// Новый access персистится.
	reloaded := NewFileStore(path)
	require.NoError(t, reloaded.Load(ctx))
	pair, _ := reloaded.Pair()
	require.Equal(t, "new", pair.Access)
}

func TestFileStore_SetAccessWithoutPair(t *testing.T) {
	t.Parallel()

	s := newFileStore(t)
	err := s.SetAccess(context.Background(), "access")
	require.ErrorIs(t, err, ErrNoCredentials)
}

// Clear не оставляет следов: ни в памяти, ни на диске.
func TestFileStore_Clear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.json")
	ctx := context.Background()

	s := NewFileStore(path)
	require.NoError(t, s.Set(ctx, models.TokenPair{Access: "a", Refresh: "r"}))
	require.NoError(t, s.Clear(ctx))

	_, held := s.Pair()
	require.False(t, held)
	require.False(t, s.IsAuthenticated())

	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist)

	// Повторный Clear без файла — не ошибка.
	require.NoError(t, s.Clear(ctx))
}

func TestFileStore_LoadBrokenJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	s := NewFileStore(path)
	require.Error(t, s.Load(context.Background()))
}

func TestFileStore_CreatesParentDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "credentials.json")
	s := NewFileStore(path)

	require.NoError(t, s.Set(context.Background(), models.TokenPair{Access: "a", Refresh: "r"}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
