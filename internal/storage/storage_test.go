package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/field_sync/internal/config"
	redisclient "github.com/shenikar/field_sync/pkg/redis"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore проверяет общий контракт Store для любого драйвера
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	key := "test:" + t.Name()

	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, key, []byte(`{"a":1}`)))
	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	require.NoError(t, s.Set(ctx, key, []byte(`{"a":2}`)))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(got))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	// удаление отсутствующего ключа не ошибка
	require.NoError(t, s.Delete(ctx, key))
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLiteStore(t *testing.T) {
	cfg := &config.Config{
		StorageDriver: "sqlite",
		SQLitePath:    filepath.Join(t.TempDir(), "field_sync.db"),
	}
	require.NoError(t, Migrate(cfg, silentLogger()))
	// повторный запуск миграций без изменений
	require.NoError(t, Migrate(cfg, silentLogger()))

	s, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}
	cfg := &config.Config{StorageDriver: "postgres", DatabaseURL: dsn}
	require.NoError(t, Migrate(cfg, silentLogger()))

	s, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	client, err := redisclient.NewRedisClient(context.Background(), addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	s, err := Open(context.Background(), &config.Config{StorageDriver: "redis"}, client)
	require.NoError(t, err)

	exerciseStore(t, s)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StorageDriver: "redis"}, nil)
	require.Error(t, err)

	_, err = Open(context.Background(), &config.Config{StorageDriver: "bolt"}, nil)
	require.Error(t, err)

	require.NoError(t, Migrate(&config.Config{StorageDriver: "memory"}, silentLogger()))
}
