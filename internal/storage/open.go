package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/field_sync/internal/config"
	"github.com/shenikar/field_sync/pkg/postgres"
	"github.com/shenikar/field_sync/pkg/sqlite"
)

// Open создает хранилище по STORAGE_DRIVER. Для redis используется переданный клиент.
func Open(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return NewSQLiteStore(db), nil
	case "postgres":
		pool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresStore(pool), nil
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("storage: redis driver requires a redis client")
		}
		return NewRedisStore(redisClient), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}
