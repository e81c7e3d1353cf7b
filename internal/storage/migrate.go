package storage

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shenikar/field_sync/internal/config"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate применяет миграции для SQL драйверов хранилища. Для redis и memory ничего не делает.
func Migrate(cfg *config.Config, log *logrus.Logger) error {
	var dir, databaseURL string
	switch cfg.StorageDriver {
	case "sqlite":
		dir = "migrations/sqlite"
		databaseURL = "sqlite3://" + cfg.SQLitePath
	case "postgres":
		dir = "migrations/postgres"
		databaseURL = cfg.DatabaseURL
		if !strings.HasPrefix(databaseURL, "pgx5://") {
			databaseURL = strings.Replace(databaseURL, "postgres://", "pgx5://", 1)
			databaseURL = strings.Replace(databaseURL, "postgresql://", "pgx5://", 1)
		}
	default:
		return nil
	}

	log.WithField("driver", cfg.StorageDriver).Info("Running storage migrations...")

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Storage migrations applied successfully")
	return nil
}
