package database

import (
	"embed"
	"errors"
	"fmt"

	"healthtrack/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies the embedded versioned migrations to a PostgreSQL
// database. SQLite deployments rely on EnsureSchema instead.
func Migrate(cfg config.DBConfig, down bool) error {
	if cfg.Driver != config.DriverPostgres {
		return fmt.Errorf("versioned migrations require DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Driver)
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.MigrateURL())
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logrus.Info("Database schema already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logrus.Infof("Database migrated to version %d (dirty=%t)", version, dirty)
	return nil
}
