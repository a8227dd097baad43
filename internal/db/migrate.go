package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func newMigrate(uri string) (*migrate.Migrate, error) {
	conn, err := sqlx.Connect("postgres", uri)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	driver, err := postgres.WithInstance(conn.DB, &postgres.Config{})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize migration instance: %w", err)
	}
	return m, nil
}

// Migrate applies (Up) or rolls back (Down) every embedded migration.
func Migrate(uri string, dir Direction) error {
	m, err := newMigrate(uri)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info().Str("direction", string(dir)).Msg("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info().Str("direction", string(dir)).Msg("Migrations applied successfully")
	return nil
}

// MigrationVersion returns the current schema version. ok is false on a fresh database.
func MigrationVersion(uri string) (version uint, dirty bool, ok bool, err error) {
	m, err := newMigrate(uri)
	if err != nil {
		return 0, false, false, err
	}
	defer closeMigrate(m)

	version, dirty, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("failed to read migration version: %w", err)
	}
	return version, dirty, true, nil
}

func closeMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		log.Warn().AnErr("source_error", srcErr).AnErr("db_error", dbErr).Msg("Failed to close migration instance")
	}
}
