// filepath: internal/repository/migration.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"moviecatalog/internal/db/migrations"
	"moviecatalog/internal/logging"

	"github.com/pressly/goose/v3"
)

// ErrSchemaOutdated is returned by ValidateSchema when migrations are pending.
var ErrSchemaOutdated = errors.New("database schema is outdated")

// configureGoose points goose at the embedded migrations.
func configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	return goose.SetDialect("sqlite3")
}

// Migrate runs a goose command ("up", "down" or "status") against the database.
func (s *Repository) Migrate(command string) error {
	if err := configureGoose(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// The migrations are embedded, so "." is the root of the embedded FS.
	switch command {
	case "up":
		return goose.Up(s.DB, ".")
	case "down":
		return goose.Down(s.DB, ".")
	case "status":
		return goose.Status(s.DB, ".")
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
}

// EnsureSchemaBootstrapped migrates a brand new database to the latest version.
// A database that already carries a goose version table is left alone so that
// upgrades stay an explicit `migrate up`.
func (s *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := s.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		logging.Log.Debug("Schema version table found, skipping bootstrap.")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	logging.Log.Info("Fresh database detected, applying migrations.")
	if err := s.Migrate("up"); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}

// ValidateSchema returns ErrSchemaOutdated if the database is behind the embedded migrations.
func (s *Repository) ValidateSchema() error {
	if err := configureGoose(); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	current, err := goose.GetDBVersion(s.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	known, err := goose.CollectMigrations(".", 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	latest, err := known.Last()
	if err != nil {
		return fmt.Errorf("failed to find latest migration: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("%w: at version %d, expected %d (run 'moviecatalog migrate up')", ErrSchemaOutdated, current, latest.Version)
	}
	return nil
}
