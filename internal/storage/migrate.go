package storage

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationStatus reports the schema version before and after Migrate.
type MigrationStatus struct {
	PreVersion  uint
	PostVersion uint
}

// Migrate applies every pending migration found at sourceURL, e.g.
// "file://migrations".
func Migrate(db *sql.DB, sourceURL string) (MigrationStatus, error) {
	var status MigrationStatus

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return status, err
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return status, err
	}

	status.PreVersion, _, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return status, err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, err
	}

	status.PostVersion, _, err = m.Version()
	if err != nil {
		return status, err
	}
	return status, nil
}
