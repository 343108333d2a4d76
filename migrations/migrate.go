// Package migrations holds the embedded SQL schema of the coordinator's
// durable store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Dialect is the goose dialect of the durable store.
const Dialect = "sqlite3"

var errNilDB = errors.New("db is nil")

// Migrate brings the schema of db up to the latest embedded version.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version reports the schema version currently applied to db.
func Version(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errNilDB
	}
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect(Dialect); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	return goose.GetDBVersion(db)
}
