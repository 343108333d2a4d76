// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/migrations"
)

// builder produces SQLite-flavoured statements with "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// DB is the coordinator's durable database. Writes go through execRetry so
// lock contention between the daemon's goroutines is absorbed.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to the latest embedded migration.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("failed to migrate database")
		return fmt.Errorf("migrate database: %w", err)
	}
	db.logger.Debug().Msg("database schema is up to date")
	return nil
}
