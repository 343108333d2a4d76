package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// ErrorClassification tells whether a failed database operation is worth
// retrying.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors and constraint
	// violations.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient lock contention.
	Retryable
)

const (
	maxRetries   = 3
	retryBackoff = 20 * time.Millisecond
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}

// isUniqueViolation reports a UNIQUE or PRIMARY KEY constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// execRetry runs a write statement, retrying while the database reports
// transient lock contention.
func (db *DB) execRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)
	for attempt := 0; attempt < maxRetries; attempt++ {
		res, err = db.ExecContext(ctx, query, args...)
		if err == nil || db.classifier().Classify(err) != Retryable {
			return res, err
		}
		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt+1).Msg("database is busy, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt+1)):
		}
	}
	return res, err
}

func (db *DB) classifier() ErrorClassificator {
	if db.errorClassificator == nil {
		return NewSQLiteErrorClassifier()
	}
	return db.errorClassificator
}
