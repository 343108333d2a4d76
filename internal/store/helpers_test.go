package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

// newMockDB returns a DB over sqlmock for failure paths.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{DB: conn, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}, mock
}

// newSQLiteDB opens and migrates a throwaway database file.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(testContext(), filepath.Join(t.TempDir(), "wallet.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}
