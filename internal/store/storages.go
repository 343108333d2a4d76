package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

// Storages groups the durable repositories and the ephemeral session store
// of one coordinator.
type Storages struct {
	RecordRepository     RecordRepository
	ApprovalRepository   ApprovalRepository
	PermissionRepository PermissionRepository
	SessionStore         SessionStore

	db *DB
}

// NewStorages opens the SQLite database named by cfg.DB.DSN, migrates it and
// opens a fresh session store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	sessions, err := NewSessionStore(logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		RecordRepository:     NewRecordRepository(db, logger),
		ApprovalRepository:   NewApprovalRepository(db, logger),
		PermissionRepository: NewPermissionRepository(db, logger),
		SessionStore:         sessions,
		db:                   db,
	}, nil
}

// Close releases the session store and the database connection.
func (s *Storages) Close() error {
	var sessErr error
	if s.SessionStore != nil {
		sessErr = s.SessionStore.Close()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
	}
	return sessErr
}
