// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var sessionKey = []byte("session")

// levelSessionStore keeps the session snapshot in a goleveldb instance over
// in-memory storage. Its contents die with the process, which bounds how long
// an unlocked keyring can be rehydrated without a password.
type levelSessionStore struct {
	mu     sync.Mutex
	db     *leveldb.DB
	logger *logger.Logger
}

// NewSessionStore opens an empty in-memory [SessionStore].
func NewSessionStore(log *logger.Logger) (SessionStore, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		log.Err(err).Str("func", "NewSessionStore").Msg("failed to open session store")
		return nil, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	log.Debug().Msg("creating session store")
	return &levelSessionStore{db: db, logger: log}, nil
}

// Save replaces the snapshot.
func (s *levelSessionStore) Save(ctx context.Context, snap models.SessionSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(ctx, snap)
}

// Load returns the snapshot or [ErrSessionNotFound].
func (s *levelSessionStore) Load(ctx context.Context) (models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(ctx)
}

// Touch moves the last-activity timestamp of the current snapshot to at.
func (s *levelSessionStore) Touch(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.get(ctx)
	if err != nil {
		return err
	}
	snap.LastActivityTimestamp = at.UnixMilli()
	return s.put(ctx, snap)
}

// Clear removes the snapshot. Clearing an empty store is not an error.
func (s *levelSessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Delete(sessionKey, nil); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*levelSessionStore.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return nil
}

// Close releases the underlying database and everything in it.
func (s *levelSessionStore) Close() error {
	return s.db.Close()
}

func (s *levelSessionStore) get(ctx context.Context) (models.SessionSnapshot, error) {
	raw, err := s.db.Get(sessionKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return models.SessionSnapshot{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*levelSessionStore.get").Msg("failed to read session")
		return models.SessionSnapshot{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	var snap models.SessionSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.SessionSnapshot{}, fmt.Errorf("%w: decode snapshot: %w", ErrSessionStore, err)
	}
	return snap, nil
}

func (s *levelSessionStore) put(ctx context.Context, snap models.SessionSnapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encode snapshot: %w", ErrSessionStore, err)
	}
	if err := s.db.Put(sessionKey, raw, nil); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*levelSessionStore.put").Msg("failed to write session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return nil
}
