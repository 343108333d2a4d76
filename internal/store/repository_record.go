package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// recordRepository is the SQLite-backed implementation of [RecordRepository].
// Each record is a single row, so a write is atomic at the record level.
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] over db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

// GetRecord returns the record stored under name or [ErrRecordNotFound].
func (r *recordRepository) GetRecord(ctx context.Context, name string) (models.RawRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Select("name", "schema_version", "body", "updated_at").
		From("records").
		Where("name = ?", name).
		ToSql()
	if err != nil {
		return models.RawRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rec       models.RawRecord
		updatedAt int64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&rec.Name, &rec.SchemaVersion, &rec.Body, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RawRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.GetRecord").Str("record", name).Msg("failed to read record")
		return models.RawRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return rec, nil
}

// PutRecord inserts or replaces the record in a single statement.
func (r *recordRepository) PutRecord(ctx context.Context, record models.RawRecord) error {
	log := logger.FromContext(ctx)

	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now()
	}

	query, args, err := builder.
		Insert("records").
		Columns("name", "schema_version", "body", "updated_at").
		Values(record.Name, record.SchemaVersion, record.Body, record.UpdatedAt.UnixMilli()).
		Suffix("ON CONFLICT(name) DO UPDATE SET schema_version = excluded.schema_version, body = excluded.body, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.execRetry(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*recordRepository.PutRecord").Str("record", record.Name).Msg("failed to write record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*recordRepository.PutRecord").
		Str("record", record.Name).
		Int("schema_version", record.SchemaVersion).
		Msg("record written")

	return nil
}
