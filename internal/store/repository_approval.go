// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

var (
	pendingColumns = []string{"id", "kind", "origin", "payload", "created_at"}
	outcomeColumns = []string{"id", "kind", "origin", "payload", "approved", "resolved_at"}
)

// approvalRepository is the SQLite-backed implementation of
// [ApprovalRepository].
//
// Pending approvals and their outcomes live in separate tables. Resolving an
// approval moves it from one to the other inside a transaction, so a caller
// polling by id always sees exactly one of the two.
type approvalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewApprovalRepository constructs an [ApprovalRepository] over db.
func NewApprovalRepository(db *DB, logger *logger.Logger) ApprovalRepository {
	logger.Debug().Msg("creating approval repository")
	return &approvalRepository{
		db:     db,
		logger: logger,
	}
}

// InsertPending appends a new pending approval.
func (a *approvalRepository) InsertPending(ctx context.Context, p models.PendingApproval) error {
	log := logger.FromContext(ctx)

	query, args, err := builder.
		Insert("pending_approvals").
		Columns(pendingColumns...).
		Values(p.ID, string(p.Kind), p.Origin, []byte(p.Payload), p.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := a.db.execRetry(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrApprovalExists
		}
		log.Err(err).Str("func", "*approvalRepository.InsertPending").Str("id", p.ID).Msg("failed to insert pending approval")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*approvalRepository.InsertPending").
		Str("id", p.ID).
		Str("kind", string(p.Kind)).
		Str("origin", p.Origin).
		Msg("pending approval stored")

	return nil
}

// GetPending returns the pending approval with the given id.
func (a *approvalRepository) GetPending(ctx context.Context, id string) (models.PendingApproval, error) {
	return a.getPending(ctx, builder.Select(pendingColumns...).From("pending_approvals").Where(sq.Eq{"id": id}))
}

// OldestPending returns the pending approval created first.
func (a *approvalRepository) OldestPending(ctx context.Context) (models.PendingApproval, error) {
	return a.getPending(ctx, builder.Select(pendingColumns...).From("pending_approvals").OrderBy("created_at", "id").Limit(1))
}

func (a *approvalRepository) getPending(ctx context.Context, sel sq.SelectBuilder) (models.PendingApproval, error) {
	log := logger.FromContext(ctx)

	query, args, err := sel.ToSql()
	if err != nil {
		return models.PendingApproval{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanPending(a.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PendingApproval{}, ErrApprovalNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*approvalRepository.getPending").Msg("failed to read pending approval")
		return models.PendingApproval{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return p, nil
}

// ListPending returns all pending approvals, oldest first.
func (a *approvalRepository) ListPending(ctx context.Context) ([]models.PendingApproval, error) {
	return a.listPending(ctx, builder.Select(pendingColumns...).From("pending_approvals").OrderBy("created_at", "id"))
}

// ListCreatedBefore returns pending approvals created at or before t.
func (a *approvalRepository) ListCreatedBefore(ctx context.Context, t time.Time) ([]models.PendingApproval, error) {
	return a.listPending(ctx, builder.Select(pendingColumns...).
		From("pending_approvals").
		Where(sq.LtOrEq{"created_at": t.UnixMilli()}).
		OrderBy("created_at", "id"))
}

func (a *approvalRepository) listPending(ctx context.Context, sel sq.SelectBuilder) ([]models.PendingApproval, error) {
	log := logger.FromContext(ctx)

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*approvalRepository.listPending").Msg("failed to query pending approvals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.PendingApproval, 0)
	for rows.Next() {
		p, err := scanPending(rows)
		if err != nil {
			log.Err(err).Str("func", "*approvalRepository.listPending").Msg("failed to scan pending approval")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// CountPending returns the number of pending approvals.
func (a *approvalRepository) CountPending(ctx context.Context) (int, error) {
	query, args, err := builder.Select("COUNT(*)").From("pending_approvals").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := a.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*approvalRepository.CountPending").Msg("failed to count pending approvals")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return n, nil
}

// Resolve removes the pending approval and stores its outcome in one
// transaction. It returns [ErrApprovalNotFound] if id is not pending.
func (a *approvalRepository) Resolve(ctx context.Context, id string, approved bool, at time.Time) (models.ApprovalOutcome, error) {
	log := logger.FromContext(ctx)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*approvalRepository.Resolve").Str("id", id).Msg("failed to begin transaction")
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := builder.Select(pendingColumns...).From("pending_approvals").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	p, err := scanPending(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ApprovalOutcome{}, ErrApprovalNotFound
	}
	if err != nil {
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err = builder.Delete("pending_approvals").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*approvalRepository.Resolve").Str("id", id).Msg("failed to delete pending approval")
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	outcome := models.ApprovalOutcome{
		ID:         p.ID,
		Kind:       p.Kind,
		Origin:     p.Origin,
		Payload:    p.Payload,
		Approved:   approved,
		ResolvedAt: time.UnixMilli(at.UnixMilli()).UTC(),
	}
	query, args, err = builder.
		Insert("approval_outcomes").
		Columns(outcomeColumns...).
		Values(outcome.ID, string(outcome.Kind), outcome.Origin, []byte(outcome.Payload), outcome.Approved, at.UnixMilli()).
		Suffix("ON CONFLICT(id) DO UPDATE SET approved = excluded.approved, resolved_at = excluded.resolved_at").
		ToSql()
	if err != nil {
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*approvalRepository.Resolve").Str("id", id).Msg("failed to insert approval outcome")
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*approvalRepository.Resolve").Str("id", id).Msg("failed to commit transaction")
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "*approvalRepository.Resolve").
		Str("id", id).
		Bool("approved", approved).
		Msg("approval resolved")

	return outcome, nil
}

// GetOutcome returns the stored outcome of a resolved approval.
func (a *approvalRepository) GetOutcome(ctx context.Context, id string) (models.ApprovalOutcome, error) {
	query, args, err := builder.Select(outcomeColumns...).From("approval_outcomes").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	o, err := scanOutcome(a.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ApprovalOutcome{}, ErrOutcomeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*approvalRepository.GetOutcome").Str("id", id).Msg("failed to read approval outcome")
		return models.ApprovalOutcome{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return o, nil
}

// DeleteOutcome drops a consumed outcome. Deleting an absent outcome
// returns [ErrOutcomeNotFound], so two consumers cannot both succeed.
func (a *approvalRepository) DeleteOutcome(ctx context.Context, id string) error {
	query, args, err := builder.Delete("approval_outcomes").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*approvalRepository.DeleteOutcome").Str("id", id).Msg("failed to delete approval outcome")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrOutcomeNotFound
	}
	return nil
}

// DeleteOutcomesBefore drops outcomes nobody collected before t and returns
// how many were removed.
func (a *approvalRepository) DeleteOutcomesBefore(ctx context.Context, t time.Time) (int64, error) {
	query, args, err := builder.Delete("approval_outcomes").Where(sq.Lt{"resolved_at": t.UnixMilli()}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPending(row rowScanner) (models.PendingApproval, error) {
	var (
		p         models.PendingApproval
		kind      string
		payload   []byte
		createdAt int64
	)
	if err := row.Scan(&p.ID, &kind, &p.Origin, &payload, &createdAt); err != nil {
		return models.PendingApproval{}, err
	}
	p.Kind = models.ApprovalKind(kind)
	p.Payload = payload
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	return p, nil
}

func scanOutcome(row rowScanner) (models.ApprovalOutcome, error) {
	var (
		o          models.ApprovalOutcome
		kind       string
		payload    []byte
		resolvedAt int64
	)
	if err := row.Scan(&o.ID, &kind, &o.Origin, &payload, &o.Approved, &resolvedAt); err != nil {
		return models.ApprovalOutcome{}, err
	}
	o.Kind = models.ApprovalKind(kind)
	o.Payload = payload
	o.ResolvedAt = time.UnixMilli(resolvedAt).UTC()
	return o, nil
}
