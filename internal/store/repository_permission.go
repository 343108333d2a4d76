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

// permissionRepository stores connection grants of external origins.
type permissionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPermissionRepository constructs a [PermissionRepository] over db.
func NewPermissionRepository(db *DB, logger *logger.Logger) PermissionRepository {
	logger.Debug().Msg("creating permission repository")
	return &permissionRepository{
		db:     db,
		logger: logger,
	}
}

// Grant records that origin may use chainID. Granting twice refreshes the
// timestamp.
func (p *permissionRepository) Grant(ctx context.Context, perm models.OriginPermission) error {
	query, args, err := builder.
		Insert("origin_permissions").
		Columns("origin", "chain_id", "granted_at").
		Values(perm.Origin, perm.ChainID, perm.GrantedAt.UnixMilli()).
		Suffix("ON CONFLICT(origin, chain_id) DO UPDATE SET granted_at = excluded.granted_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := p.db.execRetry(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*permissionRepository.Grant").
			Str("origin", perm.Origin).
			Str("chain_id", perm.ChainID).
			Msg("failed to grant permission")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// Revoke drops every grant of origin and returns how many were removed.
func (p *permissionRepository) Revoke(ctx context.Context, origin string) (int64, error) {
	query, args, err := builder.Delete("origin_permissions").Where(sq.Eq{"origin": origin}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.db.execRetry(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*permissionRepository.Revoke").Str("origin", origin).Msg("failed to revoke permissions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return res.RowsAffected()
}

// Has reports whether origin was granted chainID.
func (p *permissionRepository) Has(ctx context.Context, origin, chainID string) (bool, error) {
	query, args, err := builder.
		Select("1").
		From("origin_permissions").
		Where(sq.Eq{"origin": origin, "chain_id": chainID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return true, nil
}

// List returns all grants ordered by origin and chain.
func (p *permissionRepository) List(ctx context.Context) ([]models.OriginPermission, error) {
	query, args, err := builder.
		Select("origin", "chain_id", "granted_at").
		From("origin_permissions").
		OrderBy("origin", "chain_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	perms := make([]models.OriginPermission, 0)
	for rows.Next() {
		var (
			perm      models.OriginPermission
			grantedAt int64
		)
		if err := rows.Scan(&perm.Origin, &perm.ChainID, &grantedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		perm.GrantedAt = time.UnixMilli(grantedAt).UTC()
		perms = append(perms, perm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return perms, nil
}
