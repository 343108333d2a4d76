package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// RecordRepository persists whole schema-versioned records (wallet,
// preferences). It satisfies vault.RecordStore.
type RecordRepository interface {
	GetRecord(ctx context.Context, name string) (models.RawRecord, error)
	PutRecord(ctx context.Context, record models.RawRecord) error
}

// ApprovalRepository is the durable source of truth of the approval queue.
type ApprovalRepository interface {
	InsertPending(ctx context.Context, p models.PendingApproval) error
	GetPending(ctx context.Context, id string) (models.PendingApproval, error)
	OldestPending(ctx context.Context) (models.PendingApproval, error)
	ListPending(ctx context.Context) ([]models.PendingApproval, error)
	ListCreatedBefore(ctx context.Context, t time.Time) ([]models.PendingApproval, error)
	CountPending(ctx context.Context) (int, error)
	Resolve(ctx context.Context, id string, approved bool, at time.Time) (models.ApprovalOutcome, error)
	GetOutcome(ctx context.Context, id string) (models.ApprovalOutcome, error)
	DeleteOutcome(ctx context.Context, id string) error
	DeleteOutcomesBefore(ctx context.Context, t time.Time) (int64, error)
}

// PermissionRepository stores which origins may talk to which chains.
type PermissionRepository interface {
	Grant(ctx context.Context, perm models.OriginPermission) error
	Revoke(ctx context.Context, origin string) (int64, error)
	Has(ctx context.Context, origin, chainID string) (bool, error)
	List(ctx context.Context) ([]models.OriginPermission, error)
}

// SessionStore holds the ephemeral session snapshot of an unlocked keyring.
type SessionStore interface {
	Save(ctx context.Context, snap models.SessionSnapshot) error
	Load(ctx context.Context) (models.SessionSnapshot, error)
	Touch(ctx context.Context, at time.Time) error
	Clear(ctx context.Context) error
	Close() error
}
