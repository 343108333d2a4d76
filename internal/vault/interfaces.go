package vault

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_store_mock.go -package=mock

// RecordStore persists whole schema-versioned records. PutRecord must
// replace a record atomically; GetRecord returns store.ErrRecordNotFound
// for an absent name.
type RecordStore interface {
	GetRecord(ctx context.Context, name string) (models.RawRecord, error)
	PutRecord(ctx context.Context, record models.RawRecord) error
}
