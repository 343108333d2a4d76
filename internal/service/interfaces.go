package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WalletService is the lock/session state machine of one coordinator.
type WalletService interface {
	Status(ctx context.Context) (models.WalletStatus, error)

	Create(ctx context.Context, password string, words int) (string, error)
	Import(ctx context.Context, mnemonic, password string) error
	Unlock(ctx context.Context, password string) error
	Lock(ctx context.Context) error
	VerifyPassword(ctx context.Context, password string) (bool, error)

	AddAccount(ctx context.Context, name string) (models.Account, error)
	ImportAccount(ctx context.Context, name, mnemonic, password string) (models.Account, error)
	DeriveImportedAccount(ctx context.Context, parentID, name, password string) (models.Account, error)
	Accounts(ctx context.Context) ([]models.Account, error)

	Touch(ctx context.Context) error
	CheckAutoLock(ctx context.Context) (bool, error)

	// Keyring returns the unlocked keyring. It is the only way other
	// services reach key material.
	Keyring(ctx context.Context) (*keyring.Keyring, error)

	Preferences(ctx context.Context) (models.Preferences, error)
	SetAutoLockMinutes(ctx context.Context, minutes int) error
	SelectAccount(ctx context.Context, id string) error
	SelectChain(ctx context.Context, chainID string) error
}

// ApprovalService is the durable approval queue.
type ApprovalService interface {
	// RequestApproval enqueues and waits for the decision. A timeout
	// resolves as false, not as an error.
	RequestApproval(ctx context.Context, kind models.ApprovalKind, origin string, payload json.RawMessage) (bool, error)

	Enqueue(ctx context.Context, kind models.ApprovalKind, origin string, payload json.RawMessage) (models.PendingApproval, error)
	Await(ctx context.Context, id string) (bool, error)
	Check(ctx context.Context, id string) (models.ApprovalOutcome, error)
	Consume(ctx context.Context, id string) error

	Resolve(ctx context.Context, id string, approved bool) error
	Get(ctx context.Context, id string) (models.PendingApproval, error)
	List(ctx context.Context) ([]models.PendingApproval, error)
	Count(ctx context.Context) (int, error)
	ExpireStale(ctx context.Context) (int, error)
}

// SigningService gates every key operation requested by an external origin.
type SigningService interface {
	Enable(ctx context.Context, origin, chainID string) (bool, error)
	Disable(ctx context.Context, origin string) error
	Permissions(ctx context.Context) ([]models.OriginPermission, error)

	GetKey(ctx context.Context, origin, chainID string) (models.Key, error)
	SignAmino(ctx context.Context, origin, chainID, signer string, doc models.StdSignDoc) (models.AminoSignResponse, error)
	SignDirect(ctx context.Context, origin, chainID, signer string, doc models.DirectSignDoc) (models.DirectSignResponse, error)
	SignArbitrary(ctx context.Context, origin, chainID, signer string, data []byte) (models.StdSignature, error)
	VerifyArbitrary(ctx context.Context, origin, chainID, signer string, data []byte, sig models.StdSignature) (bool, error)

	// Submit and Result are the resumable form of the approval-gated
	// operations: Submit returns an id, Result is polled until it settles.
	Submit(ctx context.Context, req models.RelayRequest) (models.RelayResult, error)
	Result(ctx context.Context, id string) (models.RelayResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppBuildInfo
}

// WalletVault is the part of vault.Vault the wallet service uses.
type WalletVault interface {
	Exists(ctx context.Context) (bool, error)
	CreateWallet(ctx context.Context, mnemonic, password string, accounts []models.StoredAccount) (models.WalletRecord, error)
	LoadWallet(ctx context.Context) (models.WalletRecord, error)
	SaveWallet(ctx context.Context, rec models.WalletRecord) error
	DecryptMain(rec models.WalletRecord, password string) (string, error)
	DecryptImported(rec models.WalletRecord, id, password string) (string, error)
	EncryptImported(mnemonic, password string) (models.EncryptedSecret, error)
	VerifyPassword(ctx context.Context, password string) (bool, error)
	LoadPreferences(ctx context.Context) (models.Preferences, error)
	SavePreferences(ctx context.Context, prefs models.Preferences) error
}

// Publisher notifies peer contexts.
type Publisher interface {
	Publish(topic bus.Topic, payload any) int
}

// Clock is swapped in tests.
type Clock func() time.Time
