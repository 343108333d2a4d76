package service

import (
	"errors"

	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/vault"
)

var (
	ErrWalletNotFound = vault.ErrWalletNotFound
	ErrWalletExists   = vault.ErrWalletExists

	ErrLocked           = errors.New("wallet is locked")
	ErrUnlockInProgress = errors.New("unlock already in progress")
	ErrWrongPassword    = errors.New("wrong password")
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrInvalidMnemonic  = errors.New("invalid mnemonic")
	ErrInvalidName      = errors.New("invalid account name")
	ErrInvalidAutoLock  = errors.New("auto-lock minutes must not be negative")

	ErrAccountNotFound = keyring.ErrAccountNotFound

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Approval and external-origin errors.
var (
	ErrApprovalNotFound   = store.ErrApprovalNotFound
	ErrApprovalPending    = errors.New("approval is still pending")
	ErrApprovalExpired    = errors.New("approval timed out and was rejected")
	ErrInvalidApproval    = errors.New("invalid approval request")
	ErrRequestRejected    = errors.New("request rejected by user")
	ErrOriginNotPermitted = errors.New("origin is not enabled for chain")
	ErrInvalidRequest     = errors.New("invalid relay request")
)
