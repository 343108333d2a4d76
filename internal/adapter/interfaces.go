// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the coordinator's message endpoint.
//
// [CoordinatorAdapter] is what a UI context uses; [RelayAdapter] is what a
// relay context uses on behalf of one external origin. Both talk HTTP via
// resty. Error statuses are mapped to the sentinel values in errors.go so
// callers can use [errors.Is] (e.g. [ErrLocked] for 423).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CoordinatorAdapter drives the wallet from a UI context.
type CoordinatorAdapter interface {
	Status(ctx context.Context) (models.WalletStatus, error)

	// CreateWallet returns the generated mnemonic. It is shown once and
	// never retrievable again.
	CreateWallet(ctx context.Context, password string, words int) (string, error)
	ImportWallet(ctx context.Context, mnemonic, password string) error
	Unlock(ctx context.Context, password string) error
	Lock(ctx context.Context) error

	Accounts(ctx context.Context) ([]models.Account, error)
	AddAccount(ctx context.Context, name string) (models.Account, error)
	ImportAccount(ctx context.Context, req models.ImportAccountRequest) (models.Account, error)
	SelectAccount(ctx context.Context, id string) error
	SetAutoLock(ctx context.Context, minutes int) error

	Approvals(ctx context.Context) ([]models.PendingApproval, error)
	ResolveApproval(ctx context.Context, id string, approved bool) error
	Permissions(ctx context.Context) ([]models.OriginPermission, error)
	RevokePermission(ctx context.Context, origin string) error

	Version(ctx context.Context) (models.AppBuildInfo, error)
}

// RelayAdapter forwards requests of a single external origin.
type RelayAdapter interface {
	Origin() string

	GetKey(ctx context.Context, chainID string) (models.Key, error)
	VerifyArbitrary(ctx context.Context, req models.VerifyArbitraryRequest) (bool, error)
	Disable(ctx context.Context) error

	// Submit queues an approval-gated request; Result polls it once.
	Submit(ctx context.Context, req models.RelayRequest) (models.RelayResult, error)
	Result(ctx context.Context, id string) (models.RelayResult, error)

	// Relay submits req and polls until the user decides. A rejection is
	// returned as [ErrRejected]. If ctx ends first the request stays queued
	// and can be resumed with Result.
	Relay(ctx context.Context, req models.RelayRequest) (models.RelayResult, error)
}
