package service

import (
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/internal/validators"
	"github.com/MKhiriev/go-chain-keeper/internal/vault"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type Services struct {
	WalletService   WalletService
	ApprovalService ApprovalService
	SigningService  SigningService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, publisher Publisher, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	network, err := derivation.ParseNetwork(cfg.App.BitcoinNetwork)
	if err != nil {
		return nil, fmt.Errorf("bitcoin network: %w", err)
	}
	schemes, err := derivation.ParseSchemes(cfg.App.EnabledSchemes)
	if err != nil {
		return nil, fmt.Errorf("enabled schemes: %w", err)
	}
	params := derivation.Params{Bech32Prefix: cfg.App.Bech32Prefix, BitcoinNetwork: network}

	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	v := vault.New(storages.RecordRepository, crypto.NewSecretCipher(), cfg.App.AutoLockMinutes)
	wallet := NewWalletService(v, storages.SessionStore, publisher, params, schemes, logger)
	approvals := NewApprovalService(storages.ApprovalRepository, publisher, cfg.App.ApprovalTimeout, logger)

	return &Services{
		WalletService:   wallet,
		ApprovalService: approvals,
		SigningService:  NewSigningService(wallet, approvals, storages.PermissionRepository, validators.NewRelayRequestValidator(), logger),
		AppInfoService:  appInfo,
	}, nil
}
