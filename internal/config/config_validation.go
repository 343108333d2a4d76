package config

import (
	"slices"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
)

// validate checks a fully merged configuration. A zero-value config (no
// sources at all) is accepted so partial builders stay usable in tests.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.BitcoinNetwork != "" {
		if _, err := derivation.ParseNetwork(cfg.App.BitcoinNetwork); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	for _, name := range cfg.App.EnabledSchemes {
		if _, err := derivation.ParseScheme(name); err != nil {
			return ErrInvalidAppConfigs
		}
	}
	if len(cfg.App.EnabledSchemes) > 0 && !slices.Contains(cfg.App.EnabledSchemes, string(derivation.Cosmos)) {
		// accounts are identified by their Cosmos key
		return ErrInvalidAppConfigs
	}

	if cfg.App.AutoLockMinutes < 0 || cfg.App.ApprovalTimeout < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.AutoLockInterval < 0 || cfg.Workers.ApprovalSweepInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateClient checks what walletctl needs to reach the coordinator.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.Address == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.PollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// ValidateServer checks what walletd needs before it starts serving.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.Address == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Workers.AutoLockInterval <= 0 || cfg.Workers.ApprovalSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if cfg.App.ApprovalTimeout <= 0 || cfg.App.Bech32Prefix == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
