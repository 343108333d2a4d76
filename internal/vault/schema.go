package vault

import (
	"fmt"
	"maps"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	// WalletSchemaVersion is the current wallet record version.
	WalletSchemaVersion = 3
	// PreferencesSchemaVersion is the current preferences record version.
	PreferencesSchemaVersion = 2
)

// WalletMigrator returns the wallet record migration chain.
//
//	v1: accounts carry id, name, address, pubKey, algo only
//	v2: accounts gain hdPath and accountIndex; importedAccounts appears
//	v3: imported derived addresses nest per network instead of flat fields
func WalletMigrator() *Migrator {
	return NewMigrator(models.WalletRecordName, WalletSchemaVersion, map[int]Step{
		1: walletV1toV2,
		2: walletV2toV3,
	})
}

// PreferencesMigrator returns the preferences migration chain.
//
//	v1: selectedAccountId, autoLockMinutes
//	v2: adds selectedChainId
func PreferencesMigrator() *Migrator {
	return NewMigrator(models.PreferencesRecordName, PreferencesSchemaVersion, map[int]Step{
		1: preferencesV1toV2,
	})
}

func walletV1toV2(doc map[string]any) (map[string]any, error) {
	accounts, err := objectList(doc, "accounts")
	if err != nil {
		return nil, err
	}

	migrated := make([]any, 0, len(accounts))
	for i, a := range accounts {
		acc := maps.Clone(a)
		if _, ok := acc["accountIndex"]; !ok {
			acc["accountIndex"] = i
		}
		if _, ok := acc["hdPath"]; !ok {
			idx, err := intField(acc, "accountIndex")
			if err != nil {
				return nil, err
			}
			acc["hdPath"] = derivation.Path(derivation.Cosmos, idx)
		}
		migrated = append(migrated, acc)
	}

	out := maps.Clone(doc)
	out["accounts"] = migrated
	if _, ok := out["importedAccounts"]; !ok {
		out["importedAccounts"] = []any{}
	}
	return out, nil
}

func walletV2toV3(doc map[string]any) (map[string]any, error) {
	imported, err := objectList(doc, "importedAccounts")
	if err != nil {
		return nil, err
	}

	migrated := make([]any, 0, len(imported))
	for _, a := range imported {
		acc := maps.Clone(a)
		derived := map[string]any{}
		if existing, ok := acc["derivedAddresses"].(map[string]any); ok {
			derived = maps.Clone(existing)
		}
		if addr, ok := acc["bitcoinAddress"].(string); ok && addr != "" {
			derived["bitcoin"] = map[string]any{models.BitcoinMainnet: addr}
		}
		if addr, ok := acc["evmAddress"].(string); ok && addr != "" {
			derived["evm"] = map[string]any{models.EVMNetworkID: addr}
		}
		if addr, ok := acc["solanaAddress"].(string); ok && addr != "" {
			derived["solana"] = addr
		}
		delete(acc, "bitcoinAddress")
		delete(acc, "evmAddress")
		delete(acc, "solanaAddress")
		acc["derivedAddresses"] = derived
		migrated = append(migrated, acc)
	}

	out := maps.Clone(doc)
	out["importedAccounts"] = migrated
	return out, nil
}

func preferencesV1toV2(doc map[string]any) (map[string]any, error) {
	out := maps.Clone(doc)
	if v, ok := out["selectedChainId"].(string); !ok || v == "" {
		out["selectedChainId"] = models.DefaultChainID
	}
	return out, nil
}

func objectList(doc map[string]any, key string) ([]map[string]any, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrMalformedRecord, key, raw)
	}
	out := make([]map[string]any, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T", ErrMalformedRecord, key, i, item)
		}
		out = append(out, obj)
	}
	return out, nil
}

func intField(obj map[string]any, key string) (int, error) {
	switch v := obj[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s is %T", ErrMalformedRecord, key, obj[key])
}
