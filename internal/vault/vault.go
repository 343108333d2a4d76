// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault persists the encrypted wallet and the user preferences as
// schema-versioned records, migrating them on load.
//
// Only salts, ciphertext and public account metadata reach the store.
package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// Vault reads and writes wallet and preferences records.
type Vault struct {
	records RecordStore
	cipher  crypto.SecretCipher

	wallet      *Migrator
	preferences *Migrator

	defaultAutoLock int
	now             func() time.Time
}

// New returns a vault over records. defaultAutoLockMinutes seeds the
// preferences record when none exists.
func New(records RecordStore, cipher crypto.SecretCipher, defaultAutoLockMinutes int) *Vault {
	return &Vault{
		records:         records,
		cipher:          cipher,
		wallet:          WalletMigrator(),
		preferences:     PreferencesMigrator(),
		defaultAutoLock: defaultAutoLockMinutes,
		now:             time.Now,
	}
}

// Exists reports whether a wallet record has been written.
func (v *Vault) Exists(ctx context.Context) (bool, error) {
	_, err := v.records.GetRecord(ctx, models.WalletRecordName)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check wallet record: %w", err)
	}
	return true, nil
}

// CreateWallet encrypts mnemonic under password and writes a new wallet
// record with the given primary accounts.
func (v *Vault) CreateWallet(ctx context.Context, mnemonic, password string, accounts []models.StoredAccount) (models.WalletRecord, error) {
	exists, err := v.Exists(ctx)
	if err != nil {
		return models.WalletRecord{}, err
	}
	if exists {
		return models.WalletRecord{}, ErrWalletExists
	}

	secret, err := v.cipher.Encrypt(mnemonic, password)
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("encrypt mnemonic: %w", err)
	}

	rec := models.WalletRecord{
		SchemaVersion:     WalletSchemaVersion,
		Salt:              secret.Salt,
		EncryptedMnemonic: secret.Ciphertext,
		Accounts:          accounts,
		ImportedAccounts:  []models.ImportedAccountRecord{},
	}
	if err := v.SaveWallet(ctx, rec); err != nil {
		return models.WalletRecord{}, err
	}
	return rec, nil
}

// LoadWallet reads the wallet record, migrating and immediately writing it
// back if it was stored under an older schema.
func (v *Vault) LoadWallet(ctx context.Context) (models.WalletRecord, error) {
	var rec models.WalletRecord
	err := v.load(ctx, models.WalletRecordName, v.wallet, &rec)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.WalletRecord{}, ErrWalletNotFound
	}
	if err != nil {
		return models.WalletRecord{}, err
	}
	if rec.Salt == "" || rec.EncryptedMnemonic == "" {
		return models.WalletRecord{}, fmt.Errorf("%w: wallet has no encrypted mnemonic", ErrMalformedRecord)
	}
	return rec, nil
}

// SaveWallet writes rec under the current schema version.
func (v *Vault) SaveWallet(ctx context.Context, rec models.WalletRecord) error {
	rec.SchemaVersion = WalletSchemaVersion
	if rec.Accounts == nil {
		rec.Accounts = []models.StoredAccount{}
	}
	if rec.ImportedAccounts == nil {
		rec.ImportedAccounts = []models.ImportedAccountRecord{}
	}
	return v.save(ctx, models.WalletRecordName, WalletSchemaVersion, rec)
}

// DecryptMain decrypts the primary mnemonic of rec.
func (v *Vault) DecryptMain(rec models.WalletRecord, password string) (string, error) {
	return v.cipher.Decrypt(rec.MainSecret(), password)
}

// DecryptImported decrypts the mnemonic owned by imported account id.
func (v *Vault) DecryptImported(rec models.WalletRecord, id, password string) (string, error) {
	for _, imp := range rec.ImportedAccounts {
		if imp.Account.ID == id {
			return v.cipher.Decrypt(imp.Secret(), password)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrImportedNotFound, id)
}

// EncryptImported encrypts an imported mnemonic under its own fresh salt.
func (v *Vault) EncryptImported(mnemonic, password string) (models.EncryptedSecret, error) {
	return v.cipher.Encrypt(mnemonic, password)
}

// VerifyPassword checks password against the stored main mnemonic. It is
// false only for a wrong password; corrupted storage is an error.
func (v *Vault) VerifyPassword(ctx context.Context, password string) (bool, error) {
	rec, err := v.LoadWallet(ctx)
	if err != nil {
		return false, err
	}
	return v.cipher.VerifyPassword(rec.MainSecret(), password)
}

// LoadPreferences returns the preferences record, or defaults if none was
// written yet.
func (v *Vault) LoadPreferences(ctx context.Context) (models.Preferences, error) {
	var prefs models.Preferences
	err := v.load(ctx, models.PreferencesRecordName, v.preferences, &prefs)
	if errors.Is(err, store.ErrRecordNotFound) {
		return models.Preferences{
			SchemaVersion:   PreferencesSchemaVersion,
			SelectedChainID: models.DefaultChainID,
			AutoLockMinutes: v.defaultAutoLock,
		}, nil
	}
	if err != nil {
		return models.Preferences{}, err
	}
	return prefs, nil
}

// SavePreferences writes prefs under the current schema version.
func (v *Vault) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	prefs.SchemaVersion = PreferencesSchemaVersion
	if prefs.AutoLockMinutes < 0 {
		return fmt.Errorf("%w: negative auto-lock minutes", ErrMalformedRecord)
	}
	return v.save(ctx, models.PreferencesRecordName, PreferencesSchemaVersion, prefs)
}

func (v *Vault) load(ctx context.Context, name string, m *Migrator, dst any) error {
	log := logger.FromContext(ctx)

	raw, err := v.records.GetRecord(ctx, name)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := json.Unmarshal(raw.Body, &doc); err != nil || doc == nil {
		return fmt.Errorf("%w: %s body is not a JSON object", ErrMalformedRecord, name)
	}
	if _, ok := doc[VersionKey]; !ok && raw.SchemaVersion > 0 {
		doc[VersionKey] = raw.SchemaVersion
	}

	migrated, changed, err := m.Migrate(doc)
	if err != nil {
		log.Err(err).Str("func", "vault.load").Str("record", name).Msg("record migration failed")
		return err
	}

	body, err := json.Marshal(migrated)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedRecord, name, err)
	}

	if changed {
		if err := v.records.PutRecord(ctx, models.RawRecord{
			Name:          name,
			SchemaVersion: m.Current(),
			Body:          body,
			UpdatedAt:     v.now().UTC(),
		}); err != nil {
			return fmt.Errorf("write back migrated %s: %w", name, err)
		}
		log.Info().Str("record", name).Int("version", m.Current()).Msg("record migrated")
	}
	return nil
}

func (v *Vault) save(ctx context.Context, name string, version int, value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := v.records.PutRecord(ctx, models.RawRecord{
		Name:          name,
		SchemaVersion: version,
		Body:          body,
		UpdatedAt:     v.now().UTC(),
	}); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
