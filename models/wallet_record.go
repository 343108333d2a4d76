// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Record names used as primary keys of the durable records table.
const (
	WalletRecordName      = "wallet"
	PreferencesRecordName = "preferences"
)

// EncryptedSecret is a password-protected secret as it is persisted.
//
// Salt is the base64 PBKDF2 salt (16 bytes) and Ciphertext is the base64
// blob nonce ‖ AES-GCM ciphertext. Neither value is secret on its own.
type EncryptedSecret struct {
	Salt       string `json:"salt"`
	Ciphertext string `json:"encryptedMnemonic"`
}

// WalletRecord is the durable, encrypted wallet document.
//
// It never holds plaintext key material: only salts, ciphertext and the
// public metadata of each account.
type WalletRecord struct {
	SchemaVersion     int                     `json:"schemaVersion"`
	Salt              string                  `json:"salt"`
	EncryptedMnemonic string                  `json:"encryptedMnemonic"`
	Accounts          []StoredAccount         `json:"accounts"`
	ImportedAccounts  []ImportedAccountRecord `json:"importedAccounts"`
}

// MainSecret returns the encrypted main mnemonic of the record.
func (r WalletRecord) MainSecret() EncryptedSecret {
	return EncryptedSecret{Salt: r.Salt, Ciphertext: r.EncryptedMnemonic}
}

// StoredAccount is the public part of a primary account.
type StoredAccount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	PubKey       []byte `json:"pubKey"`
	Algo         Algo   `json:"algo"`
	HDPath       string `json:"hdPath"`
	AccountIndex int    `json:"accountIndex"`
}

// ImportedAccountRecord is an imported account with its own encrypted seed.
//
// DerivationIndex is the Cosmos address index inside the imported seed; it
// is 0 for a directly imported mnemonic and grows for accounts derived from
// a prior imported account (see DerivedFrom).
type ImportedAccountRecord struct {
	Account           StoredAccount    `json:"account"`
	Salt              string           `json:"salt"`
	EncryptedMnemonic string           `json:"encryptedMnemonic"`
	DerivedAddresses  DerivedAddresses `json:"derivedAddresses"`
	DerivedFrom       string           `json:"derivedFrom,omitempty"`
	DerivationIndex   int              `json:"derivationIndex"`
}

// Secret returns the encrypted mnemonic owned by the imported account.
func (r ImportedAccountRecord) Secret() EncryptedSecret {
	return EncryptedSecret{Salt: r.Salt, Ciphertext: r.EncryptedMnemonic}
}

// RawRecord is a schema-versioned JSON document as stored in the records
// table, before migration and decoding.
type RawRecord struct {
	Name          string
	SchemaVersion int
	Body          []byte
	UpdatedAt     time.Time
}
