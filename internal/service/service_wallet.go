// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-chain-keeper/internal/bus"
	"github.com/MKhiriev/go-chain-keeper/internal/crypto"
	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/internal/keyring"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/store"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	maxAccountNameLength = 64
	firstAccountName     = "Account 1"
)

// walletService owns the keyring of one coordinator and moves it through
// Locked → Unlocking → Unlocked → Locked.
//
// The session store, not this struct, is the source of truth for whether the
// wallet is unlocked: every privileged entry point first syncs with it, so a
// lock or unlock done elsewhere is picked up, and evaluates auto-lock.
type walletService struct {
	vault    WalletVault
	sessions store.SessionStore
	bus      Publisher

	params  derivation.Params
	schemes []derivation.Scheme

	mu        sync.Mutex
	state     models.WalletState
	ring      *keyring.Keyring
	sessionID string
	// lockGen changes on every lock so an unlock that raced with it can
	// tell its result is stale.
	lockGen uint64

	now    Clock
	newID  func() string
	logger *logger.Logger
}

// NewWalletService constructs a locked WalletService.
func NewWalletService(v WalletVault, sessions store.SessionStore, publisher Publisher, params derivation.Params, schemes []derivation.Scheme, logger *logger.Logger) WalletService {
	logger.Debug().Msg("creating wallet service")
	return &walletService{
		vault:    v,
		sessions: sessions,
		bus:      publisher,
		params:   params,
		schemes:  schemes,
		state:    models.StateLocked,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// Status reports the lock state after syncing with the session store.
func (w *walletService) Status(ctx context.Context) (models.WalletStatus, error) {
	exists, err := w.vault.Exists(ctx)
	if err != nil {
		return models.WalletStatus{}, err
	}
	if !exists {
		return models.WalletStatus{State: models.StateNotInitialized}, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.syncLocked(ctx); err != nil {
		return models.WalletStatus{}, err
	}
	status := models.WalletStatus{State: w.state}
	if w.ring != nil {
		status.AccountCount = w.ring.Len()
	}
	return status, nil
}

// Create generates a new mnemonic, stores it encrypted under password and
// unlocks with account 0 derived on every enabled scheme. The mnemonic is
// returned once so the user can back it up.
func (w *walletService) Create(ctx context.Context, password string, words int) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	mnemonic, err := derivation.NewMnemonic(words)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	if err := w.initialize(ctx, mnemonic, password); err != nil {
		return "", err
	}
	return mnemonic, nil
}

// Import validates mnemonic and then behaves like Create.
func (w *walletService) Import(ctx context.Context, mnemonic, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	normalized, err := normalizeMnemonic(mnemonic)
	if err != nil {
		return err
	}
	return w.initialize(ctx, normalized, password)
}

func (w *walletService) initialize(ctx context.Context, mnemonic, password string) error {
	log := logger.FromContext(ctx)

	exists, err := w.vault.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrWalletExists
	}

	ring := keyring.New(w.params, w.schemes)
	spec := keyring.AccountSpec{ID: w.newID(), Name: firstAccountName, Index: 0}
	if err := ring.LoadPrimary(mnemonic, []keyring.AccountSpec{spec}); err != nil {
		ring.Wipe()
		return mapDerivationError(err)
	}

	if _, err := w.vault.CreateWallet(ctx, mnemonic, password, storedAccounts(ring.Accounts())); err != nil {
		ring.Wipe()
		log.Err(err).Str("func", "*walletService.initialize").Msg("failed to store wallet")
		return err
	}

	prefs, err := w.vault.LoadPreferences(ctx)
	if err != nil {
		ring.Wipe()
		return err
	}
	prefs.SelectedAccountID = spec.ID
	if err := w.vault.SavePreferences(ctx, prefs); err != nil {
		ring.Wipe()
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.becomeUnlockedLocked(ctx, ring); err != nil {
		return err
	}
	log.Info().Str("account_id", spec.ID).Msg("wallet created")
	return nil
}

// Unlock decrypts the stored mnemonics and re-derives every account. Only
// one unlock may run at a time; a lock issued meanwhile wins.
func (w *walletService) Unlock(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	w.mu.Lock()
	if w.state == models.StateUnlocking {
		w.mu.Unlock()
		return ErrUnlockInProgress
	}
	prevState := w.state
	w.state = models.StateUnlocking
	gen := w.lockGen
	w.mu.Unlock()

	ring, err := w.openKeyring(ctx, password)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		if w.state == models.StateUnlocking {
			w.state = prevState
		}
		log.Warn().Err(err).Str("func", "*walletService.Unlock").Msg("unlock failed")
		return err
	}
	if gen != w.lockGen {
		ring.Wipe()
		return ErrLocked
	}
	if err := w.becomeUnlockedLocked(ctx, ring); err != nil {
		return err
	}
	log.Info().Int("accounts", ring.Len()).Msg("wallet unlocked")
	return nil
}

// openKeyring is the CPU-bound part of Unlock. It runs without w.mu held.
func (w *walletService) openKeyring(ctx context.Context, password string) (*keyring.Keyring, error) {
	rec, err := w.vault.LoadWallet(ctx)
	if err != nil {
		return nil, err
	}

	mnemonic, err := w.vault.DecryptMain(rec, password)
	if err != nil {
		return nil, mapDecryptError(err)
	}

	specs := make([]keyring.AccountSpec, 0, len(rec.Accounts))
	for _, a := range rec.Accounts {
		specs = append(specs, keyring.AccountSpec{ID: a.ID, Name: a.Name, Index: a.AccountIndex})
	}

	ring := keyring.New(w.params, w.schemes)
	if err := ring.LoadPrimary(mnemonic, specs); err != nil {
		ring.Wipe()
		return nil, fmt.Errorf("re-derive primary accounts: %w", err)
	}

	for _, imp := range rec.ImportedAccounts {
		m, err := w.vault.DecryptImported(rec, imp.Account.ID, password)
		if err != nil {
			ring.Wipe()
			return nil, mapDecryptError(err)
		}
		spec := keyring.AccountSpec{
			ID:              imp.Account.ID,
			Name:            imp.Account.Name,
			Imported:        true,
			DerivationIndex: imp.DerivationIndex,
			DerivedFrom:     imp.DerivedFrom,
		}
		if _, err := ring.AddImportedAccount(spec, m); err != nil {
			ring.Wipe()
			return nil, fmt.Errorf("re-derive imported account %s: %w", imp.Account.ID, err)
		}
	}
	return ring, nil
}

// Lock wipes the keyring, clears the session snapshot and tells peer
// contexts to drop theirs. Locking a locked wallet is a no-op apart from
// the notification.
func (w *walletService) Lock(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.lockLocked(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Info().Msg("wallet locked")
	return nil
}

// VerifyPassword checks password against the stored wallet without
// unlocking.
func (w *walletService) VerifyPassword(ctx context.Context, password string) (bool, error) {
	return w.vault.VerifyPassword(ctx, password)
}

// AddAccount derives the next primary index on every enabled scheme. The
// account becomes visible only once it is derived on all of them and stored.
func (w *walletService) AddAccount(ctx context.Context, name string) (models.Account, error) {
	name, err := validateName(name)
	if err != nil {
		return models.Account{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ring, err := w.requireUnlockedLocked(ctx)
	if err != nil {
		return models.Account{}, err
	}

	rec, err := w.vault.LoadWallet(ctx)
	if err != nil {
		return models.Account{}, err
	}

	acc, err := ring.AddPrimaryAccount(w.newID(), name)
	if err != nil {
		return models.Account{}, mapDerivationError(err)
	}

	rec.Accounts = append(rec.Accounts, storedAccount(acc))
	if err := w.vault.SaveWallet(ctx, rec); err != nil {
		_ = ring.Remove(acc.ID)
		return models.Account{}, err
	}
	w.refreshSnapshotLocked(ctx, acc.ID)

	logger.FromContext(ctx).Info().Str("account_id", acc.ID).Int("index", acc.Index).Msg("account added")
	return acc, nil
}

// ImportAccount adds an account backed by its own mnemonic, encrypted under
// the wallet password with its own salt.
func (w *walletService) ImportAccount(ctx context.Context, name, mnemonic, password string) (models.Account, error) {
	name, err := validateName(name)
	if err != nil {
		return models.Account{}, err
	}
	normalized, err := normalizeMnemonic(mnemonic)
	if err != nil {
		return models.Account{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ring, err := w.requireUnlockedLocked(ctx)
	if err != nil {
		return models.Account{}, err
	}

	spec := keyring.AccountSpec{ID: w.newID(), Name: name}
	return w.addImportedLocked(ctx, ring, spec, normalized, password)
}

// DeriveImportedAccount derives the next index of an imported account's
// seed. The result is a separate imported account whose lineage points at
// parentID; the primary index space is never touched.
func (w *walletService) DeriveImportedAccount(ctx context.Context, parentID, name, password string) (models.Account, error) {
	name, err := validateName(name)
	if err != nil {
		return models.Account{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ring, err := w.requireUnlockedLocked(ctx)
	if err != nil {
		return models.Account{}, err
	}

	index, err := ring.NextSeedIndex(parentID)
	if err != nil {
		return models.Account{}, err
	}
	mnemonic, err := ring.ImportedMnemonic(parentID)
	if err != nil {
		return models.Account{}, err
	}

	spec := keyring.AccountSpec{
		ID:              w.newID(),
		Name:            name,
		DerivationIndex: index,
		DerivedFrom:     parentID,
	}
	return w.addImportedLocked(ctx, ring, spec, mnemonic, password)
}

func (w *walletService) addImportedLocked(ctx context.Context, ring *keyring.Keyring, spec keyring.AccountSpec, mnemonic, password string) (models.Account, error) {
	ok, err := w.vault.VerifyPassword(ctx, password)
	if err != nil {
		return models.Account{}, mapDecryptError(err)
	}
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %w", ErrWrongPassword, crypto.ErrAuthentication)
	}

	rec, err := w.vault.LoadWallet(ctx)
	if err != nil {
		return models.Account{}, err
	}
	secret, err := w.vault.EncryptImported(mnemonic, password)
	if err != nil {
		return models.Account{}, err
	}

	acc, err := ring.AddImportedAccount(spec, mnemonic)
	if err != nil {
		return models.Account{}, mapDerivationError(err)
	}

	rec.ImportedAccounts = append(rec.ImportedAccounts, models.ImportedAccountRecord{
		Account:           storedAccount(acc),
		Salt:              secret.Salt,
		EncryptedMnemonic: secret.Ciphertext,
		DerivedAddresses:  acc.Addresses,
		DerivedFrom:       spec.DerivedFrom,
		DerivationIndex:   spec.DerivationIndex,
	})
	if err := w.vault.SaveWallet(ctx, rec); err != nil {
		_ = ring.Remove(acc.ID)
		return models.Account{}, err
	}
	w.refreshSnapshotLocked(ctx, acc.ID)

	logger.FromContext(ctx).Info().
		Str("account_id", acc.ID).
		Str("derived_from", spec.DerivedFrom).
		Int("derivation_index", spec.DerivationIndex).
		Msg("imported account added")
	return acc, nil
}

// Accounts returns every account of the unlocked keyring.
func (w *walletService) Accounts(ctx context.Context) ([]models.Account, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ring, err := w.requireUnlockedLocked(ctx)
	if err != nil {
		return nil, err
	}
	return ring.Accounts(), nil
}

// Keyring returns the unlocked keyring after syncing and auto-lock checks.
// The keyring may be wiped by a later lock; its methods then fail with
// keyring.ErrWiped.
func (w *walletService) Keyring(ctx context.Context) (*keyring.Keyring, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.requireUnlockedLocked(ctx)
}

// Preferences returns the stored preferences.
func (w *walletService) Preferences(ctx context.Context) (models.Preferences, error) {
	return w.vault.LoadPreferences(ctx)
}

// SetAutoLockMinutes changes the inactivity timeout; 0 disables auto-lock.
func (w *walletService) SetAutoLockMinutes(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return ErrInvalidAutoLock
	}
	prefs, err := w.vault.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	prefs.AutoLockMinutes = minutes
	return w.vault.SavePreferences(ctx, prefs)
}

// SelectAccount marks id as the account external origins see.
func (w *walletService) SelectAccount(ctx context.Context, id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	ring, err := w.requireUnlockedLocked(ctx)
	if err != nil {
		return err
	}
	if _, err := ring.Account(id); err != nil {
		return err
	}

	prefs, err := w.vault.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	prefs.SelectedAccountID = id
	return w.vault.SavePreferences(ctx, prefs)
}

// SelectChain stores the chain the UI works with.
func (w *walletService) SelectChain(ctx context.Context, chainID string) error {
	chainID = strings.TrimSpace(chainID)
	if chainID == "" {
		return fmt.Errorf("%w: empty chain id", ErrInvalidRequest)
	}
	prefs, err := w.vault.LoadPreferences(ctx)
	if err != nil {
		return err
	}
	prefs.SelectedChainID = chainID
	return w.vault.SavePreferences(ctx, prefs)
}

func (w *walletService) becomeUnlockedLocked(ctx context.Context, ring *keyring.Keyring) error {
	if w.ring != nil && w.ring != ring {
		w.ring.Wipe()
	}
	w.ring = ring
	w.sessionID = w.newID()
	w.state = models.StateUnlocked

	if err := w.saveSnapshotLocked(ctx); err != nil {
		w.dropLocked()
		return err
	}
	w.bus.Publish(bus.TopicUnlocked, w.sessionID)
	return nil
}

func (w *walletService) dropLocked() {
	if w.ring != nil {
		w.ring.Wipe()
		w.ring = nil
	}
	w.sessionID = ""
	w.state = models.StateLocked
	w.lockGen++
}

func (w *walletService) lockLocked(ctx context.Context) error {
	w.dropLocked()
	err := w.sessions.Clear(ctx)
	w.bus.Publish(bus.TopicLocked, nil)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (w *walletService) requireUnlockedLocked(ctx context.Context) (*keyring.Keyring, error) {
	if err := w.syncLocked(ctx); err != nil {
		return nil, err
	}
	if w.state != models.StateUnlocked || w.ring == nil {
		return nil, ErrLocked
	}
	return w.ring, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxAccountNameLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return name, nil
}

func normalizeMnemonic(mnemonic string) (string, error) {
	normalized := derivation.NormalizeMnemonic(mnemonic)
	if err := derivation.ValidateMnemonic(normalized); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return normalized, nil
}

func mapDecryptError(err error) error {
	if errors.Is(err, crypto.ErrAuthentication) {
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}
	return err
}

func mapDerivationError(err error) error {
	if errors.Is(err, derivation.ErrInvalidMnemonic) {
		return fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return err
}

func storedAccount(a models.Account) models.StoredAccount {
	return models.StoredAccount{
		ID:           a.ID,
		Name:         a.Name,
		Address:      a.Address,
		PubKey:       a.PubKey,
		Algo:         a.Algo,
		HDPath:       a.HDPath,
		AccountIndex: a.Index,
	}
}

func storedAccounts(accounts []models.Account) []models.StoredAccount {
	out := make([]models.StoredAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, storedAccount(a))
	}
	return out
}
