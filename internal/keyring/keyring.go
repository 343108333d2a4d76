// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyring holds decrypted seeds and the accounts derived from them
// for the lifetime of one unlocked session, and signs with those accounts.
//
// A Keyring owns at most one primary seed, shared by primary accounts 0..N,
// plus one independent seed per imported account. It never touches storage:
// callers persist encrypted mnemonics and restore the keyring from them.
package keyring

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/models"
)

const primarySeedID = "primary"

// AccountSpec describes an account to derive: where it lives in its seed and
// the public metadata to attach.
type AccountSpec struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Index is the primary index; always 0 for imported accounts.
	Index    int  `json:"index"`
	Imported bool `json:"imported"`
	// DerivationIndex is the index inside an imported seed.
	DerivationIndex int    `json:"derivationIndex"`
	DerivedFrom     string `json:"derivedFrom,omitempty"`
}

type seed struct {
	mnemonic []byte
	bytes    []byte
}

func (s *seed) wipe() {
	clear(s.mnemonic)
	clear(s.bytes)
	s.mnemonic, s.bytes = nil, nil
}

// Keyring is safe for concurrent use. Signing for one account is serialized;
// different accounts sign in parallel.
type Keyring struct {
	mu sync.RWMutex

	params  derivation.Params
	schemes []derivation.Scheme

	primary  *seed
	imported map[string]*seed
	// specs keeps derivation inputs for serialization, keyed by account id.
	specs map[string]AccountSpec

	registry *Registry
	wiped    bool
}

// New returns an empty keyring deriving the given schemes. Cosmos is always
// derived since it identifies accounts.
func New(params derivation.Params, schemes []derivation.Scheme) *Keyring {
	if !slices.Contains(schemes, derivation.Cosmos) {
		schemes = append([]derivation.Scheme{derivation.Cosmos}, schemes...)
	}
	return &Keyring{
		params:   params,
		schemes:  slices.Clone(schemes),
		imported: map[string]*seed{},
		specs:    map[string]AccountSpec{},
		registry: NewRegistry(),
	}
}

// Params returns the derivation parameters of the keyring.
func (k *Keyring) Params() derivation.Params { return k.params }

// Schemes returns the enabled schemes.
func (k *Keyring) Schemes() []derivation.Scheme { return slices.Clone(k.schemes) }

// LoadPrimary installs the primary mnemonic and derives every given primary
// account. Either all accounts are derived or the keyring is left unchanged.
func (k *Keyring) LoadPrimary(mnemonic string, specs []AccountSpec) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.wiped {
		return ErrWiped
	}

	s, err := newSeed(mnemonic)
	if err != nil {
		return err
	}

	entries := make([]*entry, 0, len(specs))
	for _, spec := range specs {
		spec.Imported = false
		spec.DerivedFrom = ""
		e, err := k.derive(s, spec, primarySeedID, spec.Index)
		if err != nil {
			wipeEntries(entries)
			s.wipe()
			return fmt.Errorf("derive account %q: %w", spec.ID, err)
		}
		entries = append(entries, e)
	}

	reg := NewRegistry()
	for _, e := range entries {
		if err := reg.add(e); err != nil {
			wipeEntries(entries)
			s.wipe()
			return err
		}
	}
	// keep imported accounts already present
	var dup error
	k.registry.each(func(e *entry) {
		if e.seedID != primarySeedID && dup == nil {
			dup = reg.add(e)
		}
	})
	if dup != nil {
		wipeEntries(entries)
		s.wipe()
		return dup
	}

	k.registry.each(func(e *entry) {
		if e.seedID == primarySeedID {
			e.mu.Lock()
			e.wipe()
			e.mu.Unlock()
			delete(k.specs, e.account.ID)
		}
	})
	if k.primary != nil {
		k.primary.wipe()
	}

	k.primary = s
	k.registry = reg
	for _, spec := range specs {
		spec.Imported = false
		spec.DerivedFrom = ""
		k.specs[spec.ID] = spec
	}
	return nil
}

// AddPrimaryAccount derives the next primary index on every enabled scheme
// and registers it as one unit.
func (k *Keyring) AddPrimaryAccount(id, name string) (models.Account, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.wiped {
		return models.Account{}, ErrWiped
	}
	if k.primary == nil {
		return models.Account{}, ErrNoPrimarySeed
	}

	spec := AccountSpec{ID: id, Name: name, Index: k.nextPrimaryIndex()}
	e, err := k.derive(k.primary, spec, primarySeedID, spec.Index)
	if err != nil {
		return models.Account{}, err
	}
	if err := k.registry.add(e); err != nil {
		wipeEntries([]*entry{e})
		return models.Account{}, err
	}
	k.specs[id] = spec
	return e.account, nil
}

// AddImportedAccount derives an account from its own mnemonic. The index
// used inside that seed is spec.DerivationIndex; the public Index is 0.
func (k *Keyring) AddImportedAccount(spec AccountSpec, mnemonic string) (models.Account, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.wiped {
		return models.Account{}, ErrWiped
	}

	s, err := newSeed(mnemonic)
	if err != nil {
		return models.Account{}, err
	}

	spec.Imported = true
	spec.Index = 0
	e, err := k.derive(s, spec, seedFingerprint(s.bytes), spec.DerivationIndex)
	if err != nil {
		s.wipe()
		return models.Account{}, err
	}
	if err := k.registry.add(e); err != nil {
		wipeEntries([]*entry{e})
		s.wipe()
		return models.Account{}, err
	}

	k.imported[spec.ID] = s
	k.specs[spec.ID] = spec
	return e.account, nil
}

// ImportedMnemonic returns the mnemonic owned by an imported account.
func (k *Keyring) ImportedMnemonic(accountID string) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.wiped {
		return "", ErrWiped
	}
	s, ok := k.imported[accountID]
	if !ok {
		return "", fmt.Errorf("%w: %s is not an imported account", ErrAccountNotFound, accountID)
	}
	return string(s.mnemonic), nil
}

// Accounts returns every account in insertion order.
func (k *Keyring) Accounts() []models.Account {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.registry.Accounts()
}

// Account returns one account.
func (k *Keyring) Account(id string) (models.Account, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	a, ok := k.registry.Account(id)
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return a, nil
}

// Specs returns the derivation inputs of every account in insertion order.
func (k *Keyring) Specs() []AccountSpec {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]AccountSpec, 0, len(k.specs))
	k.registry.each(func(e *entry) {
		out = append(out, k.specs[e.account.ID])
	})
	return out
}

// NextPrimaryIndex returns one past the highest primary index.
func (k *Keyring) NextPrimaryIndex() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.nextPrimaryIndex()
}

func (k *Keyring) nextPrimaryIndex() int {
	next := 0
	k.registry.each(func(e *entry) {
		if e.seedID == primarySeedID && e.account.Index >= next {
			next = e.account.Index + 1
		}
	})
	return next
}

// NextSeedIndex returns one past the highest derivation index among the
// accounts that share parentID's imported seed.
func (k *Keyring) NextSeedIndex(parentID string) (int, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	parent, ok := k.registry.get(parentID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAccountNotFound, parentID)
	}
	if parent.seedID == primarySeedID {
		return 0, fmt.Errorf("%w: %s is a primary account", ErrAccountNotFound, parentID)
	}

	next := 0
	k.registry.each(func(e *entry) {
		if e.seedID == parent.seedID && e.derivationIndex >= next {
			next = e.derivationIndex + 1
		}
	})
	return next, nil
}

// Remove drops an account and wipes its keys. An imported account takes its
// seed with it. It undoes an add whose persistence failed.
func (k *Keyring) Remove(id string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.wiped {
		return ErrWiped
	}

	e, ok := k.registry.remove(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	e.mu.Lock()
	e.wipe()
	e.mu.Unlock()

	if s, ok := k.imported[id]; ok {
		s.wipe()
		delete(k.imported, id)
	}
	delete(k.specs, id)
	return nil
}

// Len returns the number of accounts.
func (k *Keyring) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.registry.Len()
}

// Wipe zeroes every seed, mnemonic and private key and empties the keyring.
// A wiped keyring rejects all further operations.
func (k *Keyring) Wipe() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.registry.wipe()
	if k.primary != nil {
		k.primary.wipe()
		k.primary = nil
	}
	for id, s := range k.imported {
		s.wipe()
		delete(k.imported, id)
	}
	k.specs = map[string]AccountSpec{}
	k.wiped = true
}

// Wiped reports whether Wipe was called.
func (k *Keyring) Wiped() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.wiped
}

func (k *Keyring) derive(s *seed, spec AccountSpec, seedID string, index int) (*entry, error) {
	keys, err := derivation.DeriveAll(s.bytes, index, k.schemes, k.params)
	if err != nil {
		return nil, err
	}
	account := models.Account{
		ID:          spec.ID,
		Name:        spec.Name,
		Index:       spec.Index,
		Imported:    spec.Imported,
		DerivedFrom: spec.DerivedFrom,
	}
	return newEntry(account, keys, seedID, index), nil
}

func newSeed(mnemonic string) (*seed, error) {
	b, err := derivation.SeedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return &seed{
		mnemonic: []byte(derivation.NormalizeMnemonic(mnemonic)),
		bytes:    b,
	}, nil
}

// seedFingerprint identifies a seed without revealing it.
func seedFingerprint(seed []byte) string {
	sum := sha256.Sum256(seed)
	return hex.EncodeToString(sum[:8])
}

func wipeEntries(entries []*entry) {
	for _, e := range entries {
		e.wipe()
	}
}
