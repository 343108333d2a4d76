package keyring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
)

// snapshot is the serialized keyring. It carries mnemonics and derivation
// inputs only: every key is re-derived on Restore.
type snapshot struct {
	Version  int               `json:"version"`
	Primary  string            `json:"primary,omitempty"`
	Accounts []AccountSpec     `json:"accounts"`
	Imported map[string]string `json:"imported,omitempty"`
}

const snapshotVersion = 1

// Serialize returns the data Restore needs to rebuild this keyring.
// The result contains plaintext mnemonics and must only be kept in
// ephemeral storage.
func (k *Keyring) Serialize() ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.wiped {
		return nil, ErrWiped
	}

	snap := snapshot{
		Version:  snapshotVersion,
		Accounts: make([]AccountSpec, 0, len(k.specs)),
		Imported: make(map[string]string, len(k.imported)),
	}
	if k.primary != nil {
		snap.Primary = string(k.primary.mnemonic)
	}
	k.registry.each(func(e *entry) {
		snap.Accounts = append(snap.Accounts, k.specs[e.account.ID])
	})
	for id, s := range k.imported {
		snap.Imported[id] = string(s.mnemonic)
	}

	return json.Marshal(snap)
}

// Restore rebuilds a keyring from Serialize output, preserving account order.
func Restore(data []byte, params derivation.Params, schemes []derivation.Scheme) (*Keyring, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrInvalidSnapshot, snap.Version)
	}

	k := New(params, schemes)

	var primary []AccountSpec
	for _, spec := range snap.Accounts {
		if !spec.Imported {
			primary = append(primary, spec)
		}
	}
	if snap.Primary != "" {
		if err := k.LoadPrimary(snap.Primary, primary); err != nil {
			k.Wipe()
			return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
		}
	} else if len(primary) > 0 {
		return nil, fmt.Errorf("%w: primary accounts without a primary seed", ErrInvalidSnapshot)
	}

	for _, spec := range snap.Accounts {
		if !spec.Imported {
			continue
		}
		mnemonic, ok := snap.Imported[spec.ID]
		if !ok {
			k.Wipe()
			return nil, fmt.Errorf("%w: no seed for imported account %s", ErrInvalidSnapshot, spec.ID)
		}
		if _, err := k.AddImportedAccount(spec, mnemonic); err != nil {
			k.Wipe()
			return nil, errors.Join(ErrInvalidSnapshot, err)
		}
	}

	// primary accounts come first after LoadPrimary; put the registry back
	// in serialized order
	k.reorder(snap.Accounts)
	return k, nil
}

func (k *Keyring) reorder(specs []AccountSpec) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.registry.mu.Lock()
	defer k.registry.mu.Unlock()

	order := make([]string, 0, len(specs))
	for _, spec := range specs {
		if _, ok := k.registry.entries[spec.ID]; ok {
			order = append(order, spec.ID)
		}
	}
	if len(order) == len(k.registry.order) {
		k.registry.order = order
	}
}
