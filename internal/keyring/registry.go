package keyring

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// entry is one fully derived account. Its mutex serializes signing and the
// prefix cache; distinct entries are independent.
type entry struct {
	mu sync.Mutex

	account models.Account
	keys    map[derivation.Scheme]derivation.KeyPair
	// seedID groups accounts derived from the same mnemonic.
	seedID string
	// derivationIndex is the Cosmos address index inside the seed.
	derivationIndex int
	// addrHash is the 20-byte hash160 of the Cosmos public key.
	addrHash []byte
	// prefixes caches bech32 conversions of the Cosmos address.
	prefixes map[string]string
}

func newEntry(account models.Account, keys map[derivation.Scheme]derivation.KeyPair, seedID string, derivationIndex int) *entry {
	cosmos := keys[derivation.Cosmos]
	account.Address = cosmos.Address
	account.PubKey = cosmos.PublicKey
	account.Algo = models.AlgoSecp256k1
	account.HDPath = cosmos.Path
	account.Addresses = addressesOf(keys)

	return &entry{
		account:         account,
		keys:            keys,
		seedID:          seedID,
		derivationIndex: derivationIndex,
		addrHash:        btcutil.Hash160(cosmos.PublicKey),
		prefixes:        map[string]string{},
	}
}

// addressFor returns the Cosmos address under prefix, caching conversions.
// Callers must hold e.mu.
func (e *entry) addressFor(prefix string) (string, error) {
	if addr, ok := e.prefixes[prefix]; ok {
		return addr, nil
	}
	addr, err := derivation.CosmosAddress(e.account.PubKey, prefix)
	if err != nil {
		return "", err
	}
	e.prefixes[prefix] = addr
	return addr, nil
}

func (e *entry) wipe() {
	for sc, kp := range e.keys {
		kp.Wipe()
		delete(e.keys, sc)
	}
}

func addressesOf(keys map[derivation.Scheme]derivation.KeyPair) models.DerivedAddresses {
	var out models.DerivedAddresses
	if kp, ok := keys[derivation.Bitcoin]; ok {
		// keyed by the network the keyring was derived for
		out.Bitcoin = map[string]string{bitcoinNetworkOf(kp.Address): kp.Address}
	}
	if kp, ok := keys[derivation.EVM]; ok {
		out.EVM = map[string]string{models.EVMNetworkID: kp.Address}
	}
	if kp, ok := keys[derivation.Solana]; ok {
		out.Solana = kp.Address
	}
	return out
}

func bitcoinNetworkOf(address string) string {
	if len(address) >= 2 && address[:2] == "tb" {
		return models.BitcoinTestnet
	}
	return models.BitcoinMainnet
}

// Registry is the in-memory, insertion-ordered set of derived accounts.
// It only ever holds complete entries.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]*entry{}}
}

func (r *Registry) add(e *entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[e.account.ID]; ok {
		return fmt.Errorf("%w: id %s", ErrDuplicateAccount, e.account.ID)
	}
	for _, other := range r.entries {
		if bytes.Equal(other.addrHash, e.addrHash) {
			return fmt.Errorf("%w: address %s", ErrDuplicateAccount, e.account.Address)
		}
	}

	r.entries[e.account.ID] = e
	r.order = append(r.order, e.account.ID)
	return nil
}

func (r *Registry) get(id string) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

func (r *Registry) byAddressHash(hash []byte) (*entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if e := r.entries[id]; bytes.Equal(e.addrHash, hash) {
			return e, true
		}
	}
	return nil, false
}

func (r *Registry) remove(id string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	delete(r.entries, id)
	r.order = slices.DeleteFunc(r.order, func(other string) bool { return other == id })
	return e, true
}

// each calls fn for every entry in insertion order under the read lock.
func (r *Registry) each(fn func(*entry)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		fn(r.entries[id])
	}
}

// Accounts returns a copy of every account in insertion order.
func (r *Registry) Accounts() []models.Account {
	out := make([]models.Account, 0, r.Len())
	r.each(func(e *entry) {
		out = append(out, e.account)
	})
	return out
}

// Account returns the account with the given id.
func (r *Registry) Account(id string) (models.Account, bool) {
	e, ok := r.get(id)
	if !ok {
		return models.Account{}, false
	}
	return e.account, true
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// wipe zeroes every private key and empties the registry.
func (r *Registry) wipe() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		e.mu.Lock()
		e.wipe()
		e.mu.Unlock()
	}
	r.entries = map[string]*entry{}
	r.order = nil
}
