package models

// Algo names the signing algorithm of an account's Cosmos key.
type Algo string

const (
	// AlgoSecp256k1 is used by every primary and imported account.
	AlgoSecp256k1 Algo = "secp256k1"
)

// Bitcoin network identifiers used as keys of [DerivedAddresses.Bitcoin].
const (
	BitcoinMainnet = "mainnet"
	BitcoinTestnet = "testnet"
)

// EVMNetworkID is the key under which the EVM address is cached in
// [DerivedAddresses.EVM]. One secp256k1 address is valid on every EVM chain.
const EVMNetworkID = "eip155"

// Account is the public view of a wallet account.
//
// Primary accounts share the wallet's main seed and carry Index 0..N.
// Imported accounts own an independent seed; their Index is always 0 and
// DerivedFrom optionally points at the imported account whose seed they
// were derived from. DerivedFrom is lineage metadata only.
type Account struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Index is the position in the primary seed's index space.
	Index int `json:"index"`

	// Address is the bech32 Cosmos address under the reference prefix.
	Address string `json:"address"`
	// PubKey is the 33-byte compressed secp256k1 key (base64 in JSON).
	PubKey []byte `json:"pubKey"`
	Algo   Algo   `json:"algo"`
	HDPath string `json:"hdPath"`

	Imported    bool   `json:"imported"`
	DerivedFrom string `json:"derivedFrom,omitempty"`

	// Addresses caches the non-Cosmos addresses. It is empty for primary
	// accounts while the wallet is locked.
	Addresses DerivedAddresses `json:"addresses"`
}

// DerivedAddresses is the cache of Bitcoin, EVM and Solana addresses of an
// account, keyed by network id where the scheme has more than one network.
type DerivedAddresses struct {
	Bitcoin map[string]string `json:"bitcoin,omitempty"`
	EVM     map[string]string `json:"evm,omitempty"`
	Solana  string            `json:"solana,omitempty"`
}

// IsEmpty reports whether no address has been cached yet.
func (d DerivedAddresses) IsEmpty() bool {
	return len(d.Bitcoin) == 0 && len(d.EVM) == 0 && d.Solana == ""
}
