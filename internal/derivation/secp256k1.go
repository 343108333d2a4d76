package derivation

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// deriveSecp256k1 walks a BIP-32 path from the master key of seed and
// returns the private key at its end. Intermediate extended keys are zeroed.
//
// The chaincfg params only affect extended-key serialization, which is never
// used here, so mainnet params serve every scheme.
func deriveSecp256k1(seed []byte, path []uint32) (*btcec.PrivateKey, error) {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		if errors.Is(err, hdkeychain.ErrInvalidSeedLen) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
		return nil, fmt.Errorf("master key: %w", err)
	}

	key := master
	for _, seg := range path {
		child, err := key.Derive(seg)
		key.Zero()
		if err != nil {
			return nil, fmt.Errorf("derive segment %d: %w", seg, err)
		}
		key = child
	}
	defer key.Zero()

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	return priv, nil
}
