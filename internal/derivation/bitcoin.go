package derivation

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// deriveBitcoin derives the BIP-84 native segwit key m/84'/0'/i'/0/0.
// The same coin-type 0 path is used on testnet; only the HRP changes.
func deriveBitcoin(seed []byte, index uint32, network Network) (KeyPair, error) {
	params, err := chainParams(network)
	if err != nil {
		return KeyPair{}, err
	}

	path := bitcoinPath(index)
	priv, err := deriveSecp256k1(seed, path)
	if err != nil {
		return KeyPair{}, err
	}

	pub := priv.PubKey().SerializeCompressed()
	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub), params)
	if err != nil {
		return KeyPair{}, fmt.Errorf("witness address: %w", err)
	}

	return KeyPair{
		Scheme:     Bitcoin,
		Path:       formatPath(path),
		PrivateKey: priv.Serialize(),
		PublicKey:  pub,
		Address:    addr.EncodeAddress(),
	}, nil
}

func chainParams(network Network) (*chaincfg.Params, error) {
	switch network {
	case Mainnet, "":
		return &chaincfg.MainNetParams, nil
	case Testnet:
		return &chaincfg.TestNet3Params, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedNetwork, network)
}
