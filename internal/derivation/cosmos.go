package derivation

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// deriveCosmos derives m/44'/118'/0'/0/i. Every Cosmos chain shares
// coin-type 118, so one key pair serves all of them and only the bech32
// prefix differs.
func deriveCosmos(seed []byte, index uint32, prefix string) (KeyPair, error) {
	if prefix == "" {
		return KeyPair{}, fmt.Errorf("%w: empty bech32 prefix", ErrInvalidAddress)
	}

	path := cosmosPath(index)
	priv, err := deriveSecp256k1(seed, path)
	if err != nil {
		return KeyPair{}, err
	}

	pub := priv.PubKey().SerializeCompressed()
	addr, err := CosmosAddress(pub, prefix)
	if err != nil {
		return KeyPair{}, err
	}

	return KeyPair{
		Scheme:     Cosmos,
		Path:       formatPath(path),
		PrivateKey: priv.Serialize(),
		PublicKey:  pub,
		Address:    addr,
	}, nil
}

// CosmosAddress encodes the hash160 of a compressed secp256k1 public key
// under prefix. An empty prefix is rejected.
func CosmosAddress(pubKey []byte, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty prefix", ErrInvalidAddress)
	}
	return encodeBech32(prefix, btcutil.Hash160(pubKey))
}

// ConvertAddress re-encodes a bech32 address under a new prefix. The
// original checksum is validated first.
func ConvertAddress(address, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty prefix", ErrInvalidAddress)
	}

	_, data, err := bech32.Decode(address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	out, err := bech32.Encode(prefix, data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return out, nil
}

// AddressBytes returns the payload of a bech32 address, typically the
// 20-byte public key hash. The prefix is ignored.
func AddressBytes(address string) ([]byte, error) {
	_, data, err := bech32.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return raw, nil
}

func encodeBech32(prefix string, payload []byte) (string, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert bits: %w", err)
	}
	addr, err := bech32.Encode(prefix, conv)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return addr, nil
}
