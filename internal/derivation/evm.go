package derivation

import (
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// deriveEVM derives m/44'/60'/0'/0/i. The address is the EIP-55
// checksummed low 20 bytes of keccak256 of the uncompressed public key.
func deriveEVM(seed []byte, index uint32) (KeyPair, error) {
	path := evmPath(index)
	priv, err := deriveSecp256k1(seed, path)
	if err != nil {
		return KeyPair{}, err
	}

	key, err := ethcrypto.ToECDSA(priv.Serialize())
	if err != nil {
		return KeyPair{}, fmt.Errorf("ecdsa key: %w", err)
	}

	return KeyPair{
		Scheme:     EVM,
		Path:       formatPath(path),
		PrivateKey: ethcrypto.FromECDSA(key),
		PublicKey:  ethcrypto.FromECDSAPub(&key.PublicKey),
		Address:    ethcrypto.PubkeyToAddress(key.PublicKey).Hex(),
	}, nil
}
