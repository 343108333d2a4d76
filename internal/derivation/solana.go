package derivation

import (
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"
)

// deriveSolana derives m/44'/501'/i'/0' with SLIP-0010. The address is the
// base58 of the raw 32-byte public key.
func deriveSolana(seed []byte, index uint32) (KeyPair, error) {
	path := solanaPath(index)
	edSeed, err := slip10Ed25519(seed, path)
	if err != nil {
		return KeyPair{}, err
	}
	defer clear(edSeed)

	priv := solana.PrivateKey(ed25519.NewKeyFromSeed(edSeed))
	pub := priv.PublicKey()

	return KeyPair{
		Scheme:     Solana,
		Path:       formatPath(path),
		PrivateKey: priv,
		PublicKey:  pub.Bytes(),
		Address:    pub.String(),
	}, nil
}
