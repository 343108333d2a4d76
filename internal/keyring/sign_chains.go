package keyring

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"

	"github.com/MKhiriev/go-chain-keeper/internal/derivation"
)

// SignEVMPersonal signs message with the EIP-191 personal_sign prefix and
// returns the 65-byte r ‖ s ‖ v signature with v in {27, 28}.
func (k *Keyring) SignEVMPersonal(accountID string, message []byte) ([]byte, error) {
	var sig []byte
	err := k.withKey(accountID, derivation.EVM, func(kp derivation.KeyPair) error {
		key, err := ethcrypto.ToECDSA(kp.PrivateKey)
		if err != nil {
			return fmt.Errorf("ecdsa key: %w", err)
		}
		sig, err = ethcrypto.Sign(accounts.TextHash(message), key)
		if err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		sig[64] += 27
		return nil
	})
	return sig, err
}

// SignSolana signs a raw message (typically a serialized transaction
// message) with the account's ed25519 key.
func (k *Keyring) SignSolana(accountID string, message []byte) ([]byte, error) {
	var sig []byte
	err := k.withKey(accountID, derivation.Solana, func(kp derivation.KeyPair) error {
		s, err := solana.PrivateKey(kp.PrivateKey).Sign(message)
		if err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		sig = s[:]
		return nil
	})
	return sig, err
}

func (k *Keyring) withKey(accountID string, scheme derivation.Scheme, fn func(derivation.KeyPair) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.wiped {
		return ErrWiped
	}

	e, ok := k.registry.get(accountID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	kp, ok := e.keys[scheme]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSchemeDisabled, scheme)
	}
	return fn(kp)
}
