package derivation

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// NewMnemonic generates a fresh BIP-39 mnemonic of 12 or 24 words.
func NewMnemonic(words int) (string, error) {
	var bits int
	switch words {
	case 12:
		bits = 128
	case 24:
		bits = 256
	default:
		return "", fmt.Errorf("%w: %d words, want 12 or 24", ErrInvalidMnemonic, words)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("entropy: %w", err)
	}
	defer clear(entropy)

	return bip39.NewMnemonic(entropy)
}

// NormalizeMnemonic lowercases and collapses whitespace.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

// ValidateMnemonic checks word count, word list membership and checksum.
func ValidateMnemonic(mnemonic string) error {
	m := NormalizeMnemonic(mnemonic)
	if n := len(strings.Fields(m)); n != 12 && n != 24 {
		return fmt.Errorf("%w: %d words", ErrInvalidMnemonic, n)
	}
	if _, err := bip39.EntropyFromMnemonic(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return nil
}

// SeedFromMnemonic validates mnemonic and returns its 64-byte BIP-39 seed
// with an empty passphrase.
func SeedFromMnemonic(mnemonic string) ([]byte, error) {
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, err
	}
	seed, err := bip39.NewSeedWithErrorChecking(NormalizeMnemonic(mnemonic), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
