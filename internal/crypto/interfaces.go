package crypto

import "github.com/MKhiriev/go-chain-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_cipher_mock.go -package=mock

// SecretCipher protects wallet secrets (mnemonics) with a user password.
// It knows nothing about storage, sessions or accounts.
//
// Scheme:
//
//	salt       = GenerateSalt()                         16 random bytes
//	key        = DeriveKey(password, salt)              PBKDF2-HMAC-SHA256, 100 000 iterations
//	ciphertext = AES-256-GCM(key, nonce, secret)        blob = nonce ‖ ciphertext
type SecretCipher interface {
	// GenerateSalt returns a fresh random salt. Every secret gets its own.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches password into a 256-bit key bound to salt.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt seals secret under password with a fresh salt and nonce.
	Encrypt(secret, password string) (models.EncryptedSecret, error)

	// Decrypt opens an encrypted secret. A wrong password yields
	// [ErrAuthentication]; anything malformed yields [ErrIntegrity].
	Decrypt(secret models.EncryptedSecret, password string) (string, error)

	// VerifyPassword reports whether password opens secret. It returns
	// false only for a genuine authentication failure; integrity problems
	// are returned as errors.
	VerifyPassword(secret models.EncryptedSecret, password string) (bool, error)
}
