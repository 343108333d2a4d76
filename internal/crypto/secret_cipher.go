// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-chain-keeper/models"
)

const (
	// SaltSize is the length of every PBKDF2 salt in bytes.
	SaltSize = 16
	// KeySize is the AES-256 key length.
	KeySize = 32
	// DefaultIterations is the PBKDF2 iteration count records are written with.
	DefaultIterations = 100_000
)

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	// PBKDF2 tuning parameters. Records do not store them, so a deployment
	// must never change them after secrets have been written.
	iterations int
	keyLen     int
}

// Option tunes a [SecretCipher].
type Option func(*secretCipher)

// WithIterations overrides the PBKDF2 iteration count. Only tests and
// throwaway stores should use it.
func WithIterations(n int) Option {
	return func(c *secretCipher) {
		if n > 0 {
			c.iterations = n
		}
	}
}

// NewSecretCipher constructs a [SecretCipher] with PBKDF2-HMAC-SHA256 at
// 100 000 iterations and a 256-bit key.
func NewSecretCipher(opts ...Option) SecretCipher {
	c := &secretCipher{
		iterations: DefaultIterations,
		keyLen:     KeySize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateSalt implements [SecretCipher].
func (c *secretCipher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [SecretCipher].
func (c *secretCipher) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, c.keyLen, sha256.New)
}

// Encrypt implements [SecretCipher]. The output fields are base64 (standard
// encoding); the ciphertext blob is nonce (12 bytes) ‖ ciphertext ‖ tag.
func (c *secretCipher) Encrypt(secret, password string) (models.EncryptedSecret, error) {
	salt, err := c.GenerateSalt()
	if err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("generate salt: %w", err)
	}

	key := c.DeriveKey(password, salt)
	defer zero(key)

	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedSecret{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, []byte(secret), nil)

	return models.EncryptedSecret{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Ciphertext: base64.StdEncoding.EncodeToString(blob),
	}, nil
}

// Decrypt implements [SecretCipher].
func (c *secretCipher) Decrypt(secret models.EncryptedSecret, password string) (string, error) {
	if secret.Salt == "" || secret.Ciphertext == "" {
		return "", fmt.Errorf("%w: empty salt or ciphertext", ErrIntegrity)
	}

	salt, err := base64.StdEncoding.DecodeString(secret.Salt)
	if err != nil {
		return "", fmt.Errorf("%w: decode salt: %v", ErrIntegrity, err)
	}
	if len(salt) != SaltSize {
		return "", fmt.Errorf("%w: salt is %d bytes", ErrIntegrity, len(salt))
	}

	blob, err := base64.StdEncoding.DecodeString(secret.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %v", ErrIntegrity, err)
	}

	key := c.DeriveKey(password, salt)
	defer zero(key)

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(blob) < gcm.NonceSize()+gcm.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrIntegrity)
	}
	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]

	// a well-formed blob that fails the tag check was sealed under another key
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthentication
	}

	return string(plaintext), nil
}

// VerifyPassword implements [SecretCipher].
func (c *secretCipher) VerifyPassword(secret models.EncryptedSecret, password string) (bool, error) {
	if _, err := c.Decrypt(secret, password); err != nil {
		if errors.Is(err, ErrAuthentication) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
