package crypto

import "errors"

var (
	// ErrAuthentication means the AEAD tag did not verify: the password is wrong.
	ErrAuthentication = errors.New("authentication failed")

	// ErrIntegrity means the stored secret is malformed: bad base64, a blob
	// shorter than nonce plus tag, a salt of the wrong length or empty fields.
	ErrIntegrity = errors.New("encrypted secret is corrupted")
)
