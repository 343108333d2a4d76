package keyring

import "errors"

var (
	// ErrAccountNotFound is returned for an unknown account id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSignerNotFound is returned when no account owns the signer address.
	ErrSignerNotFound = errors.New("signer not found in keyring")

	// ErrDuplicateAccount is returned when an account id or Cosmos address is
	// already registered.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrChainMismatch is returned when a sign doc targets another chain than
	// the one the request was made for.
	ErrChainMismatch = errors.New("sign doc chain id does not match request")

	// ErrSchemeDisabled is returned when an operation needs a scheme that is
	// not enabled for the keyring.
	ErrSchemeDisabled = errors.New("derivation scheme is not enabled")

	// ErrNoPrimarySeed is returned when a primary account is requested before
	// the primary mnemonic was loaded.
	ErrNoPrimarySeed = errors.New("primary seed is not loaded")

	// ErrWiped is returned by every operation on a wiped keyring.
	ErrWiped = errors.New("keyring has been wiped")

	// ErrInvalidSnapshot is returned when serialized keyring data cannot be
	// restored.
	ErrInvalidSnapshot = errors.New("invalid keyring snapshot")
)
