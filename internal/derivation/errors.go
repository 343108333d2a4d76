package derivation

import "errors"

var (
	// ErrUnsupportedScheme is returned for a scheme tag outside the closed set.
	ErrUnsupportedScheme = errors.New("unsupported derivation scheme")

	// ErrUnsupportedNetwork is returned for an unknown Bitcoin network id.
	ErrUnsupportedNetwork = errors.New("unsupported bitcoin network")

	// ErrInvalidMnemonic is returned for a mnemonic with the wrong word count,
	// unknown words or a bad checksum.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrInvalidAddress is returned when a bech32 address fails to decode.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidIndex is returned for a negative or out-of-range account index.
	ErrInvalidIndex = errors.New("invalid account index")

	// ErrInvalidSeed is returned when a seed is too short or too long for HD
	// derivation.
	ErrInvalidSeed = errors.New("invalid seed")

	// ErrNonHardenedSegment is returned by SLIP-0010 ed25519 derivation for a
	// path segment below the hardened offset.
	ErrNonHardenedSegment = errors.New("ed25519 derivation supports hardened segments only")
)
