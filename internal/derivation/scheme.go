// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package derivation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scheme tags one of the four independent curve and address schemes.
type Scheme string

const (
	Cosmos  Scheme = "cosmos"
	Bitcoin Scheme = "bitcoin"
	EVM     Scheme = "evm"
	Solana  Scheme = "solana"
)

// AllSchemes lists every supported scheme in derivation order.
var AllSchemes = []Scheme{Cosmos, Bitcoin, EVM, Solana}

// ParseScheme maps a configuration name onto a [Scheme].
func ParseScheme(s string) (Scheme, error) {
	switch sc := Scheme(strings.ToLower(strings.TrimSpace(s))); sc {
	case Cosmos, Bitcoin, EVM, Solana:
		return sc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, s)
}

// ParseSchemes parses a list of names, rejecting duplicates silently by
// keeping the first occurrence.
func ParseSchemes(names []string) ([]Scheme, error) {
	out := make([]Scheme, 0, len(names))
	seen := make(map[Scheme]bool, len(names))
	for _, n := range names {
		sc, err := ParseScheme(n)
		if err != nil {
			return nil, err
		}
		if !seen[sc] {
			seen[sc] = true
			out = append(out, sc)
		}
	}
	return out, nil
}

// Network selects the Bitcoin address HRP.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// ParseNetwork maps a configuration name onto a [Network].
func ParseNetwork(s string) (Network, error) {
	switch n := Network(strings.ToLower(strings.TrimSpace(s))); n {
	case Mainnet, Testnet:
		return n, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedNetwork, s)
}

// Params are the non-seed inputs of derivation.
type Params struct {
	// Bech32Prefix is the HRP primary Cosmos addresses are encoded under.
	Bech32Prefix string
	// BitcoinNetwork selects bc/tb.
	BitcoinNetwork Network
}

// DefaultParams derives Cosmos Hub and Bitcoin mainnet addresses.
func DefaultParams() Params {
	return Params{Bech32Prefix: "cosmos", BitcoinNetwork: Mainnet}
}

// KeyPair is the output of one derivation. PrivateKey is the 32-byte
// secp256k1 scalar or the 64-byte ed25519 private key.
type KeyPair struct {
	Scheme     Scheme
	Path       string
	PrivateKey []byte
	PublicKey  []byte
	Address    string
}

// Wipe zeroes the private key in place.
func (k *KeyPair) Wipe() {
	for i := range k.PrivateKey {
		k.PrivateKey[i] = 0
	}
	k.PrivateKey = nil
}

// DeriveAccount derives the key pair and address of account index on scheme.
// It is deterministic and has no side effects.
func DeriveAccount(scheme Scheme, seed []byte, index int, params Params) (KeyPair, error) {
	if index < 0 || int64(index) >= hardenedOffset {
		return KeyPair{}, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	i := uint32(index)

	switch scheme {
	case Cosmos:
		return deriveCosmos(seed, i, params.Bech32Prefix)
	case Bitcoin:
		return deriveBitcoin(seed, i, params.BitcoinNetwork)
	case EVM:
		return deriveEVM(seed, i)
	case Solana:
		return deriveSolana(seed, i)
	}
	return KeyPair{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
}

// DeriveAll derives index on every scheme as one unit. If any scheme fails,
// the keys derived so far are wiped and only the joined error is returned.
func DeriveAll(seed []byte, index int, schemes []Scheme, params Params) (map[Scheme]KeyPair, error) {
	out := make(map[Scheme]KeyPair, len(schemes))
	var errs error
	for _, sc := range schemes {
		kp, err := DeriveAccount(sc, seed, index, params)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", sc, err))
			continue
		}
		out[sc] = kp
	}

	if errs != nil {
		for sc, kp := range out {
			kp.Wipe()
			delete(out, sc)
		}
		return nil, errs
	}
	return out, nil
}

// Path returns the derivation path string of index on scheme.
func Path(scheme Scheme, index int) string {
	i := uint32(index)
	switch scheme {
	case Cosmos:
		return formatPath(cosmosPath(i))
	case Bitcoin:
		return formatPath(bitcoinPath(i))
	case EVM:
		return formatPath(evmPath(i))
	case Solana:
		return formatPath(solanaPath(i))
	}
	return ""
}

const hardenedOffset = 0x80000000

func hardened(i uint32) uint32 { return i + hardenedOffset }

func cosmosPath(i uint32) []uint32  { return []uint32{hardened(44), hardened(118), hardened(0), 0, i} }
func bitcoinPath(i uint32) []uint32 { return []uint32{hardened(84), hardened(0), hardened(i), 0, 0} }
func evmPath(i uint32) []uint32     { return []uint32{hardened(44), hardened(60), hardened(0), 0, i} }
func solanaPath(i uint32) []uint32  { return []uint32{hardened(44), hardened(501), hardened(i), hardened(0)} }

func formatPath(path []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, seg := range path {
		b.WriteByte('/')
		if seg >= hardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(seg-hardenedOffset), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(seg), 10))
	}
	return b.String()
}
