package derivation

import (
	"fmt"

	"github.com/anyproto/go-slip10"
)

// slip10Ed25519 derives the 32-byte ed25519 private seed at path following
// SLIP-0010. Ed25519 has no public parent derivation, so every segment must
// be hardened.
func slip10Ed25519(seed []byte, path []uint32) ([]byte, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSeed, len(seed))
	}
	for _, seg := range path {
		if seg < hardenedOffset {
			return nil, fmt.Errorf("%w: %d", ErrNonHardenedSegment, seg)
		}
	}

	node, err := slip10.DeriveForPath(formatPath(path), seed)
	if err != nil {
		return nil, fmt.Errorf("slip-0010 derive %s: %w", formatPath(path), err)
	}

	_, priv := node.Keypair()
	defer clear(priv)

	out := make([]byte, 32)
	copy(out, priv.Seed())
	return out, nil
}
