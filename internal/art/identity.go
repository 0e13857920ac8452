package art

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// IdentitySize is the canonical byte width of an identity key.
const IdentitySize = 20

// Identity is a fixed-width address-like key. The zero value is valid
// input to SelectCategory (it is just another 20-byte value), but callers
// normally obtain identities via ParseIdentity or IdentityFromBytes.
type Identity [IdentitySize]byte

// ParseIdentity parses a 0x-prefixed hex string into an Identity.
// The prefix is optional and hex digits are case-insensitive, but the
// decoded value must be exactly 20 bytes. Anything else is rejected here,
// before an identity can reach the rendering core.
func ParseIdentity(s string) (Identity, error) {
	var id Identity

	trimmed := strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(trimmed)
	if err != nil {
		return id, fmt.Errorf("identity %q: invalid hex: %w", s, err)
	}
	if len(raw) != IdentitySize {
		return id, fmt.Errorf("identity %q: got %d bytes, want %d", s, len(raw), IdentitySize)
	}

	copy(id[:], raw)
	return id, nil
}

// IdentityFromBytes constructs an Identity from a raw byte slice.
// Returns an error unless the slice is exactly 20 bytes.
func IdentityFromBytes(raw []byte) (Identity, error) {
	var id Identity
	if len(raw) != IdentitySize {
		return id, fmt.Errorf("identity: got %d bytes, want %d", len(raw), IdentitySize)
	}
	copy(id[:], raw)
	return id, nil
}

// String returns the canonical form: lowercase 0x-prefixed hex, 40 digits.
// This exact string appears in metadata attributes, so it must never vary.
func (id Identity) String() string {
	return "0x" + hex.EncodeToString(id[:])
}
