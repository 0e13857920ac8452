package art

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdentity_Canonical(t *testing.T) {
	id, err := ParseIdentity("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", id.String())
}

func TestParseIdentity_UppercaseAndNoPrefix(t *testing.T) {
	// Hex case and the 0x prefix are input conveniences; the canonical
	// string form is always lowercase with the prefix.
	upper, err := ParseIdentity("0xDEADBEEFDEADBEEFDEADBEEFDEADBEEFDEADBEEF")
	require.NoError(t, err)

	bare, err := ParseIdentity("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)

	assert.Equal(t, upper, bare)
	assert.Equal(t, "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", upper.String())
}

func TestParseIdentity_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "0xdeadbeef"},
		{"too long", "0x" + strings.Repeat("ab", 21)},
		{"odd length", "0x" + strings.Repeat("a", 39)},
		{"not hex", "0x" + strings.Repeat("zz", 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIdentity(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestIdentityFromBytes_Width(t *testing.T) {
	_, err := IdentityFromBytes(make([]byte, IdentitySize))
	assert.NoError(t, err)

	_, err = IdentityFromBytes(make([]byte, IdentitySize-1))
	assert.Error(t, err)

	_, err = IdentityFromBytes(make([]byte, 32))
	assert.Error(t, err)
}
