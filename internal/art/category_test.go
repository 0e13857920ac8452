package art

import (
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCategory_MatchesIndependentHash(t *testing.T) {
	// Concrete scenario: 0xdeadbeef repeated to 20 bytes. The category
	// must equal sha256(identity) mod 5 computed from first principles.
	id, err := ParseIdentity("0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.NoError(t, err)

	digest := sha256.Sum256(id[:])
	want := new(big.Int).SetBytes(digest[:])
	want.Mod(want, big.NewInt(NumCategories))

	got := SelectCategory(id)
	assert.Equal(t, Category(want.Int64()), got)
	assert.Equal(t, CategoryEmber, got, "known digest for this identity lands on Ember")
}

func TestSelectCategory_Deterministic(t *testing.T) {
	id, err := ParseIdentity("0x0102030405060708090a0b0c0d0e0f1011121314")
	require.NoError(t, err)

	first := SelectCategory(id)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, SelectCategory(id))
	}
}

func TestSelectCategory_ZeroIdentity(t *testing.T) {
	// The zero identity is unusual but not invalid.
	var id Identity
	assert.True(t, SelectCategory(id).Valid())
}

func TestCategory_Name(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryEmber, "Ember"},
		{CategoryTide, "Tide"},
		{CategoryAurora, "Aurora"},
		{CategorySol, "Sol"},
		{CategoryUmbra, "Umbra"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cat.Name())
			assert.Equal(t, tt.want, tt.cat.String())
		})
	}
}

func TestCategory_Name_PanicsOutsideEnum(t *testing.T) {
	// A category outside the closed enum is a selector bug; defaulting
	// silently would mask it.
	assert.Panics(t, func() { Category(5).Name() })
	assert.Panics(t, func() { Category(-1).Name() })
}

func TestCategory_String_SafeOutsideEnum(t *testing.T) {
	assert.Equal(t, "Category(17)", Category(17).String())
}
