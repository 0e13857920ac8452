package art

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Category is one of five fixed art styles, assigned deterministically
// from an identity key. The enum is closed: values outside [0, NumCategories)
// are a contract violation, and functions taking a Category panic on them
// rather than silently defaulting (a default would mask a selector bug).
type Category int

// NumCategories is the size of the closed category enum.
const NumCategories = 5

const (
	CategoryEmber Category = iota
	CategoryTide
	CategoryAurora
	CategorySol
	CategoryUmbra
)

var categoryNames = [NumCategories]string{
	"Ember",
	"Tide",
	"Aurora",
	"Sol",
	"Umbra",
}

// Valid reports whether c is inside the closed enum.
func (c Category) Valid() bool {
	return c >= 0 && c < NumCategories
}

// Name returns the fixed display name for the category.
// Panics on out-of-range values.
func (c Category) Name() string {
	if !c.Valid() {
		panic(fmt.Sprintf("art: invalid category %d", int(c)))
	}
	return categoryNames[c]
}

// String implements fmt.Stringer. Unlike Name it never panics, so it is
// safe inside error formatting for the invalid values themselves.
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// SelectCategory maps an identity to a category: SHA-256 over the
// canonical 20 bytes, digest read as a big-endian unsigned integer, mod 5.
//
// The hash only needs to be well distributed, not attack-resistant:
// category aliasing has cosmetic impact, nothing more. SHA-256 is used
// because it is the hash this codebase already standardizes on for
// content-derived values.
//
// Pure function of the identity alone. Entropy and sequence index never
// influence the category.
func SelectCategory(id Identity) Category {
	digest := sha256.Sum256(id[:])
	n := new(big.Int).SetBytes(digest[:])
	return Category(n.Mod(n, big.NewInt(NumCategories)).Int64())
}
