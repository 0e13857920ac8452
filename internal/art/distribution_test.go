package art_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/auragen/internal/art"
	"github.com/roach88/auragen/internal/testutil"
)

// External test package: the fixture generator imports art, so this test
// lives outside the art package to avoid an import cycle.

func TestSelectCategory_DistributionAcrossSample(t *testing.T) {
	// Property, not exact count: over 1000 distinct identities every
	// category must appear at least once, and none may dominate wildly.
	const sample = 1000

	counts := make(map[art.Category]int, art.NumCategories)
	for n := uint64(0); n < sample; n++ {
		counts[art.SelectCategory(testutil.Identity(n))]++
	}

	assert.Len(t, counts, art.NumCategories, "every category should appear")
	for cat, count := range counts {
		assert.Greater(t, count, 0, "category %s missing", cat)
		// A uniform hash puts ~200 in each bucket; 2x is a loose bound
		// that only a broken selector would cross.
		assert.Less(t, count, 2*sample/art.NumCategories, "category %s over-represented", cat)
	}
}
