package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/auragen/internal/testutil"
)

// Golden files pin the exact bytes of the SVG output for fixed records.
// Any change to geometry derivation or serialization shows up as a diff
// here before it ships as a silently different picture.
//
// To regenerate after an intentional format change:
//
//	go test ./internal/render -update

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestCompose_Golden_ScenarioA(t *testing.T) {
	rec := scenarioRecord(t, "123456789ABCDEF0123456789ABCDEF0")
	newGoldie(t).Assert(t, "scenario_a", []byte(Compose(rec)))
}

func TestCompose_Golden_ZeroEntropy(t *testing.T) {
	rec := scenarioRecord(t, "0")
	newGoldie(t).Assert(t, "entropy_zero", []byte(Compose(rec)))
}

func TestCompose_Golden_Fixture(t *testing.T) {
	rec := testutil.Record(8)
	newGoldie(t).Assert(t, "fixture_eight", []byte(Compose(rec)))
}
