package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/auragen/internal/art"
)

const validManifest = `
name: launch-batch
description: First public batch.
entries:
  - name: genesis
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "0x123456789abcdef0123456789abcdef0"
    sequence: 1
    display_id: 1
  - name: second
    identity: "0x0102030405060708090a0b0c0d0e0f1011121314"
    entropy: "0x2a"
    sequence: 2
    display_id: 2
`

func TestParse_Valid(t *testing.T) {
	m, err := Parse("test.yaml", []byte(validManifest))
	require.NoError(t, err)

	assert.Equal(t, "launch-batch", m.Name)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "genesis", m.Entries[0].Name)
	assert.Equal(t, uint64(1), m.Entries[0].DisplayID)
	assert.Equal(t, uint64(2), m.Entries[1].Sequence)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			"identity wrong length",
			`
name: bad
entries:
  - name: short-id
    identity: "0xdeadbeef"
    entropy: "0x2a"
    sequence: 0
    display_id: 1
`,
		},
		{
			"entropy missing prefix",
			`
name: bad
entries:
  - name: bare-entropy
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "2a"
    sequence: 0
    display_id: 1
`,
		},
		{
			"negative sequence",
			`
name: bad
entries:
  - name: negative
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "0x2a"
    sequence: -1
    display_id: 1
`,
		},
		{
			"zero display id",
			`
name: bad
entries:
  - name: zero-display
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "0x2a"
    sequence: 0
    display_id: 0
`,
		},
		{
			"missing name",
			`
entries: []
`,
		},
		{
			"entry name with uppercase",
			`
name: bad
entries:
  - name: Genesis
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "0x2a"
    sequence: 0
    display_id: 1
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("test.yaml", []byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse("test.yaml", []byte(`
name: bad
entries:
  - name: extra
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "0x2a"
    sequence: 0
    display_id: 1
    color: red
`))
	assert.Error(t, err, "unknown entry fields are rejected")
}

func TestParse_DuplicateNames(t *testing.T) {
	_, err := Parse("test.yaml", []byte(`
name: bad
entries:
  - name: twin
    identity: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"
    entropy: "0x2a"
    sequence: 0
    display_id: 1
  - name: twin
    identity: "0x0102030405060708090a0b0c0d0e0f1011121314"
    entropy: "0x2b"
    sequence: 1
    display_id: 2
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("test.yaml", []byte("name: empty\nentries: []\n"))
	assert.Error(t, err)
}

func TestParse_NotYAML(t *testing.T) {
	_, err := Parse("test.yaml", []byte(":\n  - ][ not yaml"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "launch-batch", m.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEntry_Record(t *testing.T) {
	m, err := Parse("test.yaml", []byte(validManifest))
	require.NoError(t, err)

	rec, err := m.Entries[0].Record()
	require.NoError(t, err)

	assert.Equal(t, "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", rec.Identity.String())
	assert.Equal(t, art.SelectCategory(rec.Identity), rec.Category)
	assert.Equal(t, uint64(1), rec.SequenceIndex)
	assert.Equal(t, "123456789abcdef0123456789abcdef0", rec.Entropy.Text(16))
}
