// Package manifest loads and validates batch render manifests.
//
// A manifest is a YAML document naming the records to render: identity,
// entropy, sequence index, and public display id per entry. Manifests are
// the only configuration surface of the project; the rendering core never
// reads files.
//
// Validation happens twice, on purpose: the embedded CUE schema checks
// shape and value constraints with positions and field names in the error
// text, then strict YAML decoding into the Go types rejects unknown
// fields. Cross-entry rules (unique names) live in Go where CUE would be
// awkward.
package manifest

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/auragen/internal/art"
)

// schemaSrc is the CUE schema every manifest must satisfy.
const schemaSrc = `
#Entry: {
	name:       string & =~"^[a-z0-9][a-z0-9._-]*$"
	identity:   string & =~"^0x[0-9a-fA-F]{40}$"
	entropy:    string & =~"^0x[0-9a-fA-F]{1,64}$"
	sequence:   int & >=0
	display_id: int & >=1
}

#Manifest: {
	name:        string & !=""
	description?: string
	entries: [...#Entry]
}
`

// Manifest is a validated batch of render entries.
type Manifest struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Entries     []Entry `yaml:"entries"`
}

// Entry describes one record to render.
type Entry struct {
	Name      string `yaml:"name"`
	Identity  string `yaml:"identity"`
	Entropy   string `yaml:"entropy"`
	Sequence  uint64 `yaml:"sequence"`
	DisplayID uint64 `yaml:"display_id"`
}

// Load reads, validates, and decodes a manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return Parse(path, raw)
}

// Parse validates and decodes manifest bytes. The filename is used only
// for error positions.
func Parse(filename string, raw []byte) (*Manifest, error) {
	if err := validateSchema(filename, raw); err != nil {
		return nil, err
	}

	var m Manifest
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filename, err)
	}

	if len(m.Entries) == 0 {
		return nil, fmt.Errorf("manifest %s: no entries", filename)
	}
	seen := make(map[string]bool, len(m.Entries))
	for _, e := range m.Entries {
		if seen[e.Name] {
			return nil, fmt.Errorf("manifest %s: duplicate entry name %q", filename, e.Name)
		}
		seen[e.Name] = true
	}
	return &m, nil
}

// validateSchema unifies the YAML document with #Manifest and requires a
// concrete, valid result.
func validateSchema(filename string, raw []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("manifest: internal schema error: %w", err)
	}

	file, err := cueyaml.Extract(filename, raw)
	if err != nil {
		return fmt.Errorf("manifest %s: invalid YAML: %w", filename, err)
	}
	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("manifest %s: invalid YAML: %w", filename, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Manifest")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("manifest %s: schema violation: %w", filename, err)
	}
	return nil
}

// Record converts a validated entry into the issuance-layer input record,
// deriving the category from the identity the same way issuance would.
func (e Entry) Record() (art.Record, error) {
	id, err := art.ParseIdentity(e.Identity)
	if err != nil {
		return art.Record{}, fmt.Errorf("entry %q: %w", e.Name, err)
	}

	ent, ok := new(big.Int).SetString(strings.TrimPrefix(e.Entropy, "0x"), 16)
	if !ok {
		return art.Record{}, fmt.Errorf("entry %q: invalid entropy %q", e.Name, e.Entropy)
	}

	rec, err := art.NewRecord(id, ent, e.Sequence)
	if err != nil {
		return art.Record{}, fmt.Errorf("entry %q: %w", e.Name, err)
	}
	return rec, nil
}
