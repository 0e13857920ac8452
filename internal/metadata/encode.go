// Package metadata wraps a rendered SVG document and its record into the
// transport-safe metadata envelope.
//
// The envelope is a JSON object {name, description, attributes, image}
// where the image field embeds the SVG as a base64 data URI, and the whole
// object is itself returned as a base64 JSON data URI. JSON bytes come
// from the canonical marshaller in this package, so for a fixed record the
// envelope is byte-identical across calls, processes, and releases.
package metadata

import (
	"encoding/base64"
	"fmt"

	"github.com/roach88/auragen/internal/art"
)

// Data URI prefixes for the two encoded payloads.
const (
	JSONPrefix = "data:application/json;base64,"
	SVGPrefix  = "data:image/svg+xml;base64,"
)

// Encode produces the metadata envelope for a record and its rendered SVG
// document. displayID is the public item number used in the name field;
// it is distinct from the record's sequence index, which the issuance
// layer assigns from its own counter.
func Encode(rec art.Record, svg string, displayID uint64) (string, error) {
	doc := envelope(rec, svg, displayID)

	raw, err := marshalCanonical(doc)
	if err != nil {
		return "", fmt.Errorf("metadata: marshal envelope: %w", err)
	}
	return JSONPrefix + base64.StdEncoding.EncodeToString(raw), nil
}

// EncodeJSON returns the envelope's raw JSON bytes without the outer data
// URI wrapping, for inspection surfaces that want readable output.
func EncodeJSON(rec art.Record, svg string, displayID uint64) ([]byte, error) {
	raw, err := marshalCanonical(envelope(rec, svg, displayID))
	if err != nil {
		return nil, fmt.Errorf("metadata: marshal envelope: %w", err)
	}
	return raw, nil
}

// envelope builds the document as plain values for the canonical
// marshaller. Attribute entries use the trait/value shape; category names
// are the fixed strings of the closed enum, and the creator value is the
// identity's canonical hex form.
func envelope(rec art.Record, svg string, displayID uint64) map[string]any {
	name := rec.Category.Name() // panics on contract violation before any output is built

	return map[string]any{
		"name":        fmt.Sprintf("Aura #%d", displayID),
		"description": fmt.Sprintf("A generative aura in the %s palette, rendered deterministically from its entropy.", name),
		"attributes": []any{
			map[string]any{"trait": "Category", "value": name},
			map[string]any{"trait": "Creator", "value": rec.Identity.String()},
			map[string]any{"trait": "Sequence Block", "value": rec.SequenceIndex},
		},
		"image": SVGPrefix + base64.StdEncoding.EncodeToString([]byte(svg)),
	}
}
