// Package render turns an art.Record into a complete SVG document.
//
// ARCHITECTURE:
//
// Structured intermediate model:
// Shape generators emit typed shape values (Curve, Circle, Rect, gradient
// and filter defs), not markup text. Serialization to SVG happens once, at
// the end, in MarshalSVG. This keeps geometry unit-testable independent of
// markup formatting, and keeps formatting decisions in exactly one place.
//
// Determinism:
// Every value in the document is derived from fixed constants, the palette
// table, or bit windows of the record's entropy. No wall clock, no
// math/rand, no map iteration. For a fixed record the output is
// byte-identical across calls, processes, and releases.
//
// Layer order is significant and fixed: defs, background, flow curves,
// particle field, core orb. Later layers paint over earlier ones, so the
// orb is always on top.
package render
