// Package art defines the foundational domain types for AURAGEN.
//
// This package contains the identity key, the closed five-value category
// enum with its palette table, and the immutable Record that the rendering
// pipeline consumes. All other internal packages import art; art imports
// nothing internal, which keeps it the foundational layer with no circular
// dependencies.
//
// Key design constraints:
//   - Identity is a fixed 20-byte value; parsing rejects any other width
//   - Category assignment is a pure function of the identity alone
//   - The palette table is package-level constant data, never mutated
//   - Record carries entropy as *big.Int so values beyond 64 bits survive
//     intact; the renderer never assumes an upper bound on entropy width
package art
