// Package entropy extracts deterministic pseudo-random sub-values from a
// single large entropy integer.
//
// The trick: one 256-bit value is treated as dozens of independent random
// draws by reading shifted bit windows out of it, with no re-hashing.
// Windows used for a single shape's parameter set must not overlap, or
// visible correlation appears between parameters; the fixed window tables
// in the render package are laid out with that constraint in mind.
//
// All functions are pure and total: entropy of any width (including zero)
// yields a well-defined result.
package entropy

import "math/big"

// Slice computes (e >> shift) & ((1 << maskBits) - 1).
//
// maskBits must be at most 64 so the window fits a uint64; larger masks
// are a programmer error and panic. The input itself is unbounded - bits
// beyond e's width read as zero, which is exactly what the arithmetic
// gives for free.
func Slice(e *big.Int, shift, maskBits uint) uint64 {
	if maskBits > 64 {
		panic("entropy: mask wider than 64 bits")
	}
	shifted := new(big.Int).Rsh(e, shift)

	mask := new(big.Int).Lsh(big.NewInt(1), maskBits)
	mask.Sub(mask, big.NewInt(1))

	return shifted.And(shifted, mask).Uint64()
}

// Mod computes (e >> shift) mod modulus over the full shifted value.
//
// This is NOT the same as slicing 64 bits first and reducing: truncating
// to a power-of-two window changes the residue for any modulus that does
// not divide 2^64, which would skew the draw. The core orb parameters use
// this form because their source windows are the unbounded entropy itself.
//
// modulus must be positive; zero would be a division by zero and panics.
func Mod(e *big.Int, shift uint, modulus uint64) uint64 {
	if modulus == 0 {
		panic("entropy: zero modulus")
	}
	shifted := new(big.Int).Rsh(e, shift)
	return shifted.Mod(shifted, new(big.Int).SetUint64(modulus)).Uint64()
}

// Window returns the index-th consecutive window of the given bit width:
// Slice(e, index*width, width). This is the access pattern the per-shape
// tables use (40-bit windows for flow curves, 12-bit for particles).
func Window(e *big.Int, index, width uint) uint64 {
	return Slice(e, index*width, width)
}
