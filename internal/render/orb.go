package render

import (
	"math/big"

	"github.com/roach88/auragen/internal/art"
	"github.com/roach88/auragen/internal/entropy"
)

// CoreOrb derives the topmost layer: an outer circle filled with the core
// glow radial gradient and an inner circle of one third the radius filled
// solid with the glow color.
//
// The three parameters are direct modulo reductions of the shifted
// entropy, not masked windows - see entropy.Mod for why the distinction
// matters. The radius floor of 25 keeps the inner radius (integer third)
// at 8 or more, so it can never degenerate to zero.
func CoreOrb(e *big.Int, pal art.Palette) []Shape {
	x := 45 + int(entropy.Mod(e, 0, 15))
	y := 190 + int(entropy.Mod(e, 8, 20))
	r := 25 + int(entropy.Mod(e, 16, 15))

	return []Shape{
		Circle{CX: x, CY: y, R: r, Fill: "url(#coreGlow)", Glow: true},
		Circle{CX: x, CY: y, R: r / 3, Fill: pal.Glow, Opacity: "0.9"},
	}
}
