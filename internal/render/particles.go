package render

import (
	"math/big"

	"github.com/roach88/auragen/internal/art"
	"github.com/roach88/auragen/internal/entropy"
)

// Particle window layout: one 12-bit window per particle, twenty
// particles, consuming the low 240 bits of entropy.
const (
	particleCount      = 20
	particleWindowBits = 12
)

// Particles derives the twenty-point particle field. Fill alternates
// between the primary and secondary palette colors by particle parity.
func Particles(e *big.Int, pal art.Palette) []Shape {
	field := make([]Shape, 0, particleCount)
	for i := uint(0); i < particleCount; i++ {
		s := entropy.Window(e, i, particleWindowBits)

		fill := pal.Primary
		if i%2 == 1 {
			fill = pal.Secondary
		}
		field = append(field, Circle{
			CX:      50 + int(s%300),
			CY:      50 + int((s>>4)%300),
			R:       2 + int((s>>8)%6),
			Fill:    fill,
			Opacity: FormatOpacity(40 + int((s>>4)%50)),
			Glow:    true,
		})
	}
	return field
}
