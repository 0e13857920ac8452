package render

import (
	"github.com/roach88/auragen/internal/art"
)

// Canvas is a fixed 400x400 coordinate space.
const (
	canvasWidth  = 400
	canvasHeight = 400
)

// defs builds the reusable definitions for one palette: the core glow
// radial gradient (primary fading through secondary to transparent
// primary), the breath linear gradient (primary to secondary along the x
// axis), and the shared glow filter.
func defs(pal art.Palette) []Shape {
	return []Shape{
		RadialGradient{
			ID: "coreGlow",
			Stops: []Stop{
				{Offset: "0%", Color: pal.Primary},
				{Offset: "60%", Color: pal.Secondary},
				{Offset: "100%", Color: pal.Primary, Opacity: "0"},
			},
		},
		LinearGradient{
			ID: "breath",
			X1: "0%", Y1: "0%", X2: "100%", Y2: "0%",
			Stops: []Stop{
				{Offset: "0%", Color: pal.Primary},
				{Offset: "100%", Color: pal.Secondary},
			},
		},
		GlowFilter{ID: "glow", Color: pal.Glow},
	}
}

// BuildDocument assembles the structured composition for a record without
// serializing it. Exposed separately from Compose so geometry can be
// inspected and tested independent of markup formatting.
//
// Panics if the record's category is outside the closed enum (via the
// palette lookup) or its entropy is nil; both are contract violations from
// the issuance layer, not renderable states.
func BuildDocument(rec art.Record) Document {
	if rec.Entropy == nil {
		panic("render: record with nil entropy")
	}
	pal := art.PaletteFor(rec.Category)

	layers := make([]Shape, 0, 1+flowCurveCount+particleCount+2)
	layers = append(layers, Rect{Width: canvasWidth, Height: canvasHeight, Fill: pal.Background})
	layers = append(layers, FlowCurves(rec.Entropy)...)
	layers = append(layers, Particles(rec.Entropy, pal)...)
	layers = append(layers, CoreOrb(rec.Entropy, pal)...)

	return Document{
		Width:  canvasWidth,
		Height: canvasHeight,
		Defs:   defs(pal),
		Layers: layers,
	}
}

// Compose renders the complete SVG document for a record. Pure function:
// a fixed record yields byte-identical output on every call.
func Compose(rec art.Record) string {
	return MarshalSVG(BuildDocument(rec))
}
