package render

import (
	"math/big"

	"github.com/roach88/auragen/internal/entropy"
)

// Flow curve window layout: one 40-bit window per curve, five curves.
// Sub-values are read at byte offsets inside the window; the moduli keep
// the eight parameters decorrelated even where byte offsets are shared.
const (
	flowCurveCount  = 5
	flowWindowBits  = 40
	flowCurveStartX = 50
)

// FlowCurves derives the five background flow curves from entropy.
// All curves share the breath gradient stroke and the glow filter; stroke
// width grows with the curve index so later curves read as foreground.
func FlowCurves(e *big.Int) []Shape {
	curves := make([]Shape, 0, flowCurveCount)
	for i := uint(0); i < flowCurveCount; i++ {
		w := entropy.Window(e, i, flowWindowBits)

		curves = append(curves, Curve{
			StartX:      flowCurveStartX,
			StartY:      180 + int(w%40),
			Ctrl1X:      100 + int((w>>8)%80),
			Ctrl1Y:      150 + int((w>>16)%100),
			Ctrl2X:      250 + int((w>>24)%80),
			Ctrl2Y:      150 + int((w>>32)%100),
			EndX:        350 + int((w>>16)%30),
			EndY:        180 + int((w>>24)%40),
			Stroke:      "url(#breath)",
			StrokeWidth: 3 + 2*int(i),
			Opacity:     FormatOpacity(30 + int((w>>32)%40)),
		})
	}
	return curves
}
