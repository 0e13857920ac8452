package render

import "fmt"

// FormatOpacity renders a centesimal opacity band as a decimal fraction.
//
// The band values the generators produce (30..69 for curves, 40..89 for
// particles) are hundredths, and the attribute must always carry exactly
// two digits after the point: 7 renders as "0.07", never "0.7". The
// explicit %02d rule is the documented padding decision; building the
// string by concatenating "0." with an unpadded integer would silently
// change the value for bands below 10.
//
// Panics outside [0, 99]: generators are modulo-bounded, so a value out of
// range means a broken window table, not bad user input.
func FormatOpacity(centi int) string {
	if centi < 0 || centi > 99 {
		panic(fmt.Sprintf("render: opacity band %d outside [0, 99]", centi))
	}
	return fmt.Sprintf("0.%02d", centi)
}
