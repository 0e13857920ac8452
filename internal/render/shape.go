package render

// Shape is a sealed interface over the primitive values the generators
// emit. Only the types in this file implement it; MarshalSVG panics on
// anything else, which turns a forgotten case into a loud failure instead
// of silently dropped markup.
type Shape interface {
	shape()
}

// Stop is one gradient color stop. Opacity is the literal attribute value
// ("0" for fully transparent); empty string omits the attribute.
type Stop struct {
	Offset  string
	Color   string
	Opacity string
}

// RadialGradient is a reusable radial gradient definition.
type RadialGradient struct {
	ID    string
	Stops []Stop
}

func (RadialGradient) shape() {}

// LinearGradient is a reusable linear gradient definition with an explicit
// axis so the direction never depends on renderer defaults.
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 string
	Stops          []Stop
}

func (LinearGradient) shape() {}

// GlowFilter is the shared soft-glow filter: a Gaussian blur of the source
// re-colored by a flood of the palette glow color, merged back under the
// original graphic.
type GlowFilter struct {
	ID    string
	Color string
}

func (GlowFilter) shape() {}

// Rect is an axis-aligned filled rectangle anchored at the origin.
// Only the background uses it.
type Rect struct {
	Width, Height int
	Fill          string
}

func (Rect) shape() {}

// Curve is a single cubic Bezier stroke from (StartX,StartY) through two
// control points to (EndX,EndY).
type Curve struct {
	StartX, StartY int
	Ctrl1X, Ctrl1Y int
	Ctrl2X, Ctrl2Y int
	EndX, EndY     int
	Stroke         string
	StrokeWidth    int
	Opacity        string
}

func (Curve) shape() {}

// Circle is a filled circle. Opacity "" omits the attribute; Glow adds the
// shared glow filter reference.
type Circle struct {
	CX, CY, R int
	Fill      string
	Opacity   string
	Glow      bool
}

func (Circle) shape() {}

// Document is the assembled composition before serialization: reusable
// defs plus paint layers in their fixed z-order.
type Document struct {
	Width, Height int
	Defs          []Shape
	Layers        []Shape
}
