package render

import (
	"fmt"
	"strings"
)

// MarshalSVG serializes a Document to SVG text. This is the only place
// markup is produced; attribute order and whitespace are fixed here and
// nowhere else, so the byte-identity guarantee has a single owner.
//
// Layout: the root tag, the defs block, and each layer shape occupy one
// line each. Definitions render inline within their defs line.
func MarshalSVG(doc Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, doc.Width, doc.Height)
	b.WriteByte('\n')

	b.WriteString("<defs>")
	for _, d := range doc.Defs {
		writeShape(&b, d)
	}
	b.WriteString("</defs>\n")

	for _, s := range doc.Layers {
		writeShape(&b, s)
		b.WriteByte('\n')
	}

	b.WriteString("</svg>")
	return b.String()
}

func writeShape(b *strings.Builder, s Shape) {
	switch v := s.(type) {
	case RadialGradient:
		fmt.Fprintf(b, `<radialGradient id="%s">`, v.ID)
		writeStops(b, v.Stops)
		b.WriteString("</radialGradient>")
	case LinearGradient:
		fmt.Fprintf(b, `<linearGradient id="%s" x1="%s" y1="%s" x2="%s" y2="%s">`, v.ID, v.X1, v.Y1, v.X2, v.Y2)
		writeStops(b, v.Stops)
		b.WriteString("</linearGradient>")
	case GlowFilter:
		fmt.Fprintf(b, `<filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%">`, v.ID)
		b.WriteString(`<feGaussianBlur in="SourceGraphic" stdDeviation="4" result="blur"/>`)
		fmt.Fprintf(b, `<feFlood flood-color="%s" result="flood"/>`, v.Color)
		b.WriteString(`<feComposite in="flood" in2="blur" operator="in" result="soft"/>`)
		b.WriteString(`<feMerge><feMergeNode in="soft"/><feMergeNode in="SourceGraphic"/></feMerge>`)
		b.WriteString("</filter>")
	case Rect:
		fmt.Fprintf(b, `<rect width="%d" height="%d" fill="%s"/>`, v.Width, v.Height, v.Fill)
	case Curve:
		fmt.Fprintf(b, `<path d="M%d,%d C%d,%d %d,%d %d,%d" fill="none" stroke="%s" stroke-width="%d" opacity="%s" filter="url(#glow)"/>`,
			v.StartX, v.StartY, v.Ctrl1X, v.Ctrl1Y, v.Ctrl2X, v.Ctrl2Y, v.EndX, v.EndY,
			v.Stroke, v.StrokeWidth, v.Opacity)
	case Circle:
		fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="%d" fill="%s"`, v.CX, v.CY, v.R, v.Fill)
		if v.Opacity != "" {
			fmt.Fprintf(b, ` opacity="%s"`, v.Opacity)
		}
		if v.Glow {
			b.WriteString(` filter="url(#glow)"`)
		}
		b.WriteString("/>")
	default:
		panic(fmt.Sprintf("render: unknown shape type %T", s))
	}
}

func writeStops(b *strings.Builder, stops []Stop) {
	for _, st := range stops {
		fmt.Fprintf(b, `<stop offset="%s" stop-color="%s"`, st.Offset, st.Color)
		if st.Opacity != "" {
			fmt.Fprintf(b, ` stop-opacity="%s"`, st.Opacity)
		}
		b.WriteString("/>")
	}
}
