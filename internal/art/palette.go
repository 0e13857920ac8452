package art

// Palette is the four-color scheme for one category. All values are
// lowercase #rrggbb hex strings, emitted verbatim into the SVG document.
type Palette struct {
	Background string
	Primary    string
	Secondary  string
	Glow       string
}

// palettes maps each category to its fixed palette. Read-only constant
// data, initialized once at process start and never mutated; this is what
// keeps the render pipeline a pure function.
var palettes = [NumCategories]Palette{
	CategoryEmber:  {Background: "#140b08", Primary: "#ff6b35", Secondary: "#f7c59f", Glow: "#ffe3c8"},
	CategoryTide:   {Background: "#05101e", Primary: "#2ec4b6", Secondary: "#3a86ff", Glow: "#cbf3f0"},
	CategoryAurora: {Background: "#0b0e1a", Primary: "#7fffd4", Secondary: "#9d4edd", Glow: "#e0fff7"},
	CategorySol:    {Background: "#1a1405", Primary: "#ffd60a", Secondary: "#ff8f00", Glow: "#fff3bf"},
	CategoryUmbra:  {Background: "#0d0a14", Primary: "#b14aed", Secondary: "#5e2bff", Glow: "#e8d7ff"},
}

// PaletteFor returns the palette for a category.
// Panics on out-of-range values, matching Category.Name.
func PaletteFor(c Category) Palette {
	if !c.Valid() {
		panic("art: invalid category " + c.String())
	}
	return palettes[c]
}
