package core

// GlyphKind tells the renderer how to style a glyph.
type GlyphKind int

const (
	GlyphUntouched GlyphKind = iota
	GlyphInProgress
	GlyphBanner
)

// Glyph is one piece of text placed on the canvas, centred at (X, Y).
type Glyph struct {
	Text string
	X, Y int
	Kind GlyphKind
}

// Scene is an immutable draw-list in canvas coordinates.
// The driver decides how canvas units map to pixels or terminal cells.
type Scene struct {
	Width  int
	Height int
	Glyphs []Glyph
}

// NewScene creates an empty scene of the given canvas size.
func NewScene(width, height int) Scene {
	return Scene{Width: width, Height: height}
}

// Place returns a new scene with g appended.
// The capped slice forces a copy so earlier scenes never see the new glyph.
func (s Scene) Place(g Glyph) Scene {
	n := len(s.Glyphs)
	s.Glyphs = append(s.Glyphs[:n:n], g)
	return s
}

// Len returns the number of glyphs in the scene.
func (s Scene) Len() int {
	return len(s.Glyphs)
}
