package textmode

import "fmt"

// Glyph is a coverage bitmap for one character.
//
// Coverage holds Width*Height bytes, row-major; 0 is uncovered and 255 is
// fully covered. Left and Top place the bitmap's top-left corner inside the
// cell; anything falling outside the cell is clipped.
type Glyph struct {
	Width    int
	Height   int
	Coverage []uint8
	Left     int
	Top      int
}

// Validate reports whether the coverage matches the dimensions.
func (g Glyph) Validate() error {
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrMalformedGlyph, g.Width, g.Height)
	}
	if len(g.Coverage) != g.Width*g.Height {
		return fmt.Errorf("%w: %dx%d glyph with %d coverage bytes",
			ErrMalformedGlyph, g.Width, g.Height, len(g.Coverage))
	}
	return nil
}

// Rasterizer turns a character into a coverage bitmap.
//
// Implementations must be deterministic: the same rune always yields the
// same glyph, since composed cells are cached by value.
type Rasterizer interface {
	Rasterize(r rune) (Glyph, error)
}

// RasterizerFunc adapts an ordinary function to the Rasterizer interface.
type RasterizerFunc func(r rune) (Glyph, error)

// Rasterize calls f(r).
func (f RasterizerFunc) Rasterize(r rune) (Glyph, error) {
	return f(r)
}
