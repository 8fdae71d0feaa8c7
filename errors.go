package textmode

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textmode package.
var (
	// ErrOutOfBounds is matched by every *BoundsError.
	ErrOutOfBounds = errors.New("textmode: coordinate out of bounds")

	// ErrGeometry is returned when the cell grid does not fit the framebuffer
	// or a geometry field is not usable.
	ErrGeometry = errors.New("textmode: invalid geometry")

	// ErrFramebufferSize is returned when a framebuffer is smaller than the
	// geometry requires or its backing slice has the wrong length.
	ErrFramebufferSize = errors.New("textmode: framebuffer size mismatch")

	// ErrMalformedGlyph is returned when a rasterizer produces a glyph whose
	// coverage does not match its dimensions.
	ErrMalformedGlyph = errors.New("textmode: malformed glyph")

	// ErrNilRasterizer is returned when no rasterizer is supplied.
	ErrNilRasterizer = errors.New("textmode: nil rasterizer")

	// ErrNilGrid is returned when no grid is supplied to a render call.
	ErrNilGrid = errors.New("textmode: nil grid")
)

// BoundsError reports a grid coordinate outside the allowed range.
type BoundsError struct {
	// Axis is "column" or "row".
	Axis string
	// Value is the offending coordinate.
	Value int
	// Limit is the exclusive upper bound; the allowed range is [0, Limit).
	Limit int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("textmode: %s %d out of range [0, %d)", e.Axis, e.Value, e.Limit)
}

// Is makes errors.Is(err, ErrOutOfBounds) true for any BoundsError.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// GlyphError reports that the glyph for a rune could not be produced.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("textmode: glyph %q (U+%04X): %v", e.Rune, e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
