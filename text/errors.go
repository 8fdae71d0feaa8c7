package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrGlyphNotFound is returned when no face has a glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrNoFaces is returned when a Chain is created without faces.
	ErrNoFaces = errors.New("text: faces cannot be empty")

	// ErrCellSizeMismatch is returned when chained faces use different cell
	// sizes.
	ErrCellSizeMismatch = errors.New("text: faces use different cell sizes")
)
