package text

import (
	"fmt"

	"github.com/gogpu/textmode"
)

// FallbackFace is a rasterizer that can report coverage up front. *Face
// implements it.
type FallbackFace interface {
	textmode.Rasterizer
	HasGlyph(r rune) bool
	CellSize() (width, height int)
}

// Chain rasterizes each rune with the first face that has a glyph for it.
//
// Chain is safe for concurrent use when its faces are.
type Chain struct {
	faces []FallbackFace
}

// NewChain creates a Chain over faces, tried in order. All faces must use
// the same cell size.
func NewChain(faces ...FallbackFace) (*Chain, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	w, h := faces[0].CellSize()
	for i, f := range faces[1:] {
		if fw, fh := f.CellSize(); fw != w || fh != h {
			return nil, fmt.Errorf("%w: face %d is %dx%d, face 0 is %dx%d",
				ErrCellSizeMismatch, i+1, fw, fh, w, h)
		}
	}
	cp := make([]FallbackFace, len(faces))
	copy(cp, faces)
	return &Chain{faces: cp}, nil
}

// Faces returns the number of faces in the chain.
func (c *Chain) Faces() int {
	return len(c.faces)
}

// CellSize returns the cell size shared by all faces.
func (c *Chain) CellSize() (width, height int) {
	return c.faces[0].CellSize()
}

// HasGlyph reports whether any face has a glyph for r.
func (c *Chain) HasGlyph(r rune) bool {
	return c.faceFor(r) != nil
}

// Rasterize implements textmode.Rasterizer.
func (c *Chain) Rasterize(r rune) (textmode.Glyph, error) {
	f := c.faceFor(r)
	if f == nil {
		return textmode.Glyph{}, fmt.Errorf("%w: %q in any of %d faces", ErrGlyphNotFound, r, len(c.faces))
	}
	return f.Rasterize(r)
}

func (c *Chain) faceFor(r rune) FallbackFace {
	for _, f := range c.faces {
		if f.HasGlyph(r) {
			return f
		}
	}
	return nil
}

var (
	_ FallbackFace = (*Face)(nil)
	_ FallbackFace = (*Chain)(nil)
)
