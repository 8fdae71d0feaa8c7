package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// coverageShapeSize is the size runes are shaped at for coverage. The
// glyph index does not depend on size.
const coverageShapeSize = 16

// Coverage reports which runes an OpenType font maps to a real glyph, as
// opposed to .notdef. Lookups shape the rune with HarfBuzz (via
// go-text/typesetting) so cmap subtables and composed forms are handled the
// same way a text shaper would; answers are memoized per rune.
//
// Coverage is safe for concurrent use.
type Coverage struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances, which are not safe for
	// concurrent use.
	shaperPool sync.Pool

	known *runeSet
}

// NewCoverage parses font data with go-text/typesetting.
func NewCoverage(data []byte) (*Coverage, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Coverage{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		known: newRuneSet(),
	}, nil
}

// Covers reports whether the font has a glyph for r.
func (c *Coverage) Covers(r rune) bool {
	return c.known.lookup(r, c.shapes)
}

func (c *Coverage) shapes(r rune) bool {
	runes := []rune{r}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(c.font),
		Size:      fixed.I(coverageShapeSize),
		Script:    language.LookupScript(r),
		Language:  language.NewLanguage("en"),
	}

	hb := c.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	c.shaperPool.Put(hb)

	if len(output.Glyphs) == 0 {
		return false
	}
	for _, g := range output.Glyphs {
		if g.GlyphID == 0 {
			return false
		}
	}
	return true
}
