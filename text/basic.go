package text

import (
	"golang.org/x/image/font/basicfont"
)

// NewBasic creates a Face from the 7x13 bitmap font bundled with
// golang.org/x/image. The glyphs are enlarged by the largest integer factor
// that fits the cell (2 for the 14x28 reference cell). Size, DPI and
// hinting options are ignored.
func NewBasic(opts ...FaceOption) *Face {
	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	bf := basicfont.Face7x13
	scale := min(cfg.cellWidth/bf.Advance, cfg.cellHeight/(bf.Ascent+bf.Descent))

	covers := func(r rune) bool {
		for _, rng := range bf.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
	return newFace(bf, "basicfont 7x13", covers, cfg, scale)
}
