package text

import (
	"golang.org/x/image/font"

	"github.com/gogpu/textmode"
)

// Default face settings. At 22px, Go Mono advances 13.2px and spans 27px
// from ascent to descent, which fits the 14x28 reference cell.
const (
	DefaultSize = 22
	DefaultDPI  = 72
)

// FaceOption configures face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	size       float64
	dpi        float64
	hinting    font.Hinting
	cellWidth  int
	cellHeight int
}

func defaultFaceConfig() faceConfig {
	return faceConfig{
		size:       DefaultSize,
		dpi:        DefaultDPI,
		hinting:    font.HintingFull,
		cellWidth:  textmode.CellWidth,
		cellHeight: textmode.CellHeight,
	}
}

// WithSize sets the font size in points. Ignored by NewBasic.
func WithSize(size float64) FaceOption {
	return func(c *faceConfig) {
		if size > 0 {
			c.size = size
		}
	}
}

// WithDPI sets the resolution used to convert points to pixels.
// Ignored by NewBasic.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithHinting sets the outline hinting mode. Ignored by NewBasic.
func WithHinting(h font.Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// WithCellSize sets the cell the glyphs are placed in. It must match the
// renderer's geometry.
func WithCellSize(width, height int) FaceOption {
	return func(c *faceConfig) {
		if width > 0 && height > 0 {
			c.cellWidth = width
			c.cellHeight = height
		}
	}
}
