package text

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textmode"
)

// Face rasterizes runes from an x/image font.Face into cell-positioned
// coverage bitmaps. Each glyph is centred horizontally on its advance and
// sits on a baseline chosen so the face's ascent and descent are centred
// vertically in the cell.
//
// Face implements textmode.Rasterizer and is safe for concurrent use.
type Face struct {
	mu     sync.Mutex
	face   font.Face
	name   string
	covers func(rune) bool

	// cellWidth and cellHeight are the configured cell in output pixels.
	cellWidth  int
	cellHeight int

	// scale is the integer factor glyph masks are enlarged by. Glyphs are
	// positioned in a slot of slotWidth x slotHeight unscaled pixels, and
	// padX, padY centre the enlarged slot in the cell.
	scale      int
	slotWidth  int
	slotHeight int
	padX, padY int
	baseline   int
}

// newFace wraps face for a cell of the given size. Masks are enlarged by
// scale with nearest-neighbour sampling.
func newFace(face font.Face, name string, covers func(rune) bool, cfg faceConfig, scale int) *Face {
	if scale < 1 {
		scale = 1
	}
	f := &Face{
		face:       face,
		name:       name,
		covers:     covers,
		cellWidth:  cfg.cellWidth,
		cellHeight: cfg.cellHeight,
		scale:      scale,
		slotWidth:  cfg.cellWidth / scale,
		slotHeight: cfg.cellHeight / scale,
	}
	f.padX = (f.cellWidth - f.slotWidth*scale) / 2
	f.padY = (f.cellHeight - f.slotHeight*scale) / 2

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	f.baseline = ascent + (f.slotHeight-(ascent+descent))/2

	textmode.Logger().Info("text: face ready",
		"name", name,
		"ascent", ascent,
		"descent", descent,
		"scale", scale,
		"cell_width", cfg.cellWidth,
		"cell_height", cfg.cellHeight,
	)
	return f
}

// Name returns the face's family name, or a short description when the
// font carries none.
func (f *Face) Name() string {
	return f.name
}

// CellSize returns the cell the glyphs are positioned in.
func (f *Face) CellSize() (width, height int) {
	return f.cellWidth, f.cellHeight
}

// HasGlyph reports whether the face can draw r. Fullwidth forms are folded
// first, as in Rasterize.
func (f *Face) HasGlyph(r rune) bool {
	r = Fold(r)
	if f.covers != nil {
		return f.covers(r)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.face.GlyphAdvance(r)
	return ok
}

// Rasterize implements textmode.Rasterizer.
func (f *Face) Rasterize(r rune) (textmode.Glyph, error) {
	r = Fold(r)
	if f.covers != nil && !f.covers(r) {
		return textmode.Glyph{}, fmt.Errorf("%w: %q in %s", ErrGlyphNotFound, r, f.name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		return textmode.Glyph{}, fmt.Errorf("%w: %q in %s", ErrGlyphNotFound, r, f.name)
	}
	dot := fixed.Point26_6{
		X: (fixed.I(f.slotWidth) - adv) / 2,
		Y: fixed.I(f.baseline),
	}
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok {
		return textmode.Glyph{}, fmt.Errorf("%w: %q in %s", ErrGlyphNotFound, r, f.name)
	}
	if dr.Empty() {
		return textmode.Glyph{}, nil
	}

	alpha := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			c := color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha)
			alpha.Pix[y*alpha.Stride+x] = c.A
		}
	}

	if f.scale > 1 {
		scaled := image.NewAlpha(image.Rect(0, 0, dr.Dx()*f.scale, dr.Dy()*f.scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), alpha, alpha.Bounds(), draw.Src, nil)
		alpha = scaled
	}

	return textmode.Glyph{
		Width:    alpha.Rect.Dx(),
		Height:   alpha.Rect.Dy(),
		Coverage: alpha.Pix,
		Left:     dr.Min.X*f.scale + f.padX,
		Top:      dr.Min.Y*f.scale + f.padY,
	}, nil
}

// Close releases the underlying font face.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.face.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
