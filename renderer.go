package textmode

import (
	"fmt"
)

// Renderer converts a Grid into framebuffer pixels.
//
// The only state carried between frames is the glyph cache, so rendering an
// unchanged grid into the same framebuffer produces identical bytes.
// Renderer is not safe for concurrent render passes.
type Renderer struct {
	geometry Geometry
	cache    *GlyphCache
}

// NewRenderer creates a renderer. It returns ErrGeometry if the grid does not
// fit the framebuffer, so a bad configuration is rejected before the first
// frame.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.geometry.Validate(); err != nil {
		return nil, err
	}

	c := o.cache
	if c == nil {
		c = NewGlyphCache(o.geometry.CellWidth, o.geometry.CellHeight, o.cacheCapacity)
	} else if w, h := c.CellSize(); w != o.geometry.CellWidth || h != o.geometry.CellHeight {
		return nil, fmt.Errorf("%w: glyph cache holds %dx%d blocks, geometry uses %dx%d cells",
			ErrGeometry, w, h, o.geometry.CellWidth, o.geometry.CellHeight)
	}

	return &Renderer{geometry: o.geometry, cache: c}, nil
}

// Geometry returns the validated geometry.
func (r *Renderer) Geometry() Geometry {
	return r.geometry
}

// Cache returns the glyph cache.
func (r *Renderer) Cache() *GlyphCache {
	return r.cache
}

// Render draws every cell of g into fb.
//
// If a glyph cannot be produced the pass stops and the error is returned;
// cells drawn before the failure stay in fb. Hosts must not present a frame
// whose Render failed.
func (r *Renderer) Render(g *Grid, fb *Framebuffer, rast Rasterizer) error {
	if err := r.check(g, fb, rast); err != nil {
		return err
	}

	for row := 0; row < Lines; row++ {
		for column := 0; column < Columns; column++ {
			if err := r.renderCell(g, fb, rast, column, row); err != nil {
				return err
			}
		}
	}

	if debugEnabled() {
		s := r.cache.Stats()
		Logger().Debug("textmode: frame rendered",
			"cells", Columns*Lines,
			"cache_len", s.Len,
			"hits", s.Hits,
			"misses", s.Misses,
			"evictions", s.Evictions)
	}
	return nil
}

// RenderCell redraws the single cell at (column, row). Hosts that track
// which cells changed between frames use it instead of a full pass.
func (r *Renderer) RenderCell(g *Grid, fb *Framebuffer, rast Rasterizer, column, row int) error {
	if err := r.check(g, fb, rast); err != nil {
		return err
	}
	return r.renderCell(g, fb, rast, column, row)
}

func (r *Renderer) check(g *Grid, fb *Framebuffer, rast Rasterizer) error {
	if g == nil {
		return ErrNilGrid
	}
	if rast == nil {
		return ErrNilRasterizer
	}
	if fb == nil || fb.Width() < r.geometry.Width || fb.Height() < r.geometry.Height {
		w, h := 0, 0
		if fb != nil {
			w, h = fb.Width(), fb.Height()
		}
		return fmt.Errorf("%w: have %dx%d, need at least %dx%d",
			ErrFramebufferSize, w, h, r.geometry.Width, r.geometry.Height)
	}
	return nil
}

func (r *Renderer) renderCell(g *Grid, fb *Framebuffer, rast Rasterizer, column, row int) error {
	cell, err := g.Get(column, row)
	if err != nil {
		return err
	}
	block, err := r.cache.FetchOrRasterize(cell, rast)
	if err != nil {
		return fmt.Errorf("textmode: render cell (%d, %d): %w", column, row, err)
	}
	x, y := r.geometry.CellOrigin(column, row)
	blit(fb, x, y, block)
	return nil
}

// blit copies b into fb with its top-left corner at (x, y). A source pixel
// with alpha 0 leaves the destination untouched; any other alpha replaces
// all four destination channels.
//
// The caller guarantees the destination rectangle lies inside fb.
func blit(fb *Framebuffer, x, y int, b *Block) {
	stride := fb.width * 4
	span := b.width * 4
	for row := 0; row < b.height; row++ {
		d := (y+row)*stride + x*4
		dst := fb.data[d : d+span]
		src := b.pix[row*span : (row+1)*span]
		for i := 0; i < span; i += 4 {
			if src[i+3] == 0 {
				continue
			}
			dst[i+0] = src[i+0]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+2]
			dst[i+3] = src[i+3]
		}
	}
}
