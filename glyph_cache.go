package textmode

import (
	"github.com/gogpu/textmode/internal/cache"
)

// DefaultGlyphCacheCapacity bounds the number of composed cells kept between
// frames. 4096 blocks of 14x28 pixels is about 6.4 MiB, far more than the
// distinct cells a 90x25 screen shows at once.
const DefaultGlyphCacheCapacity = 4096

// GlyphCache maps a Cell value to its composed Block.
//
// A block is a pure function of the cell, so entries never go stale. The
// cache is bounded; an evicted cell is recomposed on its next use and comes
// out identical.
type GlyphCache struct {
	cellWidth  int
	cellHeight int
	blocks     *cache.LRU[Cell, *Block]
}

// GlyphCacheStats holds cache statistics.
type GlyphCacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewGlyphCache creates a cache of cellWidth x cellHeight blocks holding at
// most capacity entries. If capacity <= 0, DefaultGlyphCacheCapacity is used.
func NewGlyphCache(cellWidth, cellHeight, capacity int) *GlyphCache {
	if capacity <= 0 {
		capacity = DefaultGlyphCacheCapacity
	}
	return &GlyphCache{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		blocks:     cache.New[Cell, *Block](capacity),
	}
}

// FetchOrRasterize returns the block for cell. On a miss it rasterizes
// cell.Content with r, composes and stores the block. Failures are returned
// as *GlyphError and are not cached.
func (c *GlyphCache) FetchOrRasterize(cell Cell, r Rasterizer) (*Block, error) {
	return c.blocks.GetOrCreate(cell, func() (*Block, error) {
		if r == nil {
			return nil, ErrNilRasterizer
		}
		g, err := r.Rasterize(cell.Content)
		if err != nil {
			return nil, &GlyphError{Rune: cell.Content, Err: err}
		}
		if err := g.Validate(); err != nil {
			return nil, &GlyphError{Rune: cell.Content, Err: err}
		}
		if debugEnabled() {
			Logger().Debug("textmode: glyph composed",
				"rune", string(cell.Content),
				"fg", cell.Foreground.String(),
				"bg", cell.Background.String(),
				"glyph_w", g.Width,
				"glyph_h", g.Height)
		}
		return composeBlock(cell, g, c.cellWidth, c.cellHeight), nil
	})
}

// CellSize returns the block dimensions this cache produces.
func (c *GlyphCache) CellSize() (width, height int) {
	return c.cellWidth, c.cellHeight
}

// Len returns the number of cached blocks.
func (c *GlyphCache) Len() int {
	return c.blocks.Len()
}

// Capacity returns the maximum number of cached blocks.
func (c *GlyphCache) Capacity() int {
	return c.blocks.Capacity()
}

// Stats returns cache statistics.
func (c *GlyphCache) Stats() GlyphCacheStats {
	s := c.blocks.Stats()
	return GlyphCacheStats{
		Len:       s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// Reset drops every cached block and zeroes the statistics. Hosts use it
// after swapping the rasterizer (a new font), since blocks are keyed by cell
// only.
func (c *GlyphCache) Reset() {
	c.blocks.Clear()
	c.blocks.ResetStats()
}
