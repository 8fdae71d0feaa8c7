package textmode

// Option configures a Renderer or Display during creation.
//
// Example:
//
//	// Reference geometry, default cache
//	r, err := textmode.NewRenderer()
//
//	// Smaller cache, shared between two renderers
//	gc := textmode.NewGlyphCache(textmode.CellWidth, textmode.CellHeight, 512)
//	r, err := textmode.NewRenderer(textmode.WithGlyphCache(gc))
type Option func(*options)

// options holds optional configuration.
type options struct {
	geometry      Geometry
	cache         *GlyphCache
	cacheCapacity int
}

// defaultOptions returns the reference configuration.
func defaultOptions() options {
	return options{
		geometry:      DefaultGeometry(),
		cache:         nil, // Created from geometry if nil
		cacheCapacity: DefaultGlyphCacheCapacity,
	}
}

// WithGeometry sets the cell size, offsets and framebuffer size.
// The geometry is validated when the renderer is created.
func WithGeometry(g Geometry) Option {
	return func(o *options) {
		o.geometry = g
	}
}

// WithGlyphCache injects an existing cache. Its cell size must match the
// geometry.
func WithGlyphCache(c *GlyphCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithCacheCapacity bounds the glyph cache created for the renderer.
// Ignored when WithGlyphCache is also given.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}
