package textmode

// Display owns the video memory, the renderer and the rasterizer for one
// text-mode screen. Hosts write cells through Memory between frames and call
// Draw once per frame.
type Display struct {
	memory     *Grid
	renderer   *Renderer
	rasterizer Rasterizer
}

// NewDisplay creates a display with a blank grid.
func NewDisplay(r Rasterizer, opts ...Option) (*Display, error) {
	if r == nil {
		return nil, ErrNilRasterizer
	}
	renderer, err := NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Display{
		memory:     NewGrid(),
		renderer:   renderer,
		rasterizer: r,
	}, nil
}

// Memory returns the grid. Do not mutate it while Draw is running.
func (d *Display) Memory() *Grid {
	return d.memory
}

// Renderer returns the display's renderer.
func (d *Display) Renderer() *Renderer {
	return d.renderer
}

// NewFramebuffer allocates a framebuffer of the geometry's logical size.
func (d *Display) NewFramebuffer() *Framebuffer {
	g := d.renderer.Geometry()
	return NewFramebuffer(g.Width, g.Height)
}

// Draw renders the current grid into fb.
func (d *Display) Draw(fb *Framebuffer) error {
	return d.renderer.Render(d.memory, fb, d.rasterizer)
}

// SetRasterizer swaps the rasterizer and drops every cached block, since
// blocks composed with the old font would otherwise be reused.
func (d *Display) SetRasterizer(r Rasterizer) error {
	if r == nil {
		return ErrNilRasterizer
	}
	d.rasterizer = r
	d.renderer.Cache().Reset()
	return nil
}
