// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpupresent

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/textmode"
)

// Common errors returned by Presenter operations.
var (
	// ErrPresenterClosed is returned when operations are attempted on a closed presenter.
	ErrPresenterClosed = errors.New("gpupresent: presenter is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpupresent: nil DeviceProvider")

	// ErrNilFramebuffer is returned when a nil framebuffer is passed.
	ErrNilFramebuffer = errors.New("gpupresent: nil framebuffer")

	// ErrInvalidDrawContext is returned when the uploaded texture cannot be
	// drawn by the draw context.
	ErrInvalidDrawContext = errors.New("gpupresent: texture is not a gpucontext.Texture")

	// ErrFrameFailed is returned when the last Draw failed and there is no
	// earlier frame to show instead.
	ErrFrameFailed = errors.New("gpupresent: last frame failed to render")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("gpupresent: draw context has no TextureCreator")
)

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads a textmode framebuffer to a GPU texture and draws it.
type Presenter struct {
	provider gpucontext.DeviceProvider
	fb       *textmode.Framebuffer
	texture  any // *pendingTexture until the first PresentTo, then gpucontext.Texture
	dirty    bool
	failed   bool // last Draw failed; fb holds a partial frame
	closed   bool
}

// New creates a Presenter for fb. The provider should come from
// gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider, fb *textmode.Framebuffer) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if fb == nil {
		return nil, ErrNilFramebuffer
	}

	if f := provider.SurfaceFormat(); f != gputypes.TextureFormatUndefined && f != fb.Format() {
		textmode.Logger().Debug("gpupresent: surface format differs from framebuffer",
			"surface", f, "framebuffer", fb.Format())
	}

	return &Presenter{
		provider: provider,
		fb:       fb,
		dirty:    true, // first Flush creates the texture
	}, nil
}

// Framebuffer returns the framebuffer being presented.
func (p *Presenter) Framebuffer() *textmode.Framebuffer {
	return p.fb
}

// Provider returns the DeviceProvider, or nil if the presenter is closed.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// MarkDirty flags the framebuffer for upload on the next Flush.
func (p *Presenter) MarkDirty() {
	p.dirty = true
}

// IsDirty reports whether the framebuffer has changes not yet uploaded.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// Draw renders d into the framebuffer and marks it dirty.
//
// If rendering fails the framebuffer is never uploaded: until a later Draw
// succeeds, PresentTo keeps showing the last good texture, or returns
// ErrFrameFailed if there is none.
func (p *Presenter) Draw(d *textmode.Display) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if err := d.Draw(p.fb); err != nil {
		p.failed = true
		return fmt.Errorf("gpupresent: draw: %w", err)
	}
	p.failed = false
	p.dirty = true
	return nil
}

// Failed reports whether the last Draw failed.
func (p *Presenter) Failed() bool {
	return p.failed
}

// Flush uploads the framebuffer if dirty and returns the texture.
//
// Before the first PresentTo the returned value is a placeholder: the GPU
// texture can only be created once a TextureCreator is available.
func (p *Presenter) Flush() (any, error) {
	if p.closed {
		return nil, ErrPresenterClosed
	}
	if p.failed {
		if _, pending := p.texture.(*pendingTexture); p.texture == nil || pending {
			return nil, ErrFrameFailed
		}
		return p.texture, nil
	}
	if !p.dirty && p.texture != nil {
		return p.texture, nil
	}

	data := p.fb.Data()

	if p.texture == nil {
		p.texture = &pendingTexture{
			width:  p.fb.Width(),
			height: p.fb.Height(),
			data:   data,
		}
		p.dirty = false
		return p.texture, nil
	}

	switch t := p.texture.(type) {
	case *pendingTexture:
		t.data = data
	case gpucontext.TextureUpdater:
		if err := t.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpupresent: texture update failed: %w", err)
		}
	}

	p.dirty = false
	return p.texture, nil
}

// Texture returns the current texture without flushing, or nil.
func (p *Presenter) Texture() any {
	return p.texture
}

// PresentTo draws the framebuffer at (0, 0).
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
func (p *Presenter) PresentTo(dc gpucontext.TextureDrawer) error {
	return p.PresentAt(dc, 0, 0)
}

// PresentAt draws the framebuffer with its top-left corner at (x, y).
func (p *Presenter) PresentAt(dc gpucontext.TextureDrawer, x, y float32) error {
	if p.closed {
		return ErrPresenterClosed
	}

	tex, err := p.Flush()
	if err != nil {
		return err
	}

	if pending, ok := tex.(*pendingTexture); ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("gpupresent: NewTextureFromRGBA failed: %w", err)
		}
		textmode.Logger().Debug("gpupresent: texture created",
			"width", pending.width, "height", pending.height)
		p.texture = realTex
		tex = realTex
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Close destroys the texture. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
	p.provider = nil
	return nil
}

// pendingTexture holds the pixels for a texture that has not been created
// yet.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}
