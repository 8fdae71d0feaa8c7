package textmode

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"
)

// Framebuffer is a tightly packed RGBA8 pixel surface, row-major, 4 bytes
// per pixel, alpha not premultiplied.
//
// A Framebuffer may wrap memory owned by the host (a window surface, a
// texture staging buffer); the renderer writes into it and never
// reallocates it.
type Framebuffer struct {
	width  int
	height int
	data   []uint8
}

// NewFramebuffer allocates a zeroed (transparent black) framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// WrapFramebuffer uses data as the pixel storage of a width x height
// framebuffer. len(data) must be exactly width*height*4.
func WrapFramebuffer(data []uint8, width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrFramebufferSize, width, height)
	}
	if want := width * height * 4; len(data) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrFramebufferSize, width, height, want, len(data))
	}
	return &Framebuffer{width: width, height: height, data: data}, nil
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Data returns the raw pixel bytes.
func (f *Framebuffer) Data() []uint8 {
	return f.data
}

// Format reports the GPU texture format matching the pixel layout, for
// hosts that upload the framebuffer as a texture.
func (f *Framebuffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixel returns the RGBA quad at (x, y), or zero if out of bounds.
func (f *Framebuffer) Pixel(x, y int) [4]uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return [4]uint8{}
	}
	i := (y*f.width + x) * 4
	return [4]uint8{f.data[i], f.data[i+1], f.data[i+2], f.data[i+3]}
}

// Clear fills the entire framebuffer with a palette colour.
func (f *Framebuffer) Clear(c Colour) {
	q := c.RGBA()
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = q[0]
		f.data[i+1] = q[1]
		f.data[i+2] = q[2]
		f.data[i+3] = q[3]
	}
}

// ToImage copies the framebuffer into an image.NRGBA.
func (f *Framebuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// SavePNG saves the framebuffer to a PNG file.
func (f *Framebuffer) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(file, f.ToImage()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// At implements the image.Image interface.
func (f *Framebuffer) At(x, y int) color.Color {
	q := f.Pixel(x, y)
	return color.NRGBA{R: q[0], G: q[1], B: q[2], A: q[3]}
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
