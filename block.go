package textmode

// Block is a composed cell: width x height RGBA8 pixels, row-major.
// Blocks are shared through the glyph cache and must not be modified.
type Block struct {
	width  int
	height int
	pix    []uint8
}

// Width returns the block width in pixels.
func (b *Block) Width() int { return b.width }

// Height returns the block height in pixels.
func (b *Block) Height() int { return b.height }

// Pix returns the raw pixel bytes. Callers must not modify them.
func (b *Block) Pix() []uint8 { return b.pix }

// Pixel returns the RGBA quad at (x, y) within the block, or zero if out of
// bounds.
func (b *Block) Pixel(x, y int) [4]uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return [4]uint8{}
	}
	i := (y*b.width + x) * 4
	return [4]uint8{b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]}
}

// composeBlock paints cell into a width x height block: the background fills
// every pixel opaquely, then each covered glyph pixel takes the foreground
// RGB with the coverage as its alpha. Coverage is not blended with the
// background here; the framebuffer merge decides what to keep.
func composeBlock(cell Cell, g Glyph, width, height int) *Block {
	pix := make([]uint8, width*height*4)

	bg := cell.Background.RGBA()
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:i+4], bg[:])
	}

	fg := cell.Foreground.RGBA()
	for gy := 0; gy < g.Height; gy++ {
		y := g.Top + gy
		if y < 0 || y >= height {
			continue
		}
		row := g.Coverage[gy*g.Width : (gy+1)*g.Width]
		for gx, c := range row {
			if c == 0 {
				continue
			}
			x := g.Left + gx
			if x < 0 || x >= width {
				continue
			}
			i := (y*width + x) * 4
			pix[i+0] = fg[0]
			pix[i+1] = fg[1]
			pix[i+2] = fg[2]
			pix[i+3] = c
		}
	}

	return &Block{width: width, height: height, pix: pix}
}
