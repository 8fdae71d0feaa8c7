package textmode

import "fmt"

// Reference geometry. 1280 is not evenly divisible by 90 and 720 is not
// evenly divisible by 25, so the grid is padded by fixed offsets.
const (
	CellWidth     = 14
	CellHeight    = 28
	ColumnOffset  = 10
	RowOffset     = 10
	LogicalWidth  = 1280
	LogicalHeight = 720
)

// The reference grid must fit the reference framebuffer. A negative
// difference does not convert to uint and fails compilation.
const (
	_ uint = LogicalWidth - (ColumnOffset + Columns*CellWidth)
	_ uint = LogicalHeight - (RowOffset + Lines*CellHeight)
)

// Geometry places the grid inside the framebuffer.
type Geometry struct {
	// CellWidth and CellHeight are the pixel size of one cell.
	CellWidth  int
	CellHeight int

	// ColumnOffset and RowOffset pad the grid from the framebuffer's
	// top-left corner.
	ColumnOffset int
	RowOffset    int

	// Width and Height are the logical framebuffer size.
	Width  int
	Height int
}

// DefaultGeometry returns the reference geometry: 14x28 cells offset by
// (10, 10) in a 1280x720 framebuffer.
func DefaultGeometry() Geometry {
	return Geometry{
		CellWidth:    CellWidth,
		CellHeight:   CellHeight,
		ColumnOffset: ColumnOffset,
		RowOffset:    RowOffset,
		Width:        LogicalWidth,
		Height:       LogicalHeight,
	}
}

// Validate checks that every cell, including the bottom-right one, lands
// entirely inside the framebuffer. It is meant to run once before the
// render loop starts.
func (g Geometry) Validate() error {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %dx%d", ErrGeometry, g.CellWidth, g.CellHeight)
	}
	if g.ColumnOffset < 0 || g.RowOffset < 0 {
		return fmt.Errorf("%w: negative offset (%d, %d)", ErrGeometry, g.ColumnOffset, g.RowOffset)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: framebuffer size %dx%d", ErrGeometry, g.Width, g.Height)
	}

	x, y := g.CellOrigin(Columns-1, Lines-1)
	if right := x + g.CellWidth; right > g.Width {
		return fmt.Errorf("%w: grid spans %d pixels horizontally, framebuffer is %d wide",
			ErrGeometry, right, g.Width)
	}
	if bottom := y + g.CellHeight; bottom > g.Height {
		return fmt.Errorf("%w: grid spans %d pixels vertically, framebuffer is %d high",
			ErrGeometry, bottom, g.Height)
	}
	return nil
}

// CellOrigin returns the framebuffer pixel of the top-left corner of the
// cell at (column, row). It does not validate the coordinate.
func (g Geometry) CellOrigin(column, row int) (x, y int) {
	return column*g.CellWidth + g.ColumnOffset, row*g.CellHeight + g.RowOffset
}

// Extent returns the pixel size the grid occupies including offsets.
func (g Geometry) Extent() (width, height int) {
	return g.ColumnOffset + Columns*g.CellWidth, g.RowOffset + Lines*g.CellHeight
}
