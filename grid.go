package textmode

// Grid dimensions in cells.
const (
	Columns = 90
	Lines   = 25
)

// Grid is the video memory: a fixed row-major array of Columns x Lines
// cells. Position (column, row) is stored at row*Columns + column.
//
// Use NewGrid; the zero Grid holds zero cells, not blank ones.
// Grid is not safe for concurrent use.
type Grid struct {
	cells [Columns * Lines]Cell
}

// NewGrid returns a grid with every cell set to DefaultCell.
func NewGrid() *Grid {
	g := &Grid{}
	g.Clear()
	return g
}

// Set overwrites the cell at (column, row).
func (g *Grid) Set(column, row int, content rune, foreground, background Colour) error {
	i, err := index(column, row)
	if err != nil {
		return err
	}
	g.cells[i] = Cell{
		Content:    content,
		Foreground: foreground,
		Background: background,
	}
	return nil
}

// Get returns a copy of the cell at (column, row).
func (g *Grid) Get(column, row int) (Cell, error) {
	i, err := index(column, row)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

// Clear resets every cell to DefaultCell.
func (g *Grid) Clear() {
	g.Fill(DefaultCell().Content, DefaultCell().Foreground, DefaultCell().Background)
}

// Fill sets every cell to the same content and colours.
func (g *Grid) Fill(content rune, foreground, background Colour) {
	c := Cell{Content: content, Foreground: foreground, Background: background}
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Print writes s one rune per cell starting at (column, row), stopping at
// the end of the row. It returns the number of cells written.
func (g *Grid) Print(column, row int, s string, foreground, background Colour) (int, error) {
	i, err := index(column, row)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range s {
		if column+n >= Columns {
			break
		}
		g.cells[i+n] = Cell{Content: r, Foreground: foreground, Background: background}
		n++
	}
	return n, nil
}

// index validates (column, row) and returns the backing array position.
func index(column, row int) (int, error) {
	if column < 0 || column >= Columns {
		return 0, &BoundsError{Axis: "column", Value: column, Limit: Columns}
	}
	if row < 0 || row >= Lines {
		return 0, &BoundsError{Axis: "row", Value: row, Limit: Lines}
	}
	return row*Columns + column, nil
}
