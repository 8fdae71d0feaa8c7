package textmode

// Cell is one grid position: a character and its colour pair.
//
// Cell is a comparable value; two cells with equal fields are the same key
// in the glyph cache.
type Cell struct {
	Content    rune
	Foreground Colour
	Background Colour
}

// DefaultCell returns a blank cell: a space, white on blue.
func DefaultCell() Cell {
	return Cell{
		Content:    ' ',
		Foreground: White,
		Background: Blue,
	}
}
