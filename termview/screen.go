package termview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/gogpu/textmode"
	"github.com/gogpu/textmode/text"
)

// Screen is the subset of tcell.Screen the view draws on.
type Screen interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	ShowCursor(x, y int)
	Show()
	Sync()
	PollEvent() tcell.Event
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// Replacement is drawn for runes that do not occupy exactly one terminal
// column.
const Replacement = '?'

// Color returns the tcell colour for c.
func Color(c textmode.Colour) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba[0]), int32(rgba[1]), int32(rgba[2]))
}

// Style returns the tcell style for a cell.
func Style(cell textmode.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Color(cell.Foreground)).
		Background(Color(cell.Background))
}

// TerminalRune returns the rune drawn for r. Fullwidth forms are folded;
// runes that would not take exactly one column become Replacement.
func TerminalRune(r rune) rune {
	r = text.Fold(r)
	if runewidth.RuneWidth(r) != 1 {
		return Replacement
	}
	return r
}

// Paint copies g onto s, clipped to the screen size. It does not call Show.
func Paint(s Screen, g *textmode.Grid) {
	w, h := s.Size()
	w = min(w, textmode.Columns)
	h = min(h, textmode.Lines)

	for row := range h {
		for col := range w {
			cell, err := g.Get(col, row)
			if err != nil {
				continue
			}
			s.SetContent(col, row, TerminalRune(cell.Content), nil, Style(cell))
		}
	}
}
