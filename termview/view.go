package termview

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/textmode"
)

// View runs an interactive session on a Screen: it paints the grid, echoes
// typed runes at a cursor, and exits on Esc or Ctrl-C.
type View struct {
	screen Screen
	grid   *textmode.Grid
	pen    textmode.Cell
	frame  func(*textmode.Grid) error
	filter func(rune) bool

	column int
	row    int
}

// New creates a View drawing g on s. Typed text uses the colours of
// textmode.DefaultCell.
func New(s Screen, g *textmode.Grid) *View {
	return &View{
		screen: s,
		grid:   g,
		pen:    textmode.DefaultCell(),
	}
}

// SetPen sets the colours used for typed text.
func (v *View) SetPen(foreground, background textmode.Colour) {
	v.pen.Foreground = foreground
	v.pen.Background = background
}

// Cursor returns the cursor position.
func (v *View) Cursor() (column, row int) {
	return v.column, v.row
}

// SetCursor moves the cursor.
func (v *View) SetCursor(column, row int) error {
	if column < 0 || column >= textmode.Columns {
		return &textmode.BoundsError{Axis: "column", Value: column, Limit: textmode.Columns}
	}
	if row < 0 || row >= textmode.Lines {
		return &textmode.BoundsError{Axis: "row", Value: row, Limit: textmode.Lines}
	}
	v.column, v.row = column, row
	return nil
}

// SetFilter registers the check typed runes must pass before they are
// written to the grid; runes it rejects are stored as Replacement. Pass the
// rasterizer's coverage test (for example text.Chain.HasGlyph) so the grid
// never holds a rune the frame hook cannot render.
func (v *View) SetFilter(fn func(rune) bool) {
	v.filter = fn
}

// OnFrame registers fn to be called with the grid on every redraw, before
// the terminal is updated. A non-nil error ends Run.
func (v *View) OnFrame(fn func(*textmode.Grid) error) {
	v.frame = fn
}

// Redraw paints the grid and the cursor and shows the result.
func (v *View) Redraw() error {
	if v.frame != nil {
		if err := v.frame(v.grid); err != nil {
			return fmt.Errorf("termview: frame: %w", err)
		}
	}
	Paint(v.screen, v.grid)
	v.screen.ShowCursor(v.column, v.row)
	v.screen.Show()
	return nil
}

// Run initializes the screen and processes events until Esc, Ctrl-C,
// context cancellation, or the screen stops delivering events.
func (v *View) Run(ctx context.Context) error {
	if err := v.screen.Init(); err != nil {
		return fmt.Errorf("termview: init screen: %w", err)
	}
	var once sync.Once
	fini := func() { once.Do(v.screen.Fini) }
	defer fini()

	// Fini makes a blocked PollEvent return nil.
	stop := context.AfterFunc(ctx, fini)
	defer stop()

	v.screen.SetStyle(Style(textmode.DefaultCell()))
	if err := v.Redraw(); err != nil {
		return err
	}

	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return ctx.Err()
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return nil
			}
		default:
			continue
		}
		if err := v.Redraw(); err != nil {
			return err
		}
	}
}

// handleKey applies a key press and reports whether the session should end.
func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		v.newline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.backspace()
	case tcell.KeyLeft:
		v.column = max(v.column-1, 0)
	case tcell.KeyRight:
		v.column = min(v.column+1, textmode.Columns-1)
	case tcell.KeyUp:
		v.row = max(v.row-1, 0)
	case tcell.KeyDown:
		v.row = min(v.row+1, textmode.Lines-1)
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return true
		}
		v.put(ev.Rune())
	}
	return false
}

func (v *View) put(r rune) {
	if v.filter != nil && !v.filter(r) {
		r = Replacement
	}
	_ = v.grid.Set(v.column, v.row, r, v.pen.Foreground, v.pen.Background)
	v.column++
	if v.column == textmode.Columns {
		v.newline()
	}
}

func (v *View) newline() {
	v.column = 0
	if v.row < textmode.Lines-1 {
		v.row++
	}
}

func (v *View) backspace() {
	switch {
	case v.column > 0:
		v.column--
	case v.row > 0:
		v.row--
		v.column = textmode.Columns - 1
	default:
		return
	}
	_ = v.grid.Set(v.column, v.row, ' ', v.pen.Foreground, v.pen.Background)
}
