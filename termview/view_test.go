package termview

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/textmode"
	"github.com/gogpu/textmode/text"
)

func TestRunTypesAndQuits(t *testing.T) {
	s := &stubScreen{events: []tcell.Event{
		typed('o'),
		typed('k'),
		key(tcell.KeyEnter),
		typed('!'),
		key(tcell.KeyEsc),
		typed('x'), // never reached
	}}
	g := textmode.NewGrid()
	v := New(s, g)
	v.SetPen(textmode.Yellow, textmode.Black)

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !s.initCalled || s.finiCount != 1 {
		t.Errorf("init = %v, fini count = %d", s.initCalled, s.finiCount)
	}

	want := map[[2]int]rune{{0, 0}: 'o', {1, 0}: 'k', {0, 1}: '!'}
	for pos, r := range want {
		c, err := g.Get(pos[0], pos[1])
		if err != nil {
			t.Fatal(err)
		}
		if c.Content != r || c.Foreground != textmode.Yellow || c.Background != textmode.Black {
			t.Errorf("grid %v = %+v, want %q yellow on black", pos, c, r)
		}
	}
	if c, _ := g.Get(1, 1); c.Content != ' ' {
		t.Errorf("grid (1, 1) = %q, 'x' after Esc was applied", c.Content)
	}
	if col, row := v.Cursor(); col != 1 || row != 1 {
		t.Errorf("cursor = (%d, %d), want (1, 1)", col, row)
	}
	if s.cursorX != 1 || s.cursorY != 1 {
		t.Errorf("screen cursor = (%d, %d), want (1, 1)", s.cursorX, s.cursorY)
	}
	if s.at(0, 1).ch != '!' {
		t.Errorf("screen (0, 1) = %q, want '!'", s.at(0, 1).ch)
	}
	// Initial paint plus one per handled key.
	if s.showCount != 5 {
		t.Errorf("Show called %d times, want 5", s.showCount)
	}
}

func TestRunCtrlC(t *testing.T) {
	s := &stubScreen{events: []tcell.Event{key(tcell.KeyCtrlC)}}
	if err := New(s, textmode.NewGrid()).Run(context.Background()); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func TestRunResize(t *testing.T) {
	s := &stubScreen{events: []tcell.Event{tcell.NewEventResize(40, 10), key(tcell.KeyEsc)}}
	if err := New(s, textmode.NewGrid()).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.syncCount != 1 {
		t.Errorf("Sync called %d times, want 1", s.syncCount)
	}
}

func TestRunInitError(t *testing.T) {
	s := &stubScreen{initErr: errors.New("no tty")}
	err := New(s, textmode.NewGrid()).Run(context.Background())
	if err == nil {
		t.Fatal("Run() succeeded without a terminal")
	}
	if s.finiCount != 0 {
		t.Error("Fini called after failed Init")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// No events: PollEvent returns nil as a finalized screen would.
	s := &stubScreen{}
	if err := New(s, textmode.NewGrid()).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if s.finiCount != 1 {
		t.Errorf("Fini called %d times, want 1", s.finiCount)
	}
}

func TestCursorMovement(t *testing.T) {
	v := New(&stubScreen{}, textmode.NewGrid())

	tests := []struct {
		name    string
		start   [2]int
		key     tcell.Key
		wantCol int
		wantRow int
	}{
		{"left at edge", [2]int{0, 0}, tcell.KeyLeft, 0, 0},
		{"left", [2]int{5, 0}, tcell.KeyLeft, 4, 0},
		{"right at edge", [2]int{textmode.Columns - 1, 0}, tcell.KeyRight, textmode.Columns - 1, 0},
		{"up at edge", [2]int{3, 0}, tcell.KeyUp, 3, 0},
		{"down", [2]int{3, 0}, tcell.KeyDown, 3, 1},
		{"down at edge", [2]int{3, textmode.Lines - 1}, tcell.KeyDown, 3, textmode.Lines - 1},
		{"enter on last line", [2]int{7, textmode.Lines - 1}, tcell.KeyEnter, 0, textmode.Lines - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.SetCursor(tt.start[0], tt.start[1]); err != nil {
				t.Fatal(err)
			}
			v.handleKey(key(tt.key))
			if col, row := v.Cursor(); col != tt.wantCol || row != tt.wantRow {
				t.Errorf("cursor = (%d, %d), want (%d, %d)", col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestTypingWrapsAndBackspace(t *testing.T) {
	g := textmode.NewGrid()
	v := New(&stubScreen{}, g)
	if err := v.SetCursor(textmode.Columns-1, 0); err != nil {
		t.Fatal(err)
	}

	v.handleKey(typed('a'))
	if col, row := v.Cursor(); col != 0 || row != 1 {
		t.Fatalf("cursor after last column = (%d, %d), want (0, 1)", col, row)
	}

	v.handleKey(key(tcell.KeyBackspace2))
	if col, row := v.Cursor(); col != textmode.Columns-1 || row != 0 {
		t.Fatalf("cursor after backspace = (%d, %d)", col, row)
	}
	if c, _ := g.Get(textmode.Columns-1, 0); c.Content != ' ' {
		t.Errorf("backspace left %q", c.Content)
	}

	if err := v.SetCursor(0, 0); err != nil {
		t.Fatal(err)
	}
	v.handleKey(key(tcell.KeyBackspace))
	if col, row := v.Cursor(); col != 0 || row != 0 {
		t.Errorf("backspace at origin moved cursor to (%d, %d)", col, row)
	}
}

func TestSetCursorBounds(t *testing.T) {
	v := New(&stubScreen{}, textmode.NewGrid())
	for _, pos := range [][2]int{{-1, 0}, {textmode.Columns, 0}, {0, -1}, {0, textmode.Lines}} {
		if err := v.SetCursor(pos[0], pos[1]); !errors.Is(err, textmode.ErrOutOfBounds) {
			t.Errorf("SetCursor%v error = %v, want ErrOutOfBounds", pos, err)
		}
	}
}

func TestRunFrameHook(t *testing.T) {
	s := &stubScreen{events: []tcell.Event{typed('a'), typed('b'), key(tcell.KeyEsc)}}
	v := New(s, textmode.NewGrid())

	var seen []rune
	v.OnFrame(func(g *textmode.Grid) error {
		c, err := g.Get(0, 0)
		seen = append(seen, c.Content)
		return err
	})
	if err := v.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if string(seen) != " aa" {
		t.Errorf("frames saw %q at (0, 0), want %q", string(seen), " aa")
	}
}

func TestRunFrameHookError(t *testing.T) {
	errFrame := errors.New("frame failed")
	s := &stubScreen{events: []tcell.Event{typed('a'), key(tcell.KeyEsc)}}
	v := New(s, textmode.NewGrid())

	calls := 0
	v.OnFrame(func(*textmode.Grid) error {
		calls++
		if calls == 2 {
			return errFrame
		}
		return nil
	})
	if err := v.Run(context.Background()); !errors.Is(err, errFrame) {
		t.Errorf("Run() error = %v, want %v", err, errFrame)
	}
	if s.finiCount != 1 {
		t.Errorf("Fini called %d times, want 1", s.finiCount)
	}
}

func TestFilterReplacesUncoveredRunes(t *testing.T) {
	s := &stubScreen{events: []tcell.Event{typed('a'), typed('あ'), typed('b')}}
	g := textmode.NewGrid()
	v := New(s, g)
	v.SetFilter(func(r rune) bool { return r < 0x80 })
	if err := v.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	for col, want := range []rune{'a', Replacement, 'b'} {
		if c, _ := g.Get(col, 0); c.Content != want {
			t.Errorf("grid (%d, 0) = %q, want %q", col, c.Content, want)
		}
	}
}

func TestUncoveredRuneKeepsSessionAlive(t *testing.T) {
	faces, err := text.Open(text.DefaultFaces)
	if err != nil {
		t.Fatal(err)
	}
	d, err := textmode.NewDisplay(faces)
	if err != nil {
		t.Fatal(err)
	}
	fb := d.NewFramebuffer()

	s := &stubScreen{events: []tcell.Event{typed('a'), typed('あ'), typed('b'), key(tcell.KeyEsc)}}
	v := New(s, d.Memory())
	v.SetFilter(faces.HasGlyph)
	v.OnFrame(func(*textmode.Grid) error { return d.Draw(fb) })

	if err := v.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for col, want := range []rune{'a', Replacement, 'b'} {
		if c, _ := d.Memory().Get(col, 0); c.Content != want {
			t.Errorf("grid (%d, 0) = %q, want %q", col, c.Content, want)
		}
	}
}
