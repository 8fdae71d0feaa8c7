package textmode

import "errors"

// squareRasterizer draws a fully covered square for every rune except
// space and counts how often each rune is rasterized.
type squareRasterizer struct {
	size      int
	left, top int
	coverage  uint8
	fail      map[rune]error
	calls     map[rune]int
}

func newSquareRasterizer() *squareRasterizer {
	return &squareRasterizer{
		size:     4,
		left:     5,
		top:      10,
		coverage: 255,
		fail:     make(map[rune]error),
		calls:    make(map[rune]int),
	}
}

func (s *squareRasterizer) Rasterize(r rune) (Glyph, error) {
	s.calls[r]++
	if err, ok := s.fail[r]; ok {
		return Glyph{}, err
	}
	if r == ' ' {
		return Glyph{}, nil
	}
	cov := make([]uint8, s.size*s.size)
	for i := range cov {
		cov[i] = s.coverage
	}
	return Glyph{Width: s.size, Height: s.size, Coverage: cov, Left: s.left, Top: s.top}, nil
}

func (s *squareRasterizer) total() int {
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

var errNoGlyph = errors.New("no glyph")
