package text

import "sync"

// runeSet memoizes a per-rune yes/no answer using 2 bits per rune:
// (checked, value). Blocks of 256 runes are allocated on first use.
//
// runeSet is safe for concurrent use.
type runeSet struct {
	mu     sync.RWMutex
	blocks map[uint32]*runeBlock // keyed by rune >> 8
}

// runeBlock holds 256 runes x 2 bits.
type runeBlock struct {
	bits [8]uint64
}

func newRuneSet() *runeSet {
	return &runeSet{blocks: make(map[uint32]*runeBlock)}
}

func runeBit(r rune) (block uint32, word uint32, shift uint32) {
	bit := (uint32(r) & 0xFF) * 2
	return uint32(r) >> 8, bit / 64, bit % 64
}

// get returns (value, checked).
func (s *runeSet) get(r rune) (value, checked bool) {
	bi, wi, shift := runeBit(r)

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.blocks[bi]
	if !ok {
		return false, false
	}
	w := b.bits[wi] >> shift
	return w&2 != 0, w&1 != 0
}

// set records value for r and marks it checked.
func (s *runeSet) set(r rune, value bool) {
	bi, wi, shift := runeBit(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blocks[bi]
	if !ok {
		b = &runeBlock{}
		s.blocks[bi] = b
	}
	b.bits[wi] |= 1 << shift
	if value {
		b.bits[wi] |= 2 << shift
	} else {
		b.bits[wi] &^= 2 << shift
	}
}

// lookup returns the memoized answer for r, computing it with fn on first
// use.
func (s *runeSet) lookup(r rune, fn func(rune) bool) bool {
	if v, ok := s.get(r); ok {
		return v
	}
	v := fn(r)
	s.set(r, v)
	return v
}
