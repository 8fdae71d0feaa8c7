package text

import "golang.org/x/text/width"

// Fold maps fullwidth compatibility forms to their narrow equivalents
// ('Ａ' becomes 'A'). Every other rune is returned unchanged.
func Fold(r rune) rune {
	p := width.LookupRune(r)
	if p.Kind() != width.EastAsianFullwidth {
		return r
	}
	if n := p.Narrow(); n != 0 {
		return n
	}
	return r
}
