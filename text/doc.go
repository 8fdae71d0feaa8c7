// Package text provides glyph rasterizers for textmode.
//
// Every rasterizer here implements textmode.Rasterizer: it turns one rune
// into a coverage bitmap positioned inside a fixed-size cell. Three sources
// are available:
//
//   - NewOpenType / NewOpenTypeFromFile: any TTF or OTF font, rasterized with
//     golang.org/x/image/font/opentype. Glyph coverage is checked with
//     go-text/typesetting so missing runes are reported instead of drawn as
//     the font's .notdef box.
//   - NewGoMono: the bundled Go Mono font.
//   - NewBasic: the 7x13 bitmap face from golang.org/x/image/font/basicfont,
//     scaled to the cell with golang.org/x/image/draw. Needs no font file.
//
// A Chain tries several faces in order, so a primary font can fall back to
// a second one for runes it lacks.
//
// Fullwidth forms (U+FF01..U+FF5E and friends) are folded to their narrow
// equivalents before lookup, since a cell is one column wide.
package text
