package textmode

import (
	"fmt"
	"image/color"
	"strings"
)

// Colour is one of the 16 palette colours a cell can use.
type Colour uint8

// Palette colours.
const (
	Black Colour = iota
	White
	Red
	Cyan
	Violet
	Green
	Blue
	Yellow
	Orange
	Brown
	LightRed
	DarkGrey
	Grey
	LightGreen
	LightBlue
	LightGrey

	numColours
)

// palette maps each Colour to its RGBA8 quad. Alpha is always opaque.
var palette = [numColours][4]uint8{
	Black:      {0x00, 0x00, 0x00, 0xff},
	White:      {0xff, 0xff, 0xff, 0xff},
	Red:        {0x88, 0x00, 0x00, 0xff},
	Cyan:       {0xaa, 0xff, 0xee, 0xff},
	Violet:     {0xcc, 0x44, 0xcc, 0xff},
	Green:      {0x00, 0xcc, 0x55, 0xff},
	Blue:       {0x00, 0x00, 0xaa, 0xff},
	Yellow:     {0xee, 0xee, 0x77, 0xff},
	Orange:     {0xdd, 0x88, 0x55, 0xff},
	Brown:      {0x66, 0x44, 0x00, 0xff},
	LightRed:   {0xff, 0x77, 0x77, 0xff},
	DarkGrey:   {0x33, 0x33, 0x33, 0xff},
	Grey:       {0x77, 0x77, 0x77, 0xff},
	LightGreen: {0xaa, 0xff, 0x66, 0xff},
	LightBlue:  {0x00, 0x88, 0xff, 0xff},
	LightGrey:  {0xbb, 0xbb, 0xbb, 0xff},
}

var colourNames = [numColours]string{
	Black:      "Black",
	White:      "White",
	Red:        "Red",
	Cyan:       "Cyan",
	Violet:     "Violet",
	Green:      "Green",
	Blue:       "Blue",
	Yellow:     "Yellow",
	Orange:     "Orange",
	Brown:      "Brown",
	LightRed:   "LightRed",
	DarkGrey:   "DarkGrey",
	Grey:       "Grey",
	LightGreen: "LightGreen",
	LightBlue:  "LightBlue",
	LightGrey:  "LightGrey",
}

// Colours returns every palette colour in declaration order.
func Colours() []Colour {
	out := make([]Colour, numColours)
	for i := range out {
		out[i] = Colour(i)
	}
	return out
}

// Valid reports whether c is one of the palette colours.
func (c Colour) Valid() bool {
	return c < numColours
}

// RGBA returns the colour as an RGBA8 quad.
// Values outside the palette map to opaque black.
func (c Colour) RGBA() [4]uint8 {
	if !c.Valid() {
		return palette[Black]
	}
	return palette[c]
}

// Color converts c to the standard color.Color representation.
func (c Colour) Color() color.NRGBA {
	q := c.RGBA()
	return color.NRGBA{R: q[0], G: q[1], B: q[2], A: q[3]}
}

func (c Colour) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Colour(%d)", uint8(c))
	}
	return colourNames[c]
}

// ParseColour returns the palette colour with the given name.
// Matching ignores case, spaces, dashes and underscores, so "light-blue" and
// "LightBlue" both resolve.
func ParseColour(name string) (Colour, error) {
	key := normalizeColourName(name)
	for i, n := range colourNames {
		if normalizeColourName(n) == key {
			return Colour(i), nil
		}
	}
	return Black, fmt.Errorf("textmode: unknown colour %q", name)
}

func normalizeColourName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
