package textmode

import (
	"image/color"
	"testing"
)

func TestColourRGBA(t *testing.T) {
	tests := []struct {
		c    Colour
		want [4]uint8
	}{
		{Black, [4]uint8{0x00, 0x00, 0x00, 0xff}},
		{White, [4]uint8{0xff, 0xff, 0xff, 0xff}},
		{Red, [4]uint8{0x88, 0x00, 0x00, 0xff}},
		{Cyan, [4]uint8{0xaa, 0xff, 0xee, 0xff}},
		{Violet, [4]uint8{0xcc, 0x44, 0xcc, 0xff}},
		{Green, [4]uint8{0x00, 0xcc, 0x55, 0xff}},
		{Blue, [4]uint8{0x00, 0x00, 0xaa, 0xff}},
		{Yellow, [4]uint8{0xee, 0xee, 0x77, 0xff}},
		{Orange, [4]uint8{0xdd, 0x88, 0x55, 0xff}},
		{Brown, [4]uint8{0x66, 0x44, 0x00, 0xff}},
		{LightRed, [4]uint8{0xff, 0x77, 0x77, 0xff}},
		{DarkGrey, [4]uint8{0x33, 0x33, 0x33, 0xff}},
		{Grey, [4]uint8{0x77, 0x77, 0x77, 0xff}},
		{LightGreen, [4]uint8{0xaa, 0xff, 0x66, 0xff}},
		{LightBlue, [4]uint8{0x00, 0x88, 0xff, 0xff}},
		{LightGrey, [4]uint8{0xbb, 0xbb, 0xbb, 0xff}},
	}

	if len(tests) != int(numColours) {
		t.Fatalf("table covers %d colours, palette has %d", len(tests), numColours)
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			if got := tt.c.RGBA(); got != tt.want {
				t.Errorf("RGBA() = %x, want %x", got, tt.want)
			}
		})
	}
}

// Every declared colour needs a name and an opaque palette entry; a zero
// entry means a variant was added without a mapping.
func TestColoursExhaustive(t *testing.T) {
	all := Colours()
	if len(all) != 16 {
		t.Fatalf("Colours() returned %d colours, want 16", len(all))
	}
	for i, c := range all {
		if int(c) != i {
			t.Errorf("Colours()[%d] = %d, want declaration order", i, c)
		}
		if !c.Valid() {
			t.Errorf("%v reported invalid", c)
		}
		if colourNames[c] == "" {
			t.Errorf("Colour(%d) has no name", c)
		}
		if c.RGBA()[3] != 0xff {
			t.Errorf("%v alpha = %#x, want 0xff", c, c.RGBA()[3])
		}
	}
}

func TestColourInvalid(t *testing.T) {
	c := Colour(200)
	if c.Valid() {
		t.Error("Colour(200).Valid() = true")
	}
	if got := c.RGBA(); got != Black.RGBA() {
		t.Errorf("Colour(200).RGBA() = %x, want black", got)
	}
	if got := c.String(); got != "Colour(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestColourColor(t *testing.T) {
	want := color.NRGBA{R: 0xdd, G: 0x88, B: 0x55, A: 0xff}
	if got := Orange.Color(); got != want {
		t.Errorf("Orange.Color() = %v, want %v", got, want)
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    Colour
		wantErr bool
	}{
		{"Black", Black, false},
		{"white", White, false},
		{"LightBlue", LightBlue, false},
		{"light-blue", LightBlue, false},
		{"dark_grey", DarkGrey, false},
		{"Light Green", LightGreen, false},
		{"magenta", Black, true},
		{"", Black, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColour(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColour(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColourRoundTrip(t *testing.T) {
	for _, c := range Colours() {
		got, err := ParseColour(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColour(%q) = (%v, %v), want %v", c.String(), got, err, c)
		}
	}
}
