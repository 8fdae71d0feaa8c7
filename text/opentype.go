package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// NewOpenType creates a Face from TTF or OTF data.
func NewOpenType(data []byte, opts ...FaceOption) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultFaceConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	coverage, err := NewCoverage(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font coverage: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    cfg.size,
		DPI:     cfg.dpi,
		Hinting: cfg.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("text: create face: %w", err)
	}

	return newFace(face, fontName(parsed), coverage.Covers, cfg, 1), nil
}

// NewOpenTypeFromFile loads a font file and creates a Face from it.
func NewOpenTypeFromFile(path string, opts ...FaceOption) (*Face, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return NewOpenType(data, opts...)
}

// NewGoMono creates a Face from the bundled Go Mono font.
func NewGoMono(opts ...FaceOption) (*Face, error) {
	return NewOpenType(gomono.TTF, opts...)
}

func fontName(f *opentype.Font) string {
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || name == "" {
		return "opentype"
	}
	return name
}
