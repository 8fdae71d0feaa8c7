package text

import (
	"fmt"
	"strings"
)

// Built-in face names accepted by Open.
const (
	GoMonoName = "gomono"
	BasicName  = "basic"
)

// DefaultFaces is the face list used when Open is given an empty string:
// Go Mono, falling back to the bitmap font.
const DefaultFaces = GoMonoName + "," + BasicName

// Open builds a Chain from a comma-separated list of faces. Each entry is
// GoMonoName, BasicName, or the path of a TTF/OTF file.
func Open(list string, opts ...FaceOption) (*Chain, error) {
	if strings.TrimSpace(list) == "" {
		list = DefaultFaces
	}

	var faces []FallbackFace
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, err := openFace(name, opts)
		if err != nil {
			return nil, fmt.Errorf("text: open %q: %w", name, err)
		}
		faces = append(faces, f)
	}
	return NewChain(faces...)
}

func openFace(name string, opts []FaceOption) (*Face, error) {
	switch strings.ToLower(name) {
	case GoMonoName:
		return NewGoMono(opts...)
	case BasicName:
		return NewBasic(opts...), nil
	default:
		return NewOpenTypeFromFile(name, opts...)
	}
}
