package colorize

import (
	"fmt"
	"strings"
)

// ColorSpec identifies a color for styling and effect functions. Exactly two
// implementations exist: Name references a registered color and RGB supplies
// an explicit triple.
type ColorSpec interface {
	colorSpec()
}

// Name references a registered color. Lookup is case-insensitive and treats
// spaces as underscores, so "Bright Blue", "bright_blue", and "BRIGHT_BLUE"
// are equivalent.
type Name string

// RGB is an explicit 24-bit color. Channel values are written into the
// escape sequence verbatim; out-of-range values are not clamped and reach
// the terminal as supplied.
type RGB struct {
	R, G, B int
}

func (Name) colorSpec() {}
func (RGB) colorSpec()  {}

// normalizeName folds a color name to registry form.
func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// resolveRGB returns the RGB triple for a spec. Names are looked up in the
// registry; RGB values pass through unchanged.
func resolveRGB(spec ColorSpec) (RGB, error) {
	switch c := spec.(type) {
	case Name:
		entry, ok := colorTable[normalizeName(string(c))]
		if !ok {
			return RGB{}, &UnknownColorError{Input: string(c)}
		}
		return entry.rgb, nil
	case RGB:
		return c, nil
	default:
		return RGB{}, &UnknownColorError{Input: fmt.Sprint(spec)}
	}
}
