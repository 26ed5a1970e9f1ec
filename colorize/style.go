package colorize

import (
	"fmt"
	"strings"
)

// Styles selects the foreground color, background color, and text
// attributes applied by Style. The zero value selects nothing.
type Styles struct {
	// Fg and Bg are optional; nil leaves the corresponding plane unstyled.
	Fg ColorSpec
	Bg ColorSpec

	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Reverse       bool
	Strikethrough bool
}

// attrFlags returns the attribute switches in attributeTable order.
func (s Styles) attrFlags() [6]bool {
	return [6]bool{s.Bold, s.Dim, s.Italic, s.Underline, s.Reverse, s.Strikethrough}
}

// Style wraps text in a single SGR sequence built from s and appends Reset.
// Codes are emitted in a fixed order: foreground, background, then
// attributes. When s selects nothing the text is returned unchanged with no
// escape bytes added, so unstyled paths stay byte-identical.
func Style(text string, s Styles) (string, error) {
	var codes []string

	if s.Fg != nil {
		code, err := fgCode(s.Fg)
		if err != nil {
			return "", err
		}
		codes = append(codes, code)
	}
	if s.Bg != nil {
		code, err := bgCode(s.Bg)
		if err != nil {
			return "", err
		}
		codes = append(codes, code)
	}
	for i, set := range s.attrFlags() {
		if set {
			codes = append(codes, attributeTable[i].code)
		}
	}

	if len(codes) == 0 {
		return text, nil
	}
	return escPrefix + strings.Join(codes, ";") + "m" + text + Reset, nil
}

// fgCode returns the foreground SGR fragment for a spec.
func fgCode(spec ColorSpec) (string, error) {
	switch c := spec.(type) {
	case Name:
		entry, ok := colorTable[normalizeName(string(c))]
		if !ok {
			return "", &UnknownColorError{Input: string(c)}
		}
		return entry.fg, nil
	case RGB:
		return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B), nil
	default:
		return "", &UnknownColorError{Input: fmt.Sprint(spec)}
	}
}

// bgCode returns the background SGR fragment for a spec.
func bgCode(spec ColorSpec) (string, error) {
	switch c := spec.(type) {
	case Name:
		entry, ok := colorTable[normalizeName(string(c))]
		if !ok {
			return "", &UnknownColorError{Input: string(c)}
		}
		return entry.bg, nil
	case RGB:
		return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B), nil
	default:
		return "", &UnknownColorError{Input: fmt.Sprint(spec)}
	}
}
