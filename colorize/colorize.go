// Package colorize provides terminal text styling built on ANSI SGR escape
// sequences. It exposes pre-built escape strings for direct interpolation
// into formatted text (Fg, Bg), a Style function that composes foreground,
// background, and text attributes with an automatic reset, per-character
// color effects (Gradient, Rainbow, Fade, Cycle), and an in-place Pulse
// animation.
//
// All functions are pure string transforms except Pulse, which writes
// animation frames to an io.Writer.
package colorize

import "strings"

// ANSI escape sequence pieces. Reset clears all active styling.
const (
	escPrefix = "\033["
	Reset     = "\033[0m"
)

// colorEntry describes one registered color: the SGR fragments used for
// direct styling and the RGB triple used by the effect generators.
type colorEntry struct {
	fg  string
	bg  string
	rgb RGB
}

// colorTable is the color registry. Standard colors carry the classic
// 16-color SGR codes with 205-based RGB equivalents, bright variants carry
// the bright codes with 255-based RGB, and orange is true-color only.
var colorTable = map[string]colorEntry{
	"black":         {fg: "30", bg: "40", rgb: RGB{0, 0, 0}},
	"red":           {fg: "31", bg: "41", rgb: RGB{205, 0, 0}},
	"green":         {fg: "32", bg: "42", rgb: RGB{0, 205, 0}},
	"yellow":        {fg: "33", bg: "43", rgb: RGB{205, 205, 0}},
	"blue":          {fg: "34", bg: "44", rgb: RGB{0, 0, 205}},
	"purple":        {fg: "35", bg: "45", rgb: RGB{205, 0, 205}},
	"teal":          {fg: "36", bg: "46", rgb: RGB{0, 205, 205}},
	"white":         {fg: "37", bg: "47", rgb: RGB{205, 205, 205}},
	"bright_black":  {fg: "90", bg: "100", rgb: RGB{127, 127, 127}},
	"bright_red":    {fg: "91", bg: "101", rgb: RGB{255, 0, 0}},
	"bright_green":  {fg: "92", bg: "102", rgb: RGB{0, 255, 0}},
	"bright_yellow": {fg: "93", bg: "103", rgb: RGB{255, 255, 0}},
	"bright_blue":   {fg: "94", bg: "104", rgb: RGB{0, 0, 255}},
	"bright_purple": {fg: "95", bg: "105", rgb: RGB{255, 0, 255}},
	"bright_teal":   {fg: "96", bg: "106", rgb: RGB{0, 255, 255}},
	"bright_white":  {fg: "97", bg: "107", rgb: RGB{255, 255, 255}},
	"orange":        {fg: "38;2;255;165;0", bg: "48;2;255;165;0", rgb: RGB{255, 165, 0}},
}

// attributeTable lists the supported text attributes in the order Style
// emits them. Styles.attrFlags must match this order.
var attributeTable = []struct {
	name string
	code string
}{
	{name: "bold", code: "1"},
	{name: "dim", code: "2"},
	{name: "italic", code: "3"},
	{name: "underline", code: "4"},
	{name: "reverse", code: "7"},
	{name: "strikethrough", code: "9"},
}

// Fg maps upper-cased color and attribute names ("RED", "BRIGHT_BLUE",
// "BOLD") to complete foreground escape sequences for direct interpolation
// into strings. OFF and RESET both map to Reset. The map is built once at
// package load and must be treated as read-only.
var Fg = buildFg()

// Bg maps upper-cased color names to complete background escape sequences.
// Built once at package load, read-only.
var Bg = buildBg()

func buildFg() map[string]string {
	m := make(map[string]string, len(colorTable)+len(attributeTable)+2)
	for name, entry := range colorTable {
		m[strings.ToUpper(name)] = escPrefix + entry.fg + "m"
	}
	for _, attr := range attributeTable {
		m[strings.ToUpper(attr.name)] = escPrefix + attr.code + "m"
	}
	m["OFF"] = Reset
	m["RESET"] = Reset
	return m
}

func buildBg() map[string]string {
	m := make(map[string]string, len(colorTable))
	for name, entry := range colorTable {
		m[strings.ToUpper(name)] = escPrefix + entry.bg + "m"
	}
	return m
}
