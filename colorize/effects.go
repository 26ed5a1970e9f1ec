package colorize

import (
	"fmt"
	"math"
	"strings"
)

// interpolate linearly blends two RGB triples at position t in [0, 1].
// Channel results truncate toward zero, never round.
func interpolate(c1, c2 RGB, t float64) RGB {
	return RGB{
		R: int(float64(c1.R) + (float64(c2.R)-float64(c1.R))*t),
		G: int(float64(c1.G) + (float64(c2.G)-float64(c1.G))*t),
		B: int(float64(c1.B) + (float64(c2.B)-float64(c1.B))*t),
	}
}

// hsvToRGB converts hue in [0, 360) with saturation and value in [0, 1] to
// an RGB triple via sextant selection, truncating each channel toward zero.
func hsvToRGB(h, s, v float64) RGB {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGB{
		R: int((r + m) * 255),
		G: int((g + m) * 255),
		B: int((b + m) * 255),
	}
}

// boldPrefix returns the fragment prepended inside every per-character
// sequence when bold is requested.
func boldPrefix(bold bool) string {
	if bold {
		return "1;"
	}
	return ""
}

// appendRune writes one true-color styled rune to the builder.
func appendRune(sb *strings.Builder, prefix string, c RGB, ch rune) {
	_, _ = fmt.Fprintf(sb, "%s%s38;2;%d;%d;%dm%c", escPrefix, prefix, c.R, c.G, c.B, ch)
}

// position returns the normalized position t for rune index i in a text of
// n runes. Single-rune text maps to t = 0.
func position(i, n int) float64 {
	return float64(i) / float64(max(n-1, 1))
}

// Gradient colors text one rune at a time, blending linearly from the start
// color at the first rune to the end color at the last. The result carries
// a single trailing Reset; empty text returns an empty string with no
// escape bytes.
func Gradient(text string, start, end ColorSpec, bold bool) (string, error) {
	c1, err := resolveRGB(start)
	if err != nil {
		return "", err
	}
	c2, err := resolveRGB(end)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return "", nil
	}

	prefix := boldPrefix(bold)
	var sb strings.Builder
	for i, ch := range runes {
		appendRune(&sb, prefix, interpolate(c1, c2, position(i, n)), ch)
	}
	sb.WriteString(Reset)
	return sb.String(), nil
}

// Rainbow colors text with a hue sweep from red at the first rune to purple
// at the last, at full saturation and value. The sweep stops at 300 degrees
// rather than wrapping to 360 so the two ends stay visually distinct.
func Rainbow(text string, bold bool) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}

	prefix := boldPrefix(bold)
	var sb strings.Builder
	for i, ch := range runes {
		hue := position(i, n) * 300
		appendRune(&sb, prefix, hsvToRGB(hue, 1, 1), ch)
	}
	sb.WriteString(Reset)
	return sb.String()
}

// Fade blends from the start color at both ends of the text to the end
// color at the midpoint, using a triangular ramp over rune positions.
func Fade(text string, start, end ColorSpec, bold bool) (string, error) {
	c1, err := resolveRGB(start)
	if err != nil {
		return "", err
	}
	c2, err := resolveRGB(end)
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return "", nil
	}

	prefix := boldPrefix(bold)
	var sb strings.Builder
	for i, ch := range runes {
		t := position(i, n)
		tBounce := 1 - math.Abs(2*t-1)
		appendRune(&sb, prefix, interpolate(c1, c2, tBounce), ch)
	}
	sb.WriteString(Reset)
	return sb.String(), nil
}

// Cycle assigns colors[i mod len(colors)] to rune i, repeating the list
// across the text. An empty color list returns the text unchanged with no
// error. Empty text returns an empty string even when every color resolves,
// so no stray escape bytes are emitted.
func Cycle(text string, colors []ColorSpec, bold bool) (string, error) {
	if len(colors) == 0 {
		return text, nil
	}

	resolved := make([]RGB, len(colors))
	for i, c := range colors {
		rgb, err := resolveRGB(c)
		if err != nil {
			return "", err
		}
		resolved[i] = rgb
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return "", nil
	}

	prefix := boldPrefix(bold)
	var sb strings.Builder
	for i, ch := range runes {
		appendRune(&sb, prefix, resolved[i%len(resolved)], ch)
	}
	sb.WriteString(Reset)
	return sb.String(), nil
}
