// Package progressbar renders a single-line console progress bar that
// updates in place. A bar line is rebuilt from scratch on every call and
// written behind a carriage return, so repeated calls animate one terminal
// line. Values below zero render a halt notice, values at or above one
// render a completion notice; both finish the line with a newline.
package progressbar

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	defaultWidth = 50
	defaultLabel = "Progress"

	// minWidth is the smallest bar the terminal-fitted mode will produce.
	minWidth = 10

	// decorationWidth is the visible width of everything around the bar
	// blocks: the ": [" and "] " brackets, a four-column percentage, and
	// the two-space gap before the status.
	decorationWidth = 11
)

// terminalSize reports the dimensions of the terminal behind fd. Swappable
// for tests.
var terminalSize = term.GetSize

// config holds the bar geometry assembled from Options.
type config struct {
	width   int
	label   string
	termFD  int
	fitTerm bool
}

// Option adjusts how the bar is rendered.
type Option func(*config)

// WithWidth sets the number of block characters in the bar.
func WithWidth(n int) Option {
	return func(cfg *config) { cfg.width = n }
}

// WithLabel sets the text printed before the bar.
func WithLabel(label string) Option {
	return func(cfg *config) { cfg.label = label }
}

// WithTerminalWidth sizes the bar to fill the terminal behind fd, reserving
// room for the label and decorations. Label width is measured in display
// cells, so wide runes are accounted for. When fd is not a terminal the
// configured width is kept.
func WithTerminalWidth(fd int) Option {
	return func(cfg *config) {
		cfg.termFD = fd
		cfg.fitTerm = true
	}
}

func newConfig(opts []Option) config {
	cfg := config{width: defaultWidth, label: defaultLabel}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Terminal fitting runs after all options so it sees the final label.
	if cfg.fitTerm {
		if cols, _, err := terminalSize(cfg.termFD); err == nil && cols > 0 {
			cfg.width = fitWidth(cols, cfg.label)
		}
	}
	if cfg.width < 0 {
		cfg.width = 0
	}
	return cfg
}

// fitWidth computes the bar width that fills a terminal of the given column
// count alongside the label and decorations.
func fitWidth(cols int, label string) int {
	w := cols - runewidth.StringWidth(label) - decorationWidth
	if w < minWidth {
		return minWidth
	}
	return w
}

// Render builds one progress-bar line for a completion ratio in [0, 1].
// The line starts with a carriage return so it overwrites the previous one.
// Ratios below zero clamp to an empty bar with a halt notice; ratios at or
// above one clamp to a full bar with a done notice, and both notices end the
// line with a newline.
func Render(progress float64, opts ...Option) string {
	cfg := newConfig(opts)

	status := " \r"
	switch {
	case progress < 0:
		progress = 0
		status = "Halt...\r\n"
	case progress >= 1:
		progress = 1
		status = "Done...\r\n"
	}

	block := int(math.Round(float64(cfg.width) * progress))
	bar := strings.Repeat("#", block) + strings.Repeat("-", cfg.width-block)
	percent := int(math.Round(progress * 100))

	return fmt.Sprintf("\r%s: [%s] %d%%  %s", cfg.label, bar, percent, status)
}

// Fprint renders the bar line for progress and writes it to w.
func Fprint(w io.Writer, progress float64, opts ...Option) error {
	_, err := io.WriteString(w, Render(progress, opts...))
	return err
}
