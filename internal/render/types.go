package render

import (
	"time"

	"github.com/jblib/jblib-go/colorize"
)

// Effect names a text effect a scene line can request.
type Effect string

// Supported effects.
const (
	EffectStyle    Effect = "style"
	EffectGradient Effect = "gradient"
	EffectRainbow  Effect = "rainbow"
	EffectFade     Effect = "fade"
	EffectCycle    Effect = "cycle"
	EffectPulse    Effect = "pulse"
)

// Scene is a fully validated scene ready for rendering.
type Scene struct {
	Title string
	Lines []Line
}

// Line is one renderable line of a scene. Which fields apply depends on the
// effect: Fg/Bg and the attribute flags belong to style, Start/End to
// gradient, fade and pulse, Colors to cycle. Bold additionally applies to
// every generator effect. Cycles, Speed and Steps tune pulse; zero values
// fall back to the pulse defaults.
type Line struct {
	Text   string
	Effect Effect

	Fg    colorize.ColorSpec
	Bg    colorize.ColorSpec
	Start colorize.ColorSpec
	End   colorize.ColorSpec

	Colors []colorize.ColorSpec

	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Reverse       bool
	Strikethrough bool

	Cycles int
	Speed  time.Duration
	Steps  int
}

// styles collects the line's style fields into a colorize.Styles value.
func (l *Line) styles() colorize.Styles {
	return colorize.Styles{
		Fg:            l.Fg,
		Bg:            l.Bg,
		Bold:          l.Bold,
		Dim:           l.Dim,
		Italic:        l.Italic,
		Underline:     l.Underline,
		Reverse:       l.Reverse,
		Strikethrough: l.Strikethrough,
	}
}

// pulseOptions maps the line's tuning fields onto pulse options, leaving
// defaults in place for zero values.
func (l *Line) pulseOptions() []colorize.PulseOption {
	var opts []colorize.PulseOption
	if l.Cycles > 0 {
		opts = append(opts, colorize.WithCycles(l.Cycles))
	}
	if l.Speed > 0 {
		opts = append(opts, colorize.WithSpeed(l.Speed))
	}
	if l.Steps > 0 {
		opts = append(opts, colorize.WithSteps(l.Steps))
	}
	if l.Bold {
		opts = append(opts, colorize.WithBold())
	}
	return opts
}
