// Package main provides the jbfx command. It applies one text effect to the
// given text and writes the result to stdout, reading stdin when no text
// arguments are given.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jblib/jblib-go/colorize"
	"github.com/jblib/jblib-go/internal/render"
)

var (
	errInvalidColorValue = errors.New("color must be a registry name or an r,g,b triple")
	errStartEndRequired  = errors.New("-start and -end are required for the gradient, fade and pulse effects")
	errColorRequired     = errors.New("at least one -color is required for the cycle effect")
)

type fxConfig struct {
	line     render.Line
	textArgs []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		printUsage(fs, stderr)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	text := strings.Join(cfg.textArgs, " ")
	if len(cfg.textArgs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "Error reading stdin: %v\n", err)
			return 1
		}
		text = strings.TrimSuffix(string(data), "\n")
	}
	cfg.line.Text = text

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scene := &render.Scene{Lines: []render.Line{cfg.line}}
	if err := render.NewRenderer(stdout).RenderScene(ctx, scene); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (*fxConfig, *flag.FlagSet, error) {
	options := struct {
		effect        string
		fg            string
		bg            string
		start         string
		end           string
		colors        []string
		bold          bool
		dim           bool
		italic        bool
		underline     bool
		reverse       bool
		strikethrough bool
		cycles        int
		speed         time.Duration
		steps         int
	}{}

	fs := flag.NewFlagSet("jbfx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVar(&options.effect, "effect", "style", "Effect to apply: style, gradient, rainbow, fade, cycle or pulse")
	fs.StringVar(&options.fg, "fg", "", "Foreground color for the style effect")
	fs.StringVar(&options.bg, "bg", "", "Background color for the style effect")
	fs.StringVar(&options.start, "start", "", "Start color for gradient, fade and pulse")
	fs.StringVar(&options.end, "end", "", "End color for gradient, fade and pulse")
	fs.Func("color", "Color for the cycle effect (repeatable)", func(s string) error {
		options.colors = append(options.colors, s)
		return nil
	})
	fs.BoolVar(&options.bold, "bold", false, "Apply the bold attribute")
	fs.BoolVar(&options.dim, "dim", false, "Apply the dim attribute (style only)")
	fs.BoolVar(&options.italic, "italic", false, "Apply the italic attribute (style only)")
	fs.BoolVar(&options.underline, "underline", false, "Apply the underline attribute (style only)")
	fs.BoolVar(&options.reverse, "reverse", false, "Apply the reverse-video attribute (style only)")
	fs.BoolVar(&options.strikethrough, "strikethrough", false, "Apply the strikethrough attribute (style only)")
	fs.IntVar(&options.cycles, "cycles", 0, "Pulse cycles (default 3)")
	fs.DurationVar(&options.speed, "speed", 0, "Pulse frame delay (default 50ms)")
	fs.IntVar(&options.steps, "steps", 0, "Pulse color steps per direction (default 20)")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	effect := render.Effect(options.effect)
	switch effect {
	case render.EffectStyle, render.EffectGradient, render.EffectRainbow, render.EffectFade, render.EffectCycle, render.EffectPulse:
	default:
		return nil, fs, &render.ErrUnknownEffect{Name: options.effect}
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"cycles", options.cycles},
		{"steps", options.steps},
	} {
		if f.value < 0 {
			return nil, fs, &render.ErrNegativeValue{Field: f.name, Value: f.value}
		}
	}

	cfg := &fxConfig{
		line: render.Line{
			Effect:        effect,
			Bold:          options.bold,
			Dim:           options.dim,
			Italic:        options.italic,
			Underline:     options.underline,
			Reverse:       options.reverse,
			Strikethrough: options.strikethrough,
			Cycles:        options.cycles,
			Speed:         options.speed,
			Steps:         options.steps,
		},
		textArgs: fs.Args(),
	}

	var err error
	if cfg.line.Fg, err = optionalColor(options.fg); err != nil {
		return nil, fs, err
	}
	if cfg.line.Bg, err = optionalColor(options.bg); err != nil {
		return nil, fs, err
	}
	if cfg.line.Start, err = optionalColor(options.start); err != nil {
		return nil, fs, err
	}
	if cfg.line.End, err = optionalColor(options.end); err != nil {
		return nil, fs, err
	}
	for _, value := range options.colors {
		spec, err := parseColorFlag(value)
		if err != nil {
			return nil, fs, err
		}
		cfg.line.Colors = append(cfg.line.Colors, spec)
	}

	switch effect {
	case render.EffectGradient, render.EffectFade, render.EffectPulse:
		if cfg.line.Start == nil || cfg.line.End == nil {
			return nil, fs, errStartEndRequired
		}
	case render.EffectCycle:
		if len(cfg.line.Colors) == 0 {
			return nil, fs, errColorRequired
		}
	}

	return cfg, fs, nil
}

// optionalColor parses a color flag value, mapping the empty string to nil.
func optionalColor(value string) (colorize.ColorSpec, error) {
	if value == "" {
		return nil, nil
	}
	return parseColorFlag(value)
}

// parseColorFlag accepts either a registry name ("red", "Bright Blue") or an
// r,g,b triple ("205,0,0").
func parseColorFlag(value string) (colorize.ColorSpec, error) {
	if !strings.Contains(value, ",") {
		return colorize.Name(value), nil
	}
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", errInvalidColorValue, value)
	}
	var channels [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errInvalidColorValue, value)
		}
		channels[i] = n
	}
	return colorize.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [text...]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "Reads text from stdin when no text arguments are given.")
	fs.PrintDefaults()
}
