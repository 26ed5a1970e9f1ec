package colorize

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Pulse animation defaults.
const (
	defaultPulseCycles = 3
	defaultPulseSpeed  = 50 * time.Millisecond
	defaultPulseSteps  = 20
)

// pulseConfig holds the animation parameters assembled from PulseOptions.
type pulseConfig struct {
	cycles int
	speed  time.Duration
	steps  int
	bold   bool
}

// PulseOption adjusts a Pulse animation.
type PulseOption func(*pulseConfig)

// WithCycles sets the number of full pulse cycles. Zero runs until the
// context is cancelled.
func WithCycles(n int) PulseOption {
	return func(cfg *pulseConfig) { cfg.cycles = n }
}

// WithSpeed sets the delay between frames.
func WithSpeed(d time.Duration) PulseOption {
	return func(cfg *pulseConfig) { cfg.speed = d }
}

// WithSteps sets the number of color steps per transition direction.
func WithSteps(n int) PulseOption {
	return func(cfg *pulseConfig) { cfg.steps = n }
}

// WithBold applies the bold attribute to every frame.
func WithBold() PulseOption {
	return func(cfg *pulseConfig) { cfg.bold = true }
}

// flusher is implemented by buffered writers that need an explicit flush
// after each frame (bufio.Writer in particular).
type flusher interface {
	Flush() error
}

// Pulse animates text in place on w, blending from the start color to the
// end color and back for the configured number of cycles. Every frame
// rewrites the current line behind a carriage return; Pulse owns that line
// for the duration of the animation. Cancelling ctx ends the loop early and
// is not reported as an error. On any termination one final frame in the
// pure start color plus a newline is written, leaving the line readable.
func Pulse(ctx context.Context, w io.Writer, text string, start, end ColorSpec, opts ...PulseOption) error {
	cfg := pulseConfig{
		cycles: defaultPulseCycles,
		speed:  defaultPulseSpeed,
		steps:  defaultPulseSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	c1, err := resolveRGB(start)
	if err != nil {
		return err
	}
	c2, err := resolveRGB(end)
	if err != nil {
		return err
	}

	prefix := boldPrefix(cfg.bold)

	// One full cycle of frames: start toward end, then end back toward
	// start. Neither half reaches its target color since the opposite half
	// begins there. Non-positive steps produce no animation frames, only
	// the closing line.
	frames := make([]string, 0, max(2*cfg.steps, 0))
	for i := 0; i < cfg.steps; i++ {
		t := float64(i) / float64(cfg.steps)
		frames = append(frames, pulseFrame(prefix, interpolate(c1, c2, t), text))
	}
	for i := 0; i < cfg.steps; i++ {
		t := float64(i) / float64(cfg.steps)
		frames = append(frames, pulseFrame(prefix, interpolate(c2, c1, t), text))
	}

	var writeErr error
loop:
	for count := 0; len(frames) > 0 && (cfg.cycles == 0 || count < cfg.cycles); count++ {
		for _, frame := range frames {
			if ctx.Err() != nil {
				break loop
			}
			if writeErr = writeFrame(w, "\r"+frame); writeErr != nil {
				break loop
			}
			select {
			case <-ctx.Done():
				break loop
			case <-time.After(cfg.speed):
			}
		}
	}

	// The line always ends in the pure start color, animation or not.
	if err := writeFrame(w, "\r"+pulseFrame(prefix, c1, text)+"\n"); err != nil && writeErr == nil {
		writeErr = err
	}
	return writeErr
}

// pulseFrame renders the whole text in one true-color sequence.
func pulseFrame(prefix string, c RGB, text string) string {
	return fmt.Sprintf("%s%s38;2;%d;%d;%dm%s%s", escPrefix, prefix, c.R, c.G, c.B, text, Reset)
}

// writeFrame writes one frame and flushes buffered writers.
func writeFrame(w io.Writer, frame string) error {
	if _, err := io.WriteString(w, frame); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
