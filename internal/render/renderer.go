package render

import (
	"context"
	"fmt"
	"io"

	"github.com/jblib/jblib-go/colorize"
)

// Renderer draws scenes to a writer.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderScene draws the scene title and every line in order. Pulse lines
// animate in place and honor ctx cancellation; all other effects emit one
// line each. The first error stops rendering.
func (r *Renderer) RenderScene(ctx context.Context, scene *Scene) error {
	if scene.Title != "" {
		title, err := colorize.Style(scene.Title, colorize.Styles{Bold: true, Underline: true})
		if err != nil {
			return fmt.Errorf("title: %w", err)
		}
		if _, err := fmt.Fprintln(r.out, title); err != nil {
			return err
		}
	}

	for i := range scene.Lines {
		if err := r.renderLine(ctx, &scene.Lines[i]); err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return nil
}

// renderLine draws a single line according to its effect.
func (r *Renderer) renderLine(ctx context.Context, line *Line) error {
	var (
		text string
		err  error
	)

	switch line.Effect {
	case EffectStyle:
		text, err = colorize.Style(line.Text, line.styles())
	case EffectGradient:
		text, err = colorize.Gradient(line.Text, line.Start, line.End, line.Bold)
	case EffectRainbow:
		text = colorize.Rainbow(line.Text, line.Bold)
	case EffectFade:
		text, err = colorize.Fade(line.Text, line.Start, line.End, line.Bold)
	case EffectCycle:
		text, err = colorize.Cycle(line.Text, line.Colors, line.Bold)
	case EffectPulse:
		return colorize.Pulse(ctx, r.out, line.Text, line.Start, line.End, line.pulseOptions()...)
	default:
		return &ErrUnknownEffect{Name: string(line.Effect)}
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(r.out, text)
	return err
}
