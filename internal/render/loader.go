// Package render loads scene files and draws them through the colorize
// package. A scene is a TOML document with an optional title and a list of
// lines, each naming an effect and the colors it needs:
//
//	title = "Demo"
//
//	[[lines]]
//	text = "Hello"
//	effect = "gradient"
//	start = "red"
//	end = [0, 0, 205]
//
// Color fields accept either a registry name or an [r, g, b] integer array.
// Structural problems (unknown effects, missing fields, malformed color
// values) are rejected at load time; color names are resolved when the
// scene is rendered.
package render

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jblib/jblib-go/colorize"
)

// sceneDoc mirrors the TOML document before validation.
type sceneDoc struct {
	Title string    `toml:"title"`
	Lines []lineDoc `toml:"lines"`
}

type lineDoc struct {
	Text          string `toml:"text"`
	Effect        string `toml:"effect"`
	Fg            any    `toml:"fg"`
	Bg            any    `toml:"bg"`
	Start         any    `toml:"start"`
	End           any    `toml:"end"`
	Colors        []any  `toml:"colors"`
	Bold          bool   `toml:"bold"`
	Dim           bool   `toml:"dim"`
	Italic        bool   `toml:"italic"`
	Underline     bool   `toml:"underline"`
	Reverse       bool   `toml:"reverse"`
	Strikethrough bool   `toml:"strikethrough"`
	Cycles        int    `toml:"cycles"`
	SpeedMS       int    `toml:"speed_ms"`
	Steps         int    `toml:"steps"`
}

// Loader handles loading and validating scene files.
type Loader struct{}

// NewLoader creates a new scene loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the scene file at path.
func (l *Loader) Load(path string) (*Scene, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return l.Parse(content)
}

// Parse parses and validates scene content.
func (l *Loader) Parse(content []byte) (*Scene, error) {
	var doc sceneDoc
	if err := toml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if len(doc.Lines) == 0 {
		return nil, ErrNoLines
	}

	scene := &Scene{
		Title: doc.Title,
		Lines: make([]Line, 0, len(doc.Lines)),
	}
	for i := range doc.Lines {
		line, err := compileLine(&doc.Lines[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		scene.Lines = append(scene.Lines, *line)
	}

	return scene, nil
}

// compileLine converts a raw document line into a validated Line.
func compileLine(doc *lineDoc) (*Line, error) {
	effect := Effect(doc.Effect)
	if effect == "" {
		effect = EffectStyle
	}
	switch effect {
	case EffectStyle, EffectGradient, EffectRainbow, EffectFade, EffectCycle, EffectPulse:
	default:
		return nil, &ErrUnknownEffect{Name: doc.Effect}
	}

	line := &Line{
		Text:          doc.Text,
		Effect:        effect,
		Bold:          doc.Bold,
		Dim:           doc.Dim,
		Italic:        doc.Italic,
		Underline:     doc.Underline,
		Reverse:       doc.Reverse,
		Strikethrough: doc.Strikethrough,
	}

	var err error
	if line.Fg, err = colorField("fg", doc.Fg); err != nil {
		return nil, err
	}
	if line.Bg, err = colorField("bg", doc.Bg); err != nil {
		return nil, err
	}
	if line.Start, err = colorField("start", doc.Start); err != nil {
		return nil, err
	}
	if line.End, err = colorField("end", doc.End); err != nil {
		return nil, err
	}
	for _, v := range doc.Colors {
		spec, err := colorField("colors", v)
		if err != nil {
			return nil, err
		}
		line.Colors = append(line.Colors, spec)
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{"cycles", doc.Cycles},
		{"speed_ms", doc.SpeedMS},
		{"steps", doc.Steps},
	} {
		if f.value < 0 {
			return nil, &ErrNegativeValue{Field: f.name, Value: f.value}
		}
	}
	line.Cycles = doc.Cycles
	line.Speed = time.Duration(doc.SpeedMS) * time.Millisecond
	line.Steps = doc.Steps

	switch effect {
	case EffectGradient, EffectFade, EffectPulse:
		if line.Start == nil {
			return nil, &ErrMissingField{Effect: effect, Field: "start"}
		}
		if line.End == nil {
			return nil, &ErrMissingField{Effect: effect, Field: "end"}
		}
	case EffectCycle:
		if len(line.Colors) == 0 {
			return nil, &ErrMissingField{Effect: effect, Field: "colors"}
		}
	}

	return line, nil
}

// colorField converts a raw TOML value into a ColorSpec. Absent fields stay
// nil, strings become registry names, and three-element integer arrays
// become RGB triples.
func colorField(field string, v any) (colorize.ColorSpec, error) {
	switch value := v.(type) {
	case nil:
		return nil, nil
	case string:
		return colorize.Name(value), nil
	case []any:
		rgb, ok := rgbFromSlice(value)
		if !ok {
			return nil, &ErrInvalidColorValue{Field: field, Value: v}
		}
		return rgb, nil
	default:
		return nil, &ErrInvalidColorValue{Field: field, Value: v}
	}
}

func rgbFromSlice(values []any) (colorize.RGB, bool) {
	if len(values) != 3 {
		return colorize.RGB{}, false
	}
	var channels [3]int
	for i, v := range values {
		n, ok := v.(int64)
		if !ok {
			return colorize.RGB{}, false
		}
		channels[i] = int(n)
	}
	return colorize.RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}
