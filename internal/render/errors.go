package render

import (
	"errors"
	"fmt"
)

// ErrNoLines is returned when a scene document defines no lines.
var ErrNoLines = errors.New("scene has no lines")

// ErrUnknownEffect is returned when a line requests an effect the renderer
// does not know.
type ErrUnknownEffect struct {
	Name string
}

func (e *ErrUnknownEffect) Error() string {
	return fmt.Sprintf("unknown effect %q", e.Name)
}

// ErrMissingField is returned when a line omits a field its effect requires.
type ErrMissingField struct {
	Effect Effect
	Field  string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("effect %q requires field %q", e.Effect, e.Field)
}

// ErrInvalidColorValue is returned when a color field holds neither a name
// string nor an [r, g, b] integer array.
type ErrInvalidColorValue struct {
	Field string
	Value any
}

func (e *ErrInvalidColorValue) Error() string {
	return fmt.Sprintf("field %q: color must be a name or an [r, g, b] array, got %v", e.Field, e.Value)
}

// ErrNegativeValue is returned when a numeric tuning field is negative.
type ErrNegativeValue struct {
	Field string
	Value int
}

func (e *ErrNegativeValue) Error() string {
	return fmt.Sprintf("field %q must not be negative, got %d", e.Field, e.Value)
}
