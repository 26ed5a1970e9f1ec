package colorize

import "fmt"

// UnknownColorError reports a color reference that does not match any
// registered color name. Input preserves the value as supplied by the
// caller, before normalization.
type UnknownColorError struct {
	Input string
}

// Error implements the error interface.
func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color: %q", e.Input)
}

// Is reports whether target is an UnknownColorError, so callers can match
// with errors.Is without knowing the offending input.
func (e *UnknownColorError) Is(target error) bool {
	_, ok := target.(*UnknownColorError)
	return ok
}
