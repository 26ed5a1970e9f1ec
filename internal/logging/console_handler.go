package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Static errors for ConsoleHandler validation
var (
	ErrConsoleHandlerWriterRequired    = errors.New("ConsoleHandler: Writer is required")
	ErrConsoleHandlerFormatterRequired = errors.New("ConsoleHandler: Formatter is required")
)

// ConsoleHandler is a slog handler that writes human-readable lines to a
// terminal, coloring level tags through the colorize package when UseColor
// is set.
type ConsoleHandler struct {
	formatter MessageFormatter
	writer    io.Writer
	level     slog.Level
	useColor  bool
	attrs     []slog.Attr
	groups    []string
}

// ConsoleHandlerOptions configures the ConsoleHandler.
type ConsoleHandlerOptions struct {
	// Level is the minimum log level to handle
	Level slog.Level

	// Writer is the output destination (typically os.Stderr)
	Writer io.Writer

	// Formatter handles message formatting and coloring
	Formatter MessageFormatter

	// UseColor enables ANSI escapes in the formatted output
	UseColor bool
}

// NewConsoleHandler creates a new ConsoleHandler with the given options.
// Returns an error if any required options are missing.
func NewConsoleHandler(opts ConsoleHandlerOptions) (*ConsoleHandler, error) {
	if opts.Writer == nil {
		return nil, ErrConsoleHandlerWriterRequired
	}
	if opts.Formatter == nil {
		return nil, ErrConsoleHandlerFormatterRequired
	}

	return &ConsoleHandler{
		formatter: opts.Formatter,
		writer:    opts.Writer,
		level:     opts.Level,
		useColor:  opts.UseColor,
	}, nil
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle processes a log record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	// Create a copy of the record and apply accumulated context
	record := r.Clone()

	// Apply group context to attributes by prefixing keys
	attrs := h.attrs
	if len(h.groups) > 0 {
		prefix := ""
		for _, group := range h.groups {
			if prefix != "" {
				prefix += "."
			}
			prefix += group
		}
		prefix += "."

		prefixedAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			prefixedAttrs[i] = slog.Attr{
				Key:   prefix + attr.Key,
				Value: attr.Value,
			}
		}
		attrs = prefixedAttrs
	}

	record.AddAttrs(attrs...)

	message := h.formatter.FormatRecord(record, h.useColor)

	_, err := h.writer.Write([]byte(message + "\n"))
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &ConsoleHandler{
		formatter: h.formatter,
		writer:    h.writer,
		level:     h.level,
		useColor:  h.useColor,
		attrs:     newAttrs,
		groups:    h.groups,
	}
}

// WithGroup returns a new handler with an additional group.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name

	return &ConsoleHandler{
		formatter: h.formatter,
		writer:    h.writer,
		level:     h.level,
		useColor:  h.useColor,
		attrs:     h.attrs,
		groups:    newGroups,
	}
}
