package logging

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jblib/jblib-go/colorize"
)

// MessageFormatter turns log records into console lines with optional color
// support.
type MessageFormatter interface {
	// FormatRecord formats a log record as a single line without a trailing
	// newline.
	FormatRecord(record slog.Record, useColor bool) string
}

// DefaultMessageFormatter renders records as "timestamp level message
// key=value ...", marking each level with a symbol so lines stay readable
// even when color is off.
type DefaultMessageFormatter struct{}

// NewDefaultMessageFormatter creates a new DefaultMessageFormatter.
func NewDefaultMessageFormatter() *DefaultMessageFormatter {
	return &DefaultMessageFormatter{}
}

// FormatRecord formats a log record as a single line.
func (f *DefaultMessageFormatter) FormatRecord(record slog.Record, useColor bool) string {
	var sb strings.Builder

	if !record.Time.IsZero() {
		sb.WriteString(record.Time.Format("2006-01-02 15:04:05"))
		sb.WriteString(" ")
	}

	sb.WriteString(f.formatLevel(record.Level, useColor))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	if record.NumAttrs() > 0 {
		sb.WriteString(" ")
		f.appendAttrs(&sb, record)
	}

	return sb.String()
}

// formatLevel formats the log level with visual distinction.
func (f *DefaultMessageFormatter) formatLevel(level slog.Level, useColor bool) string {
	if useColor {
		switch level {
		case slog.LevelDebug:
			return paint(colorize.Fg["BRIGHT_BLACK"], "* DEBUG")
		case slog.LevelInfo:
			return paint(colorize.Fg["GREEN"], "+ INFO ")
		case slog.LevelWarn:
			return paint(colorize.Fg["YELLOW"], "! WARN ")
		case slog.LevelError:
			return paint(colorize.Fg["RED"], "X ERROR")
		default:
			return paint(colorize.Fg["BRIGHT_BLACK"], "> "+level.String())
		}
	}

	switch level {
	case slog.LevelDebug:
		return "[DEBUG]"
	case slog.LevelInfo:
		return "[INFO ]"
	case slog.LevelWarn:
		return "[WARN ]"
	case slog.LevelError:
		return "[ERROR]"
	default:
		return "[" + strings.ToUpper(level.String()) + "]"
	}
}

// paint wraps s in the given foreground escape and a trailing reset.
func paint(escape, s string) string {
	return escape + s + colorize.Reset
}

// appendAttrs appends log record attributes to the string builder.
func (f *DefaultMessageFormatter) appendAttrs(sb *strings.Builder, record slog.Record) {
	first := true
	record.Attrs(func(attr slog.Attr) bool {
		if !first {
			sb.WriteString(" ")
		}
		first = false
		sb.WriteString(attr.Key)
		sb.WriteString("=")
		sb.WriteString(f.formatValue(attr.Value))
		return true
	})
}

// formatValue formats a slog.Value for display.
func (f *DefaultMessageFormatter) formatValue(value slog.Value) string {
	switch value.Kind() {
	case slog.KindString:
		return value.String()
	case slog.KindTime:
		return value.Time().Format(time.RFC3339)
	case slog.KindDuration:
		return value.Duration().String()
	case slog.KindGroup:
		attrs := value.Group()
		if len(attrs) == 0 {
			return "{}"
		}
		var parts []string
		for _, attr := range attrs {
			parts = append(parts, attr.Key+"="+f.formatValue(attr.Value))
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return value.String()
	}
}
