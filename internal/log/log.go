// Package log configures structured logging for turbodash using log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log record encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a --log-format value. The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid log format %q (must be text or json)", s)
}

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output is written to stderr.
func Setup(verbose, quiet bool, format Format) {
	SetupWriter(os.Stderr, verbose, quiet, format)
}

// SetupWriter is Setup writing to w.
func SetupWriter(w io.Writer, verbose, quiet bool, format Format) {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
