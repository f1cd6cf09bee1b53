// Package logging builds the process-wide zerolog logger. A TUI owns the
// terminal, so logs go to a file (or nowhere), never to stdout.
package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Open returns a logger writing to the given file path, creating or
// appending as needed. An empty path yields a disabled logger.
func Open(path, level string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	log := zerolog.New(f).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return log, func() { _ = f.Close() }, nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
