// Package logging builds the zerolog logger used for diagnostics on stderr.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps diagnostics quiet unless something needs attention.
const DefaultLevel = zerolog.WarnLevel

// ParseLevel maps a level name to a zerolog level, falling back to DefaultLevel.
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}
	return zerolog.New(console).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("component", "procwatch").
		Logger()
}
