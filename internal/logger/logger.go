// Package logger builds the zerolog loggers used by the varpad CLI.
package logger

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// New returns a timestamped logger writing to w at level.
// A nil w discards everything.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("service", "varpad").Logger()
}

// ParseLevel accepts zerolog level names; "" means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, errors.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}
