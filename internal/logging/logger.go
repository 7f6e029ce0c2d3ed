package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the application logger. JSON to stdout by default;
// level comes from config ("debug", "info", "warn", ...).
func New(levelStr string) *zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(levelStr))); err == nil {
		level = parsed
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	base := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("app", "villaniva").
		Logger()

	return &base
}
