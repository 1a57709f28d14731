package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LevelEnv names the environment variable that overrides the log level.
const LevelEnv = "CALCFETTI_LOG_LEVEL"

// New builds a timestamped logger writing to writer.
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole builds a human-readable logger on stderr.
func NewConsole(level zerolog.Level) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}, level)
}

// LevelFromEnv reads LevelEnv, falling back to fallback when unset or invalid.
func LevelFromEnv(fallback zerolog.Level) zerolog.Level {
	value := strings.TrimSpace(os.Getenv(LevelEnv))
	if value == "" {
		return fallback
	}
	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		return fallback
	}
	return level
}

// Component tags every event of logger with the component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
