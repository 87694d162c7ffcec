// Package logging builds the zerolog loggers used across gridterm and carries
// them in context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Environment variables read by NewFromEnv.
const (
	EnvLogLevel  = "GRIDTERM_LOG_LEVEL"
	EnvLogFormat = "GRIDTERM_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Extra receives a JSON copy of every entry (e.g. a session log file).
	Extra io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}
	if cfg.Extra != nil {
		output = zerolog.MultiLevelWriter(output, cfg.Extra)
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name. Unknown names report false.
func ParseLevel(level string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

// NewFromConfigValues creates a logger from textual level and format values,
// falling back to defaults for anything unrecognized.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(ConfigFromValues(level, format))
}

// ConfigFromValues builds a Config from textual level and format values.
func ConfigFromValues(level, format string) Config {
	cfg := DefaultConfig()
	if lvl, ok := ParseLevel(level); ok {
		cfg.Level = lvl
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return cfg
}

// NewFromEnv creates a logger based on environment variables
// GRIDTERM_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// GRIDTERM_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv(EnvLogLevel), os.Getenv(EnvLogFormat))
}
