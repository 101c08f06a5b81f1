package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logging configuration.
type Config struct {
	Level  slog.Level
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
}

// FromEnv reads PLAYLINT_LOG_LEVEL and PLAYLINT_LOG_FORMAT.
func FromEnv() Config {
	return Config{
		Level:  ParseLevel(os.Getenv("PLAYLINT_LOG_LEVEL")),
		Format: ParseFormat(os.Getenv("PLAYLINT_LOG_FORMAT")),
		Output: os.Stderr,
	}
}

// New creates a logger for cfg.
func New(cfg Config) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses debug, info, warn or error. Unknown values mean warn so
// that only problems are reported by default.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseFormat parses text or json, defaulting to text.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// LevelForVerbosity maps a -v count onto a level: -v is info, -vv and more
// is debug. A non-zero base from the environment wins when it is lower.
func LevelForVerbosity(base slog.Level, verbosity int) slog.Level {
	level := base
	switch {
	case verbosity >= 2:
		level = min(level, slog.LevelDebug)
	case verbosity == 1:
		level = min(level, slog.LevelInfo)
	}
	return level
}
