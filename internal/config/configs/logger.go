package configs

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger configures the service's slog handler. Level takes slog level
// names with optional offsets ("debug", "WARN", "info+2"). Format is "text"
// or "json". AddSource annotates each record with its call site.
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// Validate rejects levels slog cannot parse and unknown formats.
func (c Logger) Validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT: unknown format %q", c.Format)
	}
}

// SlogLevel returns the parsed level, or info when Level is invalid.
func (c Logger) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// NewHandler builds the handler every service log line goes through.
func (c Logger) NewHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if strings.EqualFold(c.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
