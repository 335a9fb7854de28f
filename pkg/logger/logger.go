package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

var (
	ErrInvalidLevel  = errors.New("logger: invalid level")
	ErrInvalidFormat = errors.New("logger: invalid format")
)

// Config selects the log output.
type Config struct {
	// Format is "json" (default) or "text". Text output is colorized for
	// terminals.
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	// NoColor disables colors in text output.
	NoColor bool `env:"LOG_NO_COLOR"`
	// Output defaults to os.Stdout.
	Output io.Writer `env:"-"`

	Sentry SentryConfig
}

// New creates a logger from cfg. Context extractors add request-scoped
// attributes to every record. When a Sentry DSN is set, warnings and
// errors are also sent to Sentry.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatJSON:
		h = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case FormatText:
		h = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.NoColor,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	if cfg.Sentry.DSN != "" {
		sh, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			// Keep logging locally when Sentry cannot start.
			slog.New(h).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		} else {
			h = fanout(h, sh)
		}
	}

	return slog.New(NewLogHandlerDecorator(h, extractors...)), nil
}

// MustNew is New that panics on an invalid configuration.
func MustNew(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	l, err := New(cfg, extractors...)
	if err != nil {
		panic(err)
	}
	return l
}

// ParseLevel parses "debug", "info", "warn" or "error".
// An empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}
