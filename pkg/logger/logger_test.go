package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

type ctxKey struct{}

func localeFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	return v, ok
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Output: &buf, Level: "debug"},
		logger.StringExtractor("locale", localeFrom),
	)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), ctxKey{}, "fr")
	log.DebugContext(ctx, "detected", slog.String("from", "cookie"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "detected", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "fr", rec["locale"])
	assert.Equal(t, "cookie", rec["from"])
}

func TestNew_SkipsEmptyExtractedValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Output: &buf}, logger.StringExtractor("locale", localeFrom), nil)
	require.NoError(t, err)

	log.InfoContext(context.Background(), "no locale")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.NotContains(t, rec, "locale")
}

func TestNew_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Output: &buf, Format: logger.FormatText, NoColor: true})
	require.NoError(t, err)

	log.Info("routes localized", slog.Int("output", 4))
	assert.Contains(t, buf.String(), "routes localized")
	assert.Contains(t, buf.String(), "output=4")
}

func TestNew_Level(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Output: &buf, Level: "warn"})
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	_, err := logger.New(logger.Config{Format: "xml"})
	require.ErrorIs(t, err, logger.ErrInvalidFormat)

	_, err = logger.New(logger.Config{Level: "loud"})
	require.ErrorIs(t, err, logger.ErrInvalidLevel)

	assert.Panics(t, func() { logger.MustNew(logger.Config{Level: "loud"}) })
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	log.Error("discarded")
}
