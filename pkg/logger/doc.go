// Package logger builds slog loggers with context extraction, optional
// colorized text output and Sentry reporting.
//
//	log, err := logger.New(logger.Config{Format: logger.FormatText, Level: "debug"},
//		logger.StringExtractor("locale", middlewares.LocaleFromContext),
//	)
//
// JSON is the default format. Text output goes through tint. With a
// Sentry DSN, errors create Sentry issues and warnings are kept as logs;
// if Sentry fails to start, logging continues locally.
//
// NewNope returns a logger that discards everything. Components use it
// when no logger is configured.
package logger
