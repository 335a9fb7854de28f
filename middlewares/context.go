package middlewares

import (
	"context"

	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

type localeKey struct{}

// WithLocale returns a copy of ctx carrying locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale resolved by the Locale middleware.
func LocaleFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(localeKey{}).(string)
	return v, ok && v != ""
}

// LocaleExtractor adds "locale" to every log entry.
func LocaleExtractor() logger.ContextExtractor {
	return logger.StringExtractor("locale", LocaleFromContext)
}
