package internal

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/i18nroutes/pkg/detect"
	"github.com/dmitrymomot/i18nroutes/pkg/localize"
)

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
// If nil, logging is disabled.
//
// Example:
//
//	log := logger.MustNew(logger.Config{Format: "text"}, middlewares.LocaleExtractor())
//	engine, err := i18nroutes.New(cfg, i18nroutes.WithLogger(log))
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithPagesFS sets the file system holding the page files. In page mode
// the route options declared in page front matter are read from it.
func WithPagesFS(fsys fs.FS) Option {
	return func(e *Engine) {
		e.pagesFS = fsys
	}
}

// WithResolver replaces the route options resolver derived from the
// configuration. A nil resolver localizes every route for every locale.
func WithResolver(r localize.Resolver) Option {
	return func(e *Engine) {
		e.resolver = r
		e.resolverSet = true
	}
}

// WithTracker sets the first-access tracker. Defaults to
// detect.AlwaysFirst, which runs detection on every request.
//
// Example:
//
//	store := cache.NewRedis[bool](client, nil, cache.WithPrefix("i18n"))
//	i18nroutes.WithTracker(detect.NewCacheTracker(store, 24*time.Hour))
func WithTracker(t detect.Tracker) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracker = t
		}
	}
}

// WithMetrics registers detection and redirect counters on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registerer = reg
	}
}

// WithRedirectStatus sets the status code of locale redirects and
// redirect routes. Defaults to 302.
func WithRedirectStatus(code int) Option {
	return func(e *Engine) {
		if code >= 300 && code < 400 {
			e.redirectStatus = code
		}
	}
}

// WithSessionSecret signs the visitor session cookie used for first-access
// tracking. Must be at least 32 bytes; shorter secrets are ignored.
func WithSessionSecret(secret string) Option {
	return func(e *Engine) {
		e.sessionSecret = secret
	}
}

// WithMiddleware adds middleware after the locale middleware.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(e *Engine) {
		e.middlewares = append(e.middlewares, mw...)
	}
}
