package i18nroutes

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/i18nroutes/internal"
	"github.com/dmitrymomot/i18nroutes/middlewares"
	"github.com/dmitrymomot/i18nroutes/pkg/detect"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/localize"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
	"github.com/dmitrymomot/i18nroutes/pkg/mount"
	"github.com/dmitrymomot/i18nroutes/pkg/redirect"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

// Type aliases - public API
type (
	// Engine localizes routes and serves them with locale detection.
	Engine = internal.Engine

	// Option configures the Engine.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// Config is the complete localization configuration.
	Config = i18n.Config

	// Locale describes one configured locale.
	Locale = i18n.Locale

	// Strategy decides how locales are encoded in route paths.
	Strategy = i18n.Strategy

	// Route is one entry of a route tree.
	Route = route.Node

	// RouteEntry is a flattened route with an absolute path.
	RouteEntry = route.Entry

	// HandlerFor returns the handler serving a localized route.
	HandlerFor = mount.HandlerFor

	// Resolver supplies per-route locale options during localization.
	Resolver = localize.Resolver

	// RouteOptions are the locales and custom paths of one route.
	RouteOptions = localize.RouteOptions

	// Tracker decides whether a visitor is on its first access.
	Tracker = detect.Tracker

	// DetectResult is the outcome of browser locale detection.
	DetectResult = detect.Result

	// RedirectOptions is the input of one redirect decision.
	RedirectOptions = redirect.Options

	// ContextExtractor extracts a slog attribute from context.
	// Used with the logger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Strategies.
const (
	NoPrefix            = i18n.NoPrefix
	Prefix              = i18n.Prefix
	PrefixExceptDefault = i18n.PrefixExceptDefault
	PrefixAndDefault    = i18n.PrefixAndDefault
)

// New validates cfg and creates an Engine.
//
// Example:
//
//	cfg, err := i18n.Load("i18n.yaml")
//	engine, err := i18nroutes.New(cfg,
//	    i18nroutes.WithLogger(log),
//	    i18nroutes.WithPagesFS(os.DirFS(".")),
//	)
//	h, err := engine.Handler(ctx, routes, handlerFor)
//	err = engine.Serve(h, i18nroutes.Address(":8080"))
func New(cfg Config, opts ...Option) (*Engine, error) {
	return internal.New(cfg, opts...)
}

// Defaults returns the default configuration.
func Defaults() Config {
	return i18n.Defaults()
}

// LoadConfig builds a validated Config from the defaults, the given files
// in order and the I18N_* environment. Later layers win.
func LoadConfig(files ...string) (Config, error) {
	return i18n.Load(files...)
}

// LocaleFromContext returns the locale resolved for the request.
func LocaleFromContext(ctx context.Context) (string, bool) {
	return middlewares.LocaleFromContext(ctx)
}

// LocaleExtractor adds the request locale to every log entry.
func LocaleExtractor() ContextExtractor {
	return middlewares.LocaleExtractor()
}

// RequestIDExtractor adds the request ID to every log entry.
func RequestIDExtractor() ContextExtractor {
	return middlewares.RequestIDExtractor()
}

// Engine options.

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option { return internal.WithLogger(l) }

// WithPagesFS sets the file system holding the page files.
func WithPagesFS(fsys fs.FS) Option { return internal.WithPagesFS(fsys) }

// WithResolver replaces the route options resolver.
func WithResolver(r Resolver) Option { return internal.WithResolver(r) }

// WithTracker sets the first-access tracker.
func WithTracker(t Tracker) Option { return internal.WithTracker(t) }

// WithMetrics registers detection and redirect counters on reg.
func WithMetrics(reg prometheus.Registerer) Option { return internal.WithMetrics(reg) }

// WithRedirectStatus sets the status code of redirects.
func WithRedirectStatus(code int) Option { return internal.WithRedirectStatus(code) }

// WithSessionSecret signs the visitor session cookie.
func WithSessionSecret(secret string) Option { return internal.WithSessionSecret(secret) }

// WithMiddleware adds middleware after the locale middleware.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return internal.WithMiddleware(mw...)
}

// Run options.

// Address sets the HTTP server address.
func Address(addr string) RunOption { return internal.Address(addr) }

// Logger overrides the server logger.
func Logger(l *slog.Logger) RunOption { return internal.Logger(l) }

// ShutdownTimeout sets the timeout for graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption { return internal.ShutdownTimeout(d) }

// ShutdownHook registers a cleanup function to run during shutdown.
func ShutdownHook(fn func(context.Context) error) RunOption { return internal.ShutdownHook(fn) }

// WithContext sets a custom base context for signal handling.
func WithContext(ctx context.Context) RunOption { return internal.WithContext(ctx) }
