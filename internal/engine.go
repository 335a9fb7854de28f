package internal

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/i18nroutes/middlewares"
	"github.com/dmitrymomot/i18nroutes/pkg/cache"
	"github.com/dmitrymomot/i18nroutes/pkg/cookie"
	"github.com/dmitrymomot/i18nroutes/pkg/detect"
	"github.com/dmitrymomot/i18nroutes/pkg/domain"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/localize"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
	"github.com/dmitrymomot/i18nroutes/pkg/mount"
	"github.com/dmitrymomot/i18nroutes/pkg/redirect"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// Engine ties route localization, locale detection and redirects
// together. It is immutable after creation except for its route table,
// which every LocalizeRoutes call replaces.
type Engine struct {
	cfg            i18n.Config
	opts           localize.Options
	pathStore      *cache.Memory[string]
	detector       *detect.Detector
	redirects      *redirect.Engine
	localeCookie   *cookie.Locale
	session        *cookie.Manager
	tracker        detect.Tracker
	metrics        *middlewares.Metrics
	logger         *slog.Logger
	pagesFS        fs.FS
	resolver       localize.Resolver
	resolverSet    bool
	registerer     prometheus.Registerer
	redirectStatus int
	sessionSecret  string
	middlewares    []func(http.Handler) http.Handler
}

// New validates cfg and creates an Engine.
//
// cfg is used as given apart from empty names and separators, which take
// their defaults; build it with i18n.Load or start from i18n.Defaults().
func New(cfg i18n.Config, opts ...Option) (*Engine, error) {
	cfg = withDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid i18n config: %w", err)
	}

	e := &Engine{
		cfg:            cfg,
		logger:         logger.NewNope(),
		redirectStatus: http.StatusFound,
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.resolverSet {
		e.pathStore = cache.NewMemory[string](cache.WithCleanupInterval(0))
		e.resolver = localize.NewResolver(cfg, e.pagesFS, segment.NewResolver(e.pathStore))
	}

	e.opts = localize.FromConfig(cfg)
	e.opts.Resolver = e.resolver
	e.opts.Logger = e.logger

	e.detector = detect.New(cfg, detect.WithLogger(e.logger))
	e.redirects = redirect.New(cfg, nil)
	e.localeCookie = cookie.NewLocale(cfg)
	e.session = cookie.New(
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSecure(cfg.DetectBrowserLanguage.CookieSecure),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithSecret(e.sessionSecret),
	)
	if e.tracker == nil {
		e.tracker = detect.AlwaysFirst{}
	}
	if e.registerer != nil {
		e.metrics = middlewares.NewMetrics(e.registerer)
	}

	return e, nil
}

func withDefaults(cfg i18n.Config) i18n.Config {
	d := i18n.Defaults()
	if cfg.Strategy == "" {
		cfg.Strategy = d.Strategy
	}
	if cfg.RoutesNameSeparator == "" {
		cfg.RoutesNameSeparator = d.RoutesNameSeparator
	}
	if cfg.DefaultLocaleRouteNameSuffix == "" {
		cfg.DefaultLocaleRouteNameSuffix = d.DefaultLocaleRouteNameSuffix
	}
	if cfg.CustomRoutes == "" {
		cfg.CustomRoutes = d.CustomRoutes
	}
	if cfg.PagesDir == "" {
		cfg.PagesDir = d.PagesDir
	}
	if cfg.DetectBrowserLanguage.CookieKey == "" {
		cfg.DetectBrowserLanguage.CookieKey = d.DetectBrowserLanguage.CookieKey
	}
	if cfg.DetectBrowserLanguage.RedirectOn == "" {
		cfg.DetectBrowserLanguage.RedirectOn = d.DetectBrowserLanguage.RedirectOn
	}
	return cfg
}

// Config returns the effective configuration.
func (e *Engine) Config() i18n.Config {
	return e.cfg
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Detector returns the browser locale detector.
func (e *Engine) Detector() *detect.Detector {
	return e.detector
}

// Redirects returns the redirect engine. Its route table is the result
// of the last LocalizeRoutes call.
func (e *Engine) Redirects() *redirect.Engine {
	return e.redirects
}

// LocalizeRoutes builds the localized route tree and makes it the route
// table for name-based redirects. The input is not modified.
func (e *Engine) LocalizeRoutes(ctx context.Context, routes []route.Node) ([]route.Node, error) {
	localized, err := localize.Localize(ctx, routes, e.opts)
	if err != nil {
		return nil, fmt.Errorf("localize routes: %w", err)
	}
	e.redirects.SetRoutes(localized)

	e.logger.InfoContext(ctx, "route table updated",
		slog.Int("routes", len(routes)),
		slog.Int("localized", len(localized)),
		slog.String("strategy", string(e.cfg.Strategy)),
	)
	return localized, nil
}

// Middleware returns the locale detection and redirect middleware.
func (e *Engine) Middleware() func(http.Handler) http.Handler {
	return middlewares.Locale(middlewares.LocaleConfig{
		Config:         e.cfg,
		Detector:       e.detector,
		Redirects:      e.redirects,
		Cookie:         e.localeCookie,
		Tracker:        e.tracker,
		Session:        e.session,
		RedirectStatus: e.redirectStatus,
		Metrics:        e.metrics,
		Logger:         e.logger,
	})
}

// Handler localizes routes and mounts them on a chi router behind the
// locale middleware. With different domains every configured host gets
// its own router, where the host's default locale is served unprefixed.
func (e *Engine) Handler(ctx context.Context, routes []route.Node, handlerFor mount.HandlerFor) (http.Handler, error) {
	localized, err := e.LocalizeRoutes(ctx, routes)
	if err != nil {
		return nil, err
	}

	if !e.cfg.DifferentDomains {
		return e.router(localized, handlerFor)
	}

	hosts := make(domain.Routes)
	for _, l := range e.cfg.Locales {
		for _, host := range domain.Hosts(l) {
			if _, ok := hosts[host]; ok {
				continue
			}
			h, err := e.router(e.hostRoutes(localized, host), handlerFor)
			if err != nil {
				return nil, fmt.Errorf("host %q: %w", host, err)
			}
			hosts[host] = h
		}
	}

	fallback, err := e.router(localized, handlerFor)
	if err != nil {
		return nil, err
	}
	return domain.NewRouter(hosts, fallback), nil
}

// hostRoutes keeps the routes of the locales served on host. The host's
// default locale takes over the unprefixed duplicates.
func (e *Engine) hostRoutes(localized []route.Node, host string) []route.Node {
	pruned := domain.PruneDefaultRoutes(
		localized,
		domain.DefaultLocaleFor(e.cfg, host),
		e.cfg.RoutesNameSeparator,
		e.cfg.DefaultLocaleRouteNameSuffix,
	)

	var served []string
	for _, l := range e.cfg.Locales {
		if slices.Contains(domain.Hosts(l), host) {
			served = append(served, l.Code)
		}
	}

	getter := e.redirects.Getter()
	out := make([]route.Node, 0, len(pruned))
	for _, n := range pruned {
		if locale := getter.FromName(n.Name); locale == "" || slices.Contains(served, locale) {
			out = append(out, n)
		}
	}
	return out
}

func (e *Engine) router(routes []route.Node, handlerFor mount.HandlerFor) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(middlewares.WithRecoverLogger(e.logger)),
		e.Middleware(),
	)
	r.Use(e.middlewares...)

	if err := mount.Mount(r, routes, handlerFor,
		mount.WithRedirectStatus(e.redirectStatus),
		mount.WithLogger(e.logger),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// SwitchLocalePath returns the URL of the current request in locale.
// With different domains the result is an absolute URL on the locale's
// domain.
func (e *Engine) SwitchLocalePath(r *http.Request, locale string) (string, error) {
	to := redirect.Target{Path: r.URL.Path, FullPath: r.URL.RequestURI()}

	if !e.cfg.DifferentDomains {
		return e.redirects.LocalePath(to, locale), nil
	}

	origin, err := domain.DomainFor(e.cfg.Locales, locale, domain.Host(r), r.TLS != nil)
	if err != nil {
		return "", err
	}
	return origin + to.FullPath, nil
}

// Close releases the engine caches.
func (e *Engine) Close() error {
	if e.pathStore == nil {
		return nil
	}
	return e.pathStore.Close()
}
