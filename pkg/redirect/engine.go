package redirect

import (
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/localize"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

// Target is a navigation target.
type Target struct {
	Name     string
	Path     string
	FullPath string // path with query and hash; defaults to Path
	Params   map[string]string
}

func (t Target) fullPath() string {
	if t.FullPath != "" {
		return t.FullPath
	}
	return t.Path
}

// Options is the input of one redirect decision.
type Options struct {
	To          Target
	From        *Target
	Locale      string // locale to switch to
	RouteLocale string // locale embedded in To
	Strategy    i18n.Strategy
}

// Engine computes locale redirects. It never navigates.
// It is safe for concurrent use.
type Engine struct {
	cfg            i18n.Config
	opts           localize.Options
	getter         *LocaleGetter
	defaultLocales []string

	mu     sync.RWMutex
	byName map[string]string
}

// New creates an Engine. routes is the localized route table used for
// name-based resolution and may be nil.
func New(cfg i18n.Config, routes []route.Node) *Engine {
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

	e := &Engine{
		cfg:            cfg,
		opts:           localize.FromConfig(cfg),
		getter:         NewLocaleGetter(cfg),
		defaultLocales: cfg.DefaultLocales(),
	}
	e.SetRoutes(routes)
	return e
}

// SetRoutes replaces the route table.
func (e *Engine) SetRoutes(routes []route.Node) {
	byName := make(map[string]string)
	for _, entry := range route.Flatten(routes) {
		if entry.Node.Name != "" {
			byName[entry.Node.Name] = entry.Path
		}
	}

	e.mu.Lock()
	e.byName = byName
	e.mu.Unlock()
}

// Getter returns the locale getter of the engine.
func (e *Engine) Getter() *LocaleGetter {
	return e.getter
}

// DetectRedirect returns the path to redirect to so that To is served in
// Locale, or "" when no redirect is needed.
//
// With inMiddleware set, a redirect back to the page being navigated
// from is suppressed.
func (e *Engine) DetectRedirect(opts Options, inMiddleware bool) string {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = e.cfg.Strategy
	}

	switch {
	case strategy == i18n.NoPrefix,
		opts.Locale == "",
		opts.Locale == opts.RouteLocale,
		e.cfg.DifferentDomains:
		return ""
	}

	p := e.localePath(opts.To, opts.Locale, strategy)
	if p == "" || p == opts.To.fullPath() || strings.HasPrefix(p, "//") {
		return ""
	}
	if inMiddleware && opts.From != nil && opts.From.Path == p {
		return ""
	}
	return p
}

// LocalePath returns the path of to in locale under the configured
// strategy. Query and hash of to.FullPath are kept.
func (e *Engine) LocalePath(to Target, locale string) string {
	return e.localePath(to, locale, e.cfg.Strategy)
}

func (e *Engine) localePath(to Target, locale string, strategy i18n.Strategy) string {
	_, suffix := splitSuffix(to.fullPath())

	if to.Name != "" {
		if p, ok := e.byNamePath(to, locale, strategy); ok {
			return p + suffix
		}
	}

	p, _ := splitSuffix(to.Path)
	if p == "" {
		p, _ = splitSuffix(to.fullPath())
	}
	if p == "" {
		return ""
	}
	return e.byPath(p, locale, strategy) + suffix
}

func (e *Engine) byNamePath(to Target, locale string, strategy i18n.Strategy) (string, bool) {
	sep := e.opts.RoutesNameSeparator
	name := e.getter.BaseName(to.Name) + sep + locale
	if strategy == i18n.PrefixAndDefault && slices.Contains(e.defaultLocales, locale) {
		name += sep + e.opts.DefaultLocaleRouteNameSuffix
	}

	e.mu.RLock()
	pattern, ok := e.byName[name]
	e.mu.RUnlock()
	if !ok {
		return "", false
	}
	return Fill(pattern, to.Params)
}

func (e *Engine) byPath(p, locale string, strategy i18n.Strategy) string {
	if current := e.getter.FromPath(p); current != "" {
		p = "/" + strings.TrimPrefix(p[len(current)+1:], "/")
	}

	defaultLocale := e.cfg.DefaultLocale
	isDefault := slices.Contains(e.defaultLocales, locale)
	if isDefault {
		defaultLocale = locale
	}

	opts := e.opts
	opts.Strategy = strategy
	extra := strategy == i18n.PrefixAndDefault && isDefault
	if opts.Prefixable(p, locale, defaultLocale, false, extra) {
		p = path.Join("/", locale, p)
	}
	return localize.AdjustTrailingSlash(p, e.cfg.TrailingSlash, false)
}

// splitSuffix separates a path from its query and hash.
func splitSuffix(full string) (string, string) {
	if i := strings.IndexAny(full, "?#"); i >= 0 {
		return full[:i], full[i:]
	}
	return full, ""
}
