package localize

import (
	"errors"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/domain"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

// Options drives one localization pass.
type Options struct {
	Strategy                     i18n.Strategy
	Locales                      []i18n.Locale
	DefaultLocale                string
	RoutesNameSeparator          string
	DefaultLocaleRouteNameSuffix string
	TrailingSlash                bool
	PrefixDefaultLocales         []string
	DifferentDomains             bool
	MultiDomainLocales           bool
	IncludeUnprefixedFallback    bool

	// Resolver narrows locales and overrides paths per route.
	// Nil accepts every route for every locale.
	Resolver Resolver

	Logger *slog.Logger
}

// FromConfig derives localization options from a configuration.
// The resolver is left unset.
func FromConfig(cfg i18n.Config) Options {
	return Options{
		Strategy:                     cfg.Strategy,
		Locales:                      cfg.Locales,
		DefaultLocale:                cfg.DefaultLocale,
		RoutesNameSeparator:          cfg.RoutesNameSeparator,
		DefaultLocaleRouteNameSuffix: cfg.DefaultLocaleRouteNameSuffix,
		TrailingSlash:                cfg.TrailingSlash,
		PrefixDefaultLocales:         cfg.PrefixDefaultLocales,
		DifferentDomains:             cfg.DifferentDomains,
		MultiDomainLocales:           cfg.MultiDomainLocales,
		IncludeUnprefixedFallback:    cfg.IncludeUnprefixedFallback,
	}
}

func (o Options) withDefaults() Options {
	d := i18n.Defaults()
	if o.Strategy == "" {
		o.Strategy = d.Strategy
	}
	if o.RoutesNameSeparator == "" {
		o.RoutesNameSeparator = d.RoutesNameSeparator
	}
	if o.DefaultLocaleRouteNameSuffix == "" {
		o.DefaultLocaleRouteNameSuffix = d.DefaultLocaleRouteNameSuffix
	}
	if o.Logger == nil {
		o.Logger = logger.NewNope()
	}
	return o
}

// defaultLocales returns the default locale plus, with different
// domains, every domain-default locale.
func (o Options) defaultLocales() []string {
	cfg := i18n.Config{
		Locales:          o.Locales,
		DefaultLocale:    o.DefaultLocale,
		DifferentDomains: o.DifferentDomains,
	}
	return cfg.DefaultLocales()
}

// ShouldLocalize reports whether a pass would change the routes.
// no_prefix without different domains is a no-op. no_prefix with
// different domains requires distinct domains and otherwise returns
// ErrDomainConflict.
func ShouldLocalize(o Options) (bool, error) {
	if o.Strategy != i18n.NoPrefix {
		return true, nil
	}
	if !o.DifferentDomains {
		return false, nil
	}
	if err := domain.ValidateDistinct(o.Locales); err != nil {
		return false, errors.Join(ErrDomainConflict, err)
	}
	return true, nil
}

// Prefixable reports whether a route path receives the locale prefix.
// child marks routes nested under a parent; extra marks the unprefixed
// default tree of prefix_and_default.
func (o Options) Prefixable(p, locale, defaultLocale string, child, extra bool) bool {
	isDefault := locale == defaultLocale && !slices.Contains(o.PrefixDefaultLocales, locale)
	relativeChild := child && !strings.HasPrefix(p, "/")

	return !extra &&
		!relativeChild &&
		o.Strategy != i18n.NoPrefix &&
		!(isDefault && o.Strategy == i18n.PrefixExceptDefault)
}

// AdjustTrailingSlash normalizes the trailing slash of a route path.
// An emptied path becomes "/" unless it belongs to a relative child.
func AdjustTrailingSlash(p string, trailing, relativeChild bool) string {
	p = strings.TrimRight(p, "/")
	if trailing {
		p += "/"
	}
	if p == "" && !relativeChild {
		return "/"
	}
	return p
}

func prefixPath(locale, p string) string {
	return path.Join("/", locale, p)
}
