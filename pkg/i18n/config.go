package i18n

import (
	"errors"
	"fmt"
	"slices"
)

// Config is the complete localization configuration.
type Config struct {
	Strategy                     Strategy              `json:"strategy" yaml:"strategy"`
	Locales                      []Locale              `json:"locales" yaml:"locales"`
	DefaultLocale                string                `json:"defaultLocale" yaml:"defaultLocale"`
	RoutesNameSeparator          string                `json:"routesNameSeparator" yaml:"routesNameSeparator"`
	DefaultLocaleRouteNameSuffix string                `json:"defaultLocaleRouteNameSuffix" yaml:"defaultLocaleRouteNameSuffix"`
	TrailingSlash                bool                  `json:"trailingSlash" yaml:"trailingSlash"`
	PrefixDefaultLocales         []string              `json:"prefixDefaultLocales,omitempty" yaml:"prefixDefaultLocales,omitempty"`
	DifferentDomains             bool                  `json:"differentDomains" yaml:"differentDomains"`
	MultiDomainLocales           bool                  `json:"multiDomainLocales" yaml:"multiDomainLocales"`
	IncludeUnprefixedFallback    bool                  `json:"includeUnprefixedFallback" yaml:"includeUnprefixedFallback"`
	CustomRoutes                 CustomRoutes          `json:"customRoutes" yaml:"customRoutes"`
	Pages                        map[string]PageConfig `json:"pages,omitempty" yaml:"pages,omitempty"`
	PagesDir                     string                `json:"pagesDir" yaml:"pagesDir"`
	DetectBrowserLanguage        Detection             `json:"detectBrowserLanguage" yaml:"detectBrowserLanguage"`
	BaseURL                      string                `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	IsSSG                        bool                  `json:"isSSG" yaml:"isSSG"`
	Debug                        bool                  `json:"debug" yaml:"debug"`
}

// Defaults returns the configuration used when a layer leaves a key unset.
func Defaults() Config {
	return Config{
		Strategy:                     PrefixExceptDefault,
		RoutesNameSeparator:          "___",
		DefaultLocaleRouteNameSuffix: "default",
		CustomRoutes:                 CustomRoutesPage,
		PagesDir:                     "pages",
		DetectBrowserLanguage: Detection{
			Enabled:    true,
			UseCookie:  true,
			CookieKey:  DefaultCookieKey,
			RedirectOn: RedirectOnRoot,
		},
	}
}

// Validate reports every problem in the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if !c.Strategy.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidStrategy, c.Strategy))
	}
	if !c.CustomRoutes.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidCustomRoutes, c.CustomRoutes))
	}
	if c.DetectBrowserLanguage.Enabled && !c.DetectBrowserLanguage.RedirectOn.Valid() {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidRedirectOn, c.DetectBrowserLanguage.RedirectOn))
	}

	if len(c.Locales) == 0 {
		errs = append(errs, ErrNoLocales)
	}

	seen := make(map[string]bool, len(c.Locales))
	for i, l := range c.Locales {
		if l.Code == "" {
			errs = append(errs, fmt.Errorf("%w: locales[%d]", ErrEmptyLocaleCode, i))
			continue
		}
		if seen[l.Code] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateLocale, l.Code))
		}
		seen[l.Code] = true
	}

	if c.DefaultLocale != "" && !seen[c.DefaultLocale] {
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDefaultLocale, c.DefaultLocale))
	}

	return errors.Join(errs...)
}

// Codes returns the configured locale codes in order.
func (c Config) Codes() []string {
	return Codes(c.Locales)
}

// DefaultLocales returns the locales treated as default when localizing:
// the default locale plus, with different domains, every domain default.
func (c Config) DefaultLocales() []string {
	var out []string
	if c.DefaultLocale != "" {
		out = append(out, c.DefaultLocale)
	}
	if c.DifferentDomains {
		for _, l := range c.Locales {
			if l.DomainDefault && !slices.Contains(out, l.Code) {
				out = append(out, l.Code)
			}
		}
	}
	return out
}
