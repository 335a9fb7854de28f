package i18n

import (
	"maps"
	"slices"
)

// Overrides is one configuration layer. Nil pointers and nil slices
// leave the lower layer untouched.
type Overrides struct {
	Strategy                     *Strategy             `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Locales                      []Locale              `json:"locales,omitempty" yaml:"locales,omitempty"`
	DefaultLocale                *string               `json:"defaultLocale,omitempty" yaml:"defaultLocale,omitempty"`
	RoutesNameSeparator          *string               `json:"routesNameSeparator,omitempty" yaml:"routesNameSeparator,omitempty"`
	DefaultLocaleRouteNameSuffix *string               `json:"defaultLocaleRouteNameSuffix,omitempty" yaml:"defaultLocaleRouteNameSuffix,omitempty"`
	TrailingSlash                *bool                 `json:"trailingSlash,omitempty" yaml:"trailingSlash,omitempty"`
	PrefixDefaultLocales         []string              `json:"prefixDefaultLocales,omitempty" yaml:"prefixDefaultLocales,omitempty"`
	DifferentDomains             *bool                 `json:"differentDomains,omitempty" yaml:"differentDomains,omitempty"`
	MultiDomainLocales           *bool                 `json:"multiDomainLocales,omitempty" yaml:"multiDomainLocales,omitempty"`
	IncludeUnprefixedFallback    *bool                 `json:"includeUnprefixedFallback,omitempty" yaml:"includeUnprefixedFallback,omitempty"`
	CustomRoutes                 *CustomRoutes         `json:"customRoutes,omitempty" yaml:"customRoutes,omitempty"`
	Pages                        map[string]PageConfig `json:"pages,omitempty" yaml:"pages,omitempty"`
	PagesDir                     *string               `json:"pagesDir,omitempty" yaml:"pagesDir,omitempty"`
	DetectBrowserLanguage        *DetectionOverrides   `json:"detectBrowserLanguage,omitempty" yaml:"detectBrowserLanguage,omitempty"`
	BaseURL                      *string               `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	IsSSG                        *bool                 `json:"isSSG,omitempty" yaml:"isSSG,omitempty"`
	Debug                        *bool                 `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// Merge applies layers on top of base in order; the last layer wins per key.
//
// Locales merge by code: a later layer updates the fields it sets on an
// existing locale (its files are prepended) and appends unknown codes.
// Pages merge by page key. The base is never modified.
func Merge(base Config, layers ...Overrides) Config {
	out := base
	out.Locales = slices.Clone(base.Locales)
	out.PrefixDefaultLocales = slices.Clone(base.PrefixDefaultLocales)
	out.Pages = maps.Clone(base.Pages)

	for _, l := range layers {
		setIf(&out.Strategy, l.Strategy)
		setIf(&out.DefaultLocale, l.DefaultLocale)
		setIf(&out.RoutesNameSeparator, l.RoutesNameSeparator)
		setIf(&out.DefaultLocaleRouteNameSuffix, l.DefaultLocaleRouteNameSuffix)
		setIf(&out.TrailingSlash, l.TrailingSlash)
		setIf(&out.DifferentDomains, l.DifferentDomains)
		setIf(&out.MultiDomainLocales, l.MultiDomainLocales)
		setIf(&out.IncludeUnprefixedFallback, l.IncludeUnprefixedFallback)
		setIf(&out.CustomRoutes, l.CustomRoutes)
		setIf(&out.PagesDir, l.PagesDir)
		setIf(&out.BaseURL, l.BaseURL)
		setIf(&out.IsSSG, l.IsSSG)
		setIf(&out.Debug, l.Debug)

		if l.PrefixDefaultLocales != nil {
			out.PrefixDefaultLocales = slices.Clone(l.PrefixDefaultLocales)
		}
		if l.Pages != nil {
			if out.Pages == nil {
				out.Pages = make(map[string]PageConfig, len(l.Pages))
			}
			maps.Copy(out.Pages, l.Pages)
		}
		out.Locales = mergeLocales(out.Locales, l.Locales)
		out.DetectBrowserLanguage = out.DetectBrowserLanguage.apply(l.DetectBrowserLanguage)
	}

	return out
}

func mergeLocales(base, layer []Locale) []Locale {
	for _, l := range layer {
		i := slices.IndexFunc(base, func(b Locale) bool { return b.Code == l.Code })
		if i < 0 {
			base = append(base, l)
			continue
		}
		base[i] = mergeLocale(base[i], l)
	}
	return base
}

func mergeLocale(base, l Locale) Locale {
	out := base
	if l.Language != "" {
		out.Language = l.Language
	}
	if l.Name != "" {
		out.Name = l.Name
	}
	if l.Dir != "" {
		out.Dir = l.Dir
	}
	if l.Domain != "" {
		out.Domain = l.Domain
	}
	if l.Domains != nil {
		out.Domains = slices.Clone(l.Domains)
	}
	if l.DomainDefault {
		out.DomainDefault = true
	}
	if l.DefaultForDomains != nil {
		out.DefaultForDomains = slices.Clone(l.DefaultForDomains)
	}
	if len(l.Files) > 0 {
		out.Files = append(slices.Clone(l.Files), base.Files...)
	}
	return out
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
