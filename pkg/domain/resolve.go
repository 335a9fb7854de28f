package domain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
)

// Hosts returns the normalized hosts a locale is served on.
func Hosts(l i18n.Locale) []string {
	var out []string
	if l.Domain != "" {
		out = append(out, Normalize(l.Domain))
	}
	for _, d := range l.Domains {
		if h := Normalize(d); h != "" && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

// LocaleFor resolves the locale served on host.
//
// With a single matching locale its code is returned. When several
// locales share the host, no_prefix picks the first in configuration
// order and reports ErrAmbiguousDomain alongside the code; prefix
// strategies use the locale prefix of path, then the domain default.
// Returns "" when nothing matches.
func LocaleFor(locales []i18n.Locale, strategy i18n.Strategy, host, path string) (string, error) {
	host = Normalize(host)
	if host == "" {
		return "", nil
	}

	var matches []i18n.Locale
	for _, l := range locales {
		if slices.Contains(Hosts(l), host) {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0].Code, nil
	}

	if strategy == i18n.NoPrefix {
		return matches[0].Code, fmt.Errorf("%w: %s", ErrAmbiguousDomain, host)
	}

	if code := i18n.LocaleFromPath(path, i18n.Codes(matches)); code != "" {
		return code, nil
	}

	if l, ok := defaultFor(matches, host); ok {
		return l.Code, nil
	}
	return "", nil
}

func defaultFor(locales []i18n.Locale, host string) (i18n.Locale, bool) {
	for _, l := range locales {
		if slices.ContainsFunc(l.DefaultForDomains, func(d string) bool { return Normalize(d) == host }) {
			return l, true
		}
	}
	for _, l := range locales {
		if l.DomainDefault && len(l.DefaultForDomains) == 0 {
			return l, true
		}
	}
	return i18n.Locale{}, false
}

// DefaultLocaleFor returns the default locale of host: a locale listing
// the host in DefaultForDomains, then a domain-default locale served on
// the host, then the global default locale.
func DefaultLocaleFor(cfg i18n.Config, host string) string {
	host = Normalize(host)

	var served []i18n.Locale
	for _, l := range cfg.Locales {
		if slices.Contains(Hosts(l), host) || slices.ContainsFunc(l.DefaultForDomains, func(d string) bool { return Normalize(d) == host }) {
			served = append(served, l)
		}
	}
	if l, ok := defaultFor(served, host); ok {
		return l.Code
	}
	return cfg.DefaultLocale
}

// DomainFor returns the origin serving the locale code, e.g.
// "https://fr.example.com". When the locale lists several domains the
// current host is preferred.
func DomainFor(locales []i18n.Locale, code, host string, secure bool) (string, error) {
	l, ok := i18n.FindLocale(locales, code)
	if !ok {
		return "", fmt.Errorf("%w: unknown locale %q", ErrNoDomain, code)
	}

	raw := l.Domain
	if h := Normalize(host); h != "" {
		for _, d := range l.Domains {
			if Normalize(d) == h {
				raw = d
				break
			}
		}
	}
	if raw == "" && len(l.Domains) > 0 {
		raw = l.Domains[0]
	}
	if raw == "" {
		return "", fmt.Errorf("%w: %q", ErrNoDomain, code)
	}

	if strings.Contains(raw, "://") {
		return strings.TrimSuffix(raw, "/"), nil
	}
	scheme := "http"
	if secure {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimSuffix(raw, "/"), nil
}

// ValidateDistinct reports locales whose primary Domain is the same.
// Hosts shared through Domains lists are allowed; LocaleFor resolves them.
func ValidateDistinct(locales []i18n.Locale) error {
	owner := make(map[string]string)
	for _, l := range locales {
		if l.Domain == "" {
			continue
		}
		h := Normalize(l.Domain)
		if prev, ok := owner[h]; ok && prev != l.Code {
			return fmt.Errorf("%w: %q and %q both use %s", ErrDomainConflict, prev, l.Code, h)
		}
		owner[h] = l.Code
	}
	return nil
}
