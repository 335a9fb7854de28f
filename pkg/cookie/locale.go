package cookie

import (
	"net/http"
	"slices"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
)

// LocaleMaxAge is the lifetime of the locale cookie: 365 days.
const LocaleMaxAge = 365 * 24 * 60 * 60

// Locale persists the last resolved locale in a cookie.
type Locale struct {
	m             *Manager
	key           string
	enabled       bool
	codes         []string
	defaultLocale string
}

// NewLocale derives the locale cookie from cfg.DetectBrowserLanguage.
//
// Cross-origin cookies are sent with SameSite=None and Secure. Otherwise
// SameSite is Lax and Secure follows CookieSecure. The cookie is readable
// from scripts.
func NewLocale(cfg i18n.Config) *Locale {
	det := cfg.DetectBrowserLanguage

	sameSite := http.SameSiteLaxMode
	if det.CookieCrossOrigin {
		sameSite = http.SameSiteNoneMode
	}

	key := det.CookieKey
	if key == "" {
		key = i18n.DefaultCookieKey
	}

	return &Locale{
		m: New(
			WithPath("/"),
			WithDomain(det.CookieDomain),
			WithSecure(det.CookieCrossOrigin || det.CookieSecure),
			WithSameSite(sameSite),
			WithHTTPOnly(false),
		),
		key:           key,
		enabled:       det.Enabled && det.UseCookie,
		codes:         cfg.Codes(),
		defaultLocale: cfg.DefaultLocale,
	}
}

// Key returns the cookie name.
func (l *Locale) Key() string {
	return l.key
}

// Read returns the locale stored in the request cookie.
//
// A value that is not a configured locale is replaced with the default
// locale, or deleted when there is none. Returns "" when cookies are
// disabled or no cookie is set.
func (l *Locale) Read(w http.ResponseWriter, r *http.Request) string {
	if !l.enabled {
		return ""
	}

	v, err := l.m.Get(r, l.key)
	if err != nil {
		return ""
	}
	if slices.Contains(l.codes, v) {
		return v
	}

	if l.defaultLocale != "" {
		l.m.Set(w, l.key, l.defaultLocale, LocaleMaxAge)
		return l.defaultLocale
	}
	l.m.Delete(w, l.key)
	return ""
}

// Write stores locale. It is a no-op when cookies are disabled.
func (l *Locale) Write(w http.ResponseWriter, locale string) {
	if !l.enabled || locale == "" {
		return
	}
	l.m.Set(w, l.key, locale, LocaleMaxAge)
}
