package middlewares

import (
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/i18nroutes/pkg/cookie"
	"github.com/dmitrymomot/i18nroutes/pkg/detect"
	"github.com/dmitrymomot/i18nroutes/pkg/domain"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
	"github.com/dmitrymomot/i18nroutes/pkg/redirect"
)

// DefaultSessionCookie names the cookie holding the visitor session id
// used for first-access tracking.
const DefaultSessionCookie = "i18n_session"

// sessionMaxAge keeps the session id for 30 days.
const sessionMaxAge = 30 * 24 * 60 * 60

// LocaleConfig configures the Locale middleware.
// Only Config is required.
type LocaleConfig struct {
	Config         i18n.Config
	Detector       *detect.Detector // default: detect.New(Config)
	Redirects      *redirect.Engine // default: path based redirects only
	Cookie         *cookie.Locale   // default: cookie.NewLocale(Config)
	Tracker        detect.Tracker   // default: every request is a first access
	Session        *cookie.Manager  // session id cookie; signed when it has a secret
	SessionKey     string           // default: DefaultSessionCookie
	Extractor      *Extractor       // current locale under no_prefix
	RedirectStatus int              // default: 302
	Metrics        *Metrics
	Logger         *slog.Logger
}

type localeMiddleware struct {
	cfg    LocaleConfig
	i18n   i18n.Config
	codes  []string
	getter *redirect.LocaleGetter
	logger *slog.Logger
}

// Locale returns middleware that resolves the request locale.
//
// Per request it resolves the current locale from the domain, the path or
// the extractor chain, runs browser language detection and redirects to
// the detected locale when the redirect engine finds a different path.
// Otherwise the locale is stored in the request context and persisted in
// the locale cookie.
func Locale(cfg LocaleConfig) func(http.Handler) http.Handler {
	m := newLocaleMiddleware(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, done := m.handle(w, r)
			if done {
				return
			}
			if locale != "" {
				r = r.WithContext(WithLocale(r.Context(), locale))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newLocaleMiddleware(cfg LocaleConfig) *localeMiddleware {
	ic := cfg.Config
	if ic.Strategy == "" {
		ic.Strategy = i18n.Defaults().Strategy
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNope()
	}
	if cfg.Detector == nil {
		cfg.Detector = detect.New(ic, detect.WithLogger(cfg.Logger))
	}
	if cfg.Redirects == nil {
		cfg.Redirects = redirect.New(ic, nil)
	}
	if cfg.Cookie == nil {
		cfg.Cookie = cookie.NewLocale(ic)
	}
	if cfg.SessionKey == "" {
		cfg.SessionKey = DefaultSessionCookie
	}
	if cfg.Session == nil {
		cfg.Session = cookie.New(
			cookie.WithPath("/"),
			cookie.WithHTTPOnly(true),
			cookie.WithSameSite(http.SameSiteLaxMode),
		)
	}
	if cfg.Extractor == nil {
		ext := NewExtractor(FromContext(), FromQuery("locale"), FromCookie(cfg.Cookie.Key()))
		cfg.Extractor = &ext
	}
	if cfg.RedirectStatus < 300 || cfg.RedirectStatus > 399 {
		cfg.RedirectStatus = http.StatusFound
	}

	return &localeMiddleware{
		cfg:    cfg,
		i18n:   ic,
		codes:  ic.Codes(),
		getter: cfg.Redirects.Getter(),
		logger: cfg.Logger,
	}
}

// handle returns the resolved locale, or done when a redirect was sent.
func (m *localeMiddleware) handle(w http.ResponseWriter, r *http.Request) (string, bool) {
	ctx := r.Context()

	current, routeLocale := m.current(r)
	stored := m.cfg.Cookie.Read(w, r)

	res := m.cfg.Detector.Detect(ctx, detect.FromHTTP(r), detect.Context{
		FirstAccess:  m.firstAccess(w, r),
		CallType:     detect.CallRouting,
		SSG:          detect.SSGNormal,
		LocaleCookie: stored,
	}, current)
	m.cfg.Metrics.detected(res)

	locale := current
	if res.Locale != "" {
		target := m.cfg.Redirects.DetectRedirect(redirect.Options{
			To:          redirect.Target{Path: r.URL.Path, FullPath: r.URL.RequestURI()},
			From:        referrer(r),
			Locale:      res.Locale,
			RouteLocale: routeLocale,
		}, true)
		if target != "" {
			m.cfg.Cookie.Write(w, res.Locale)
			m.cfg.Metrics.redirected(res.Locale)
			m.logger.DebugContext(ctx, "locale redirect",
				slog.String("from", r.URL.Path),
				slog.String("to", target),
				slog.String("locale", res.Locale),
				slog.String("source", string(res.From)),
			)
			http.Redirect(w, r, target, m.cfg.RedirectStatus)
			return "", true
		}
		if m.i18n.Strategy == i18n.NoPrefix {
			locale = res.Locale
		}
	}

	if locale != stored {
		m.cfg.Cookie.Write(w, locale)
	}
	return locale, false
}

// current returns the locale the request is served in and the locale
// encoded in its route. They differ only for unprefixed paths under the
// prefix strategy, which carry no route locale.
func (m *localeMiddleware) current(r *http.Request) (string, string) {
	if m.i18n.DifferentDomains {
		host := domain.Host(r)
		code, err := domain.LocaleFor(m.i18n.Locales, m.i18n.Strategy, host, r.URL.Path)
		if err != nil {
			m.logger.WarnContext(r.Context(), "ambiguous locale domain",
				slog.String("host", host),
				slog.Any("error", err),
			)
		}
		if code == "" {
			code = domain.DefaultLocaleFor(m.i18n, host)
		}
		return code, code
	}

	if m.i18n.Strategy == i18n.NoPrefix {
		if v, ok := m.cfg.Extractor.Extract(r); ok && slices.Contains(m.codes, v) {
			return v, v
		}
		return m.i18n.DefaultLocale, m.i18n.DefaultLocale
	}

	if code := m.getter.FromPath(r.URL.Path); code != "" {
		return code, code
	}
	if m.i18n.Strategy == i18n.Prefix {
		return m.i18n.DefaultLocale, ""
	}
	return m.i18n.DefaultLocale, m.i18n.DefaultLocale
}

// firstAccess consults the tracker with the visitor's session id,
// issuing a new id when the request has none. Tracker errors count as a
// repeat visit so a broken store never triggers redirects.
func (m *localeMiddleware) firstAccess(w http.ResponseWriter, r *http.Request) bool {
	if m.cfg.Tracker == nil {
		return true
	}
	if _, ok := m.cfg.Tracker.(detect.AlwaysFirst); ok {
		return true
	}

	first, err := m.cfg.Tracker.FirstAccess(r.Context(), m.sessionID(w, r))
	if err != nil {
		m.logger.ErrorContext(r.Context(), "first access tracking failed", slog.Any("error", err))
		return false
	}
	return first
}

func (m *localeMiddleware) sessionID(w http.ResponseWriter, r *http.Request) string {
	s := m.cfg.Session

	var (
		id  string
		err error
	)
	if s.HasSecret() {
		id, err = s.GetSigned(r, m.cfg.SessionKey)
	} else {
		id, err = s.Get(r, m.cfg.SessionKey)
	}
	if err == nil && id != "" {
		return id
	}

	id = uuid.NewString()
	if s.HasSecret() {
		if err := s.SetSigned(w, m.cfg.SessionKey, id, sessionMaxAge); err != nil {
			m.logger.ErrorContext(r.Context(), "failed to set session cookie", slog.Any("error", err))
		}
	} else {
		s.Set(w, m.cfg.SessionKey, id, sessionMaxAge)
	}
	return id
}

// referrer returns the same-host page the request navigates from.
func referrer(r *http.Request) *redirect.Target {
	ref := r.Referer()
	if ref == "" {
		return nil
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil
	}
	if u.Host != "" && domain.Normalize(u.Host) != domain.Normalize(domain.Host(r)) {
		return nil
	}
	return &redirect.Target{Path: u.Path, FullPath: u.RequestURI()}
}
