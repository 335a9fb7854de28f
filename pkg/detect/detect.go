package detect

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/i18nroutes/pkg/domain"
	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/logger"
)

// Source tells where a detected locale came from.
type Source string

const (
	SourceCookie    Source = "cookie"
	SourceNavigator Source = "navigator_or_header"
	SourceFallback  Source = "fallback"
)

// Reason explains why detection produced no locale.
type Reason string

const (
	ReasonDisabled            Reason = "detection_disabled"
	ReasonNotFoundMatch       Reason = "not_found_match"
	ReasonFirstAccessOnly     Reason = "first_access_only"
	ReasonNotRedirectOnRoot   Reason = "not_redirect_on_root"
	ReasonNotRedirectNoPrefix Reason = "not_redirect_on_no_prefix"
	ReasonSSGIgnore           Reason = "detect_ignore_on_ssg"
)

// CallType is the phase that triggered detection.
type CallType string

const (
	CallSetup   CallType = "setup"
	CallRouting CallType = "routing"
)

// SSGStatus is the static generation phase of the call.
type SSGStatus string

const (
	SSGNormal SSGStatus = "normal"
	SSGIgnore SSGStatus = "ssg_ignore"
	SSGSetup  SSGStatus = "ssg_setup"
)

// Request is the navigation target as seen by the detector.
type Request struct {
	Path           string
	Host           string
	AcceptLanguage string
	// Languages are the browser's preferred languages, most preferred
	// first. When empty they are parsed from AcceptLanguage.
	Languages []string
}

// Context is the per-call detection state.
type Context struct {
	FirstAccess  bool
	CallType     CallType
	SSG          SSGStatus
	LocaleCookie string
}

// Result of a detection. An empty Locale means no action.
type Result struct {
	Locale string `json:"locale"`
	From   Source `json:"from,omitempty"`
	Reason Reason `json:"reason,omitempty"`
}

// Detector picks the browser-preferred locale of a request.
// It is safe for concurrent use.
type Detector struct {
	cfg    i18n.Config
	codes  []string
	hosts  []string
	server bool
	logger *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithServer marks the detector as running in a server context.
// Defaults to true.
func WithServer(server bool) Option {
	return func(d *Detector) {
		d.server = server
	}
}

// New creates a Detector for cfg.
func New(cfg i18n.Config, opts ...Option) *Detector {
	d := &Detector{
		cfg:    cfg,
		codes:  cfg.Codes(),
		server: true,
		logger: logger.NewNope(),
	}
	for _, h := range cfg.DetectBrowserLanguage.ForDomains {
		d.hosts = append(d.hosts, domain.Normalize(h))
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs the detection rules in order; the first one that applies
// decides the result.
//
//  1. detection disabled, or host outside forDomains
//  2. static generation with no_prefix
//  3. not the first access
//  4. redirectOn restrictions (prefix strategies only)
//  5. cookie, then browser languages, then the fallback locale
func (d *Detector) Detect(ctx context.Context, req Request, dctx Context, current string) Result {
	det := d.cfg.DetectBrowserLanguage
	strategy := d.cfg.Strategy

	if !det.Enabled {
		return Result{Reason: ReasonDisabled}
	}
	if !d.allowedHost(req.Host) {
		return Result{Reason: ReasonNotFoundMatch}
	}

	if d.cfg.IsSSG && strategy == i18n.NoPrefix && (d.server || dctx.SSG == SSGIgnore) {
		return Result{Reason: ReasonSSGIgnore}
	}

	if !dctx.FirstAccess {
		if strategy == i18n.NoPrefix {
			return Result{Locale: current}
		}
		return Result{Reason: ReasonFirstAccessOnly}
	}

	if strategy != i18n.NoPrefix {
		p := req.Path
		if p == "" {
			p = "/"
		}
		if det.RedirectOn == i18n.RedirectOnRoot && p != "/" {
			return Result{Reason: ReasonNotRedirectOnRoot}
		}
		if det.RedirectOn == i18n.RedirectOnNoPrefix && !det.AlwaysRedirect && i18n.LocaleFromPath(p, d.codes) != "" {
			return Result{Reason: ReasonNotRedirectNoPrefix}
		}
	}

	res := d.match(req, dctx)
	if d.cfg.Debug {
		d.logger.DebugContext(ctx, "browser language detected",
			slog.String("path", req.Path),
			slog.String("locale", res.Locale),
			slog.String("from", string(res.From)),
			slog.String("reason", string(res.Reason)),
		)
	}
	return res
}

func (d *Detector) match(req Request, dctx Context) Result {
	det := d.cfg.DetectBrowserLanguage

	if det.UseCookie && dctx.LocaleCookie != "" && slices.Contains(d.codes, dctx.LocaleCookie) {
		return Result{Locale: dctx.LocaleCookie, From: SourceCookie}
	}

	languages := req.Languages
	if len(languages) == 0 {
		languages = i18n.ParseAcceptLanguage(req.AcceptLanguage)
	}
	if code := i18n.MatchBrowserLocale(d.cfg.Locales, languages); code != "" {
		return Result{Locale: code, From: SourceNavigator}
	}

	if det.FallbackLocale != "" {
		return Result{Locale: det.FallbackLocale, From: SourceFallback}
	}
	return Result{Reason: ReasonNotFoundMatch}
}

// allowedHost reports whether host is in forDomains. An empty list
// allows every host.
func (d *Detector) allowedHost(host string) bool {
	if len(d.hosts) == 0 {
		return true
	}
	return slices.Contains(d.hosts, domain.Normalize(host))
}
