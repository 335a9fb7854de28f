package mount

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/i18nroutes/pkg/logger"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

// HandlerFor returns the handler serving a route, or nil to skip it.
type HandlerFor func(e route.Entry) http.Handler

// Option configures mounting.
type Option func(*mounter)

type mounter struct {
	redirectStatus int
	logger         *slog.Logger
}

// WithRedirectStatus sets the status of redirect routes.
// Defaults to 302.
func WithRedirectStatus(code int) Option {
	return func(m *mounter) {
		if code >= 300 && code < 400 {
			m.redirectStatus = code
		}
	}
}

// WithLogger logs every registered pattern at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *mounter) {
		if l != nil {
			m.logger = l
		}
	}
}

// Mount registers every route of a localized tree on r, including
// aliases. Routes with a redirect and no file answer with a redirect.
// When two routes share a pattern, the first one wins.
func Mount(r chi.Router, routes []route.Node, handlerFor HandlerFor, opts ...Option) error {
	m := &mounter{redirectStatus: http.StatusFound, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(m)
	}

	seen := make(map[string]bool)
	for _, e := range route.Flatten(routes) {
		h := m.handler(e, handlerFor)
		if h == nil {
			continue
		}

		for _, p := range append([]string{e.Path}, e.Alias...) {
			patterns, err := Patterns(p)
			if err != nil {
				return err
			}
			for _, pat := range patterns {
				if seen[pat] {
					continue
				}
				seen[pat] = true
				r.Handle(pat, h)
				m.logger.Debug("route mounted",
					slog.String("pattern", pat),
					slog.String("name", e.Node.Name),
				)
			}
		}
	}
	return nil
}

func (m *mounter) handler(e route.Entry, handlerFor HandlerFor) http.Handler {
	if e.Node.Redirect != "" && e.Node.File == "" {
		target, status := e.Node.Redirect, m.redirectStatus
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target, status)
		})
	}
	if handlerFor == nil {
		return nil
	}
	return handlerFor(e)
}
