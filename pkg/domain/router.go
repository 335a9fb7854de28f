package domain

import (
	"net/http"
	"strings"
)

// Routes maps host patterns to HTTP handlers.
// Exact: "fr.example.com"
// Wildcard: "*.example.com"
type Routes map[string]http.Handler

// Router dispatches requests to per-domain handlers.
type Router struct {
	exact    map[string]http.Handler
	wildcard map[string]http.Handler // "example.com" -> handler for *.example.com
	fallback http.Handler
}

// NewRouter creates a host router. A nil fallback answers 404.
func NewRouter(routes Routes, fallback http.Handler) *Router {
	if fallback == nil {
		fallback = http.NotFoundHandler()
	}

	r := &Router{
		exact:    make(map[string]http.Handler),
		wildcard: make(map[string]http.Handler),
		fallback: fallback,
	}

	for pattern, handler := range routes {
		pattern = strings.ToLower(strings.TrimSpace(pattern))
		if pattern == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(pattern, "*."); ok {
			r.wildcard[Normalize(rest)] = handler
		} else {
			r.exact[Normalize(pattern)] = handler
		}
	}

	return r
}

// ServeHTTP routes on the request host (X-Forwarded-Host aware).
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	host := Normalize(Host(req))

	if h, ok := r.exact[host]; ok {
		h.ServeHTTP(w, req)
		return
	}

	if _, parent, ok := strings.Cut(host, "."); ok {
		if h, ok := r.wildcard[parent]; ok {
			h.ServeHTTP(w, req)
			return
		}
	}

	r.fallback.ServeHTTP(w, req)
}
