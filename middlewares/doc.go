// Package middlewares provides net/http middleware for localized routing.
//
// # Locale
//
// Locale resolves the locale of every request, runs browser language
// detection and redirects first-time visitors to their preferred locale.
// The resolved locale is stored in the request context:
//
//	mw := middlewares.Locale(middlewares.LocaleConfig{
//	    Config:    cfg,
//	    Redirects: redirect.New(cfg, localized),
//	    Tracker:   detect.NewCacheTracker(cache.NewMemory[bool](), 0),
//	    Metrics:   middlewares.NewMetrics(prometheus.DefaultRegisterer),
//	})
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    locale, _ := middlewares.LocaleFromContext(r.Context())
//	}
//
// With a Tracker other than detect.AlwaysFirst each visitor gets a session
// id cookie, so detection runs only on the first visit. Use LocaleExtractor
// to add the locale to every log entry.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing. Incoming IDs
// from the X-Request-ID family of headers are kept. RequestIDExtractor adds
// it to logs.
//
// # Recover
//
// Recover turns handler panics into 500 responses and logs the stack.
package middlewares
