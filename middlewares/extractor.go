package middlewares

import "net/http"

// ExtractorSource extracts a value from a request.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(*http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
// Returns ("", false) if all sources miss.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(r); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromContext returns a source reading the locale stored by WithLocale.
func FromContext() ExtractorSource {
	return func(r *http.Request) (string, bool) {
		return LocaleFromContext(r.Context())
	}
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}
