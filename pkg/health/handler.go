package health

import (
	"encoding/json"
	"net/http"
	"strings"
)

// LivenessHandler always answers 200 while the process runs.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		write(w, r, http.StatusOK, Report{Status: StatusHealthy})
	}
}

// ReadinessHandler runs checks per request and answers 503 when one fails.
func ReadinessHandler(checks Checks, opts ...Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := Run(r.Context(), checks, opts...)

		status := http.StatusOK
		if !report.Healthy() {
			status = http.StatusServiceUnavailable
		}
		write(w, r, status, report)
	}
}

// write answers JSON when asked for it via ?format=json or the Accept
// header, plain text otherwise.
func write(w http.ResponseWriter, r *http.Request, status int, report Report) {
	if r.URL.Query().Get("format") == "json" || strings.Contains(r.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status)))
}
