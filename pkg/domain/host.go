package domain

import (
	"net/http"
	"strings"
)

// Host returns the request host, preferring X-Forwarded-Host.
func Host(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	return r.Host
}

// Normalize reduces a host or origin to a comparable form.
// Strips protocol, path, port (IPv6 safe) and converts to lowercase.
//
//	"https://Example.COM:8080/" -> "example.com"
//	"[::1]:8080"                -> "[::1]"
func Normalize(host string) string {
	host = strings.TrimSpace(host)
	if _, rest, ok := strings.Cut(host, "://"); ok {
		host = rest
	}
	host, _, _ = strings.Cut(host, "/")

	if idx := strings.LastIndex(host, ":"); idx != -1 {
		if !strings.Contains(host[idx:], "]") {
			host = host[:idx]
		}
	}
	return strings.ToLower(host)
}

// Subdomain extracts the subdomain of host under baseDomain.
// Returns "" when host is not below baseDomain.
func Subdomain(host, baseDomain string) string {
	host = Normalize(host)
	base := Normalize(baseDomain)

	if host == base {
		return ""
	}
	sub, ok := strings.CutSuffix(host, "."+base)
	if !ok {
		return ""
	}
	return sub
}
