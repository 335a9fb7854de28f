// Package domain resolves locales from request hosts for deployments that
// serve each locale on its own domain.
//
// LocaleFor maps a host to a locale code. Hosts are compared after
// Normalize, so "https://FR.example.com:443/" and "fr.example.com" match.
// When several locales share a host, prefix strategies disambiguate by the
// path's locale prefix and then by the domain default; no_prefix has no
// prefix to look at and takes the first locale in configuration order.
//
//	code, err := domain.LocaleFor(cfg.Locales, cfg.Strategy, domain.Host(r), r.URL.Path)
//	if errors.Is(err, domain.ErrAmbiguousDomain) {
//	    log.WarnContext(ctx, "ambiguous locale domain", slog.String("host", r.Host))
//	}
//
// Router serves one handler per domain, with "*.example.com" wildcards.
package domain
