// Package i18nroutes localizes a route table and serves it with browser
// locale detection.
//
// Every route is duplicated per configured locale according to a strategy:
//
//   - no_prefix: paths stay as they are
//   - prefix: every locale is prefixed ("/en/about", "/fr/about")
//   - prefix_except_default: the default locale stays unprefixed
//   - prefix_and_default: prefixed, plus an unprefixed default locale copy
//
// Localized routes are named "<name>___<locale>". Per-route locales and
// custom paths come from the configuration (customRoutes: config) or from
// YAML front matter in the page files (customRoutes: page).
//
// # Quick Start
//
//	cfg, err := i18nroutes.LoadConfig("i18n.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine, err := i18nroutes.New(cfg,
//	    i18nroutes.WithLogger(slog.Default()),
//	    i18nroutes.WithPagesFS(os.DirFS(".")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	routes, err := route.Scan(os.DirFS("."), "pages")
//	h, err := engine.Handler(ctx, routes, func(e i18nroutes.RouteEntry) http.Handler {
//	    return renderPage(e.Node.File)
//	})
//
//	if err := engine.Serve(h, i18nroutes.Address(":8080")); err != nil {
//	    log.Fatal(err)
//	}
//
// # Detection
//
// The engine middleware runs browser language detection: a valid locale
// cookie wins, then the Accept-Language header, then the fallback locale.
// Visitors are redirected to the detected locale according to redirectOn.
// Handlers read the resolved locale with LocaleFromContext.
//
// By default every request counts as a first access. Use WithTracker with
// a detect.CacheTracker to detect only once per visitor session:
//
//	store := cache.NewRedis[bool](redisClient, nil, cache.WithPrefix("i18n"))
//	engine, err := i18nroutes.New(cfg,
//	    i18nroutes.WithTracker(detect.NewCacheTracker(store, 24*time.Hour)),
//	)
//
// # Packages
//
// The building blocks live under pkg/ and can be used on their own:
// segment (file name segments), route (route trees and page scanning),
// localize (the localizer), detect, redirect, domain, cookie, cache, mount
// (chi mounting) and logger.
package i18nroutes
