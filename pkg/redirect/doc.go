// Package redirect decides whether a navigation must be redirected to
// another locale and computes where to.
//
// The Engine is pure: DetectRedirect returns a path, or "" when the
// target already serves the wanted locale, and leaves navigation to the
// caller.
//
//	e := redirect.New(cfg, localizedRoutes)
//	to := redirect.Target{Name: "about___en", Path: "/about"}
//	e.DetectRedirect(redirect.Options{
//	    To:          to,
//	    Locale:      "fr",
//	    RouteLocale: e.Getter().FromTarget(to),
//	}, true) // "/fr/about"
//
// Paths are resolved by route name when the localized table knows the
// target, with params filled into the pattern, and by re-prefixing the
// path otherwise.
package redirect
