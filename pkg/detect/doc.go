// Package detect decides which locale the browser prefers for a request.
//
// Detect applies its rules in a fixed order and returns the first result
// that applies. A Result with an empty Locale carries the Reason detection
// gave up; callers must not redirect on it.
//
//	d := detect.New(cfg)
//	res := d.Detect(ctx, detect.FromHTTP(r), detect.Context{
//	    FirstAccess:  true,
//	    LocaleCookie: cookieValue,
//	}, "")
//	if res.Locale != "" {
//	    // redirect or switch locale
//	}
//
// Detection only runs on the first access of a session. On a server every
// request is a first access (AlwaysFirst); CacheTracker remembers sessions
// in a cache.Cache for per-session detection.
package detect
