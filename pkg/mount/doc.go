// Package mount registers a localized route tree on a chi router.
//
// Route patterns use the localized syntax (":id()", ":id?", ":path(.*)*");
// Patterns rewrites them for chi. Optional and catch-all params register
// twice, with and without their segment.
//
//	r := chi.NewRouter()
//	err := mount.Mount(r, localized, func(e route.Entry) http.Handler {
//	    return pages[e.Node.File]
//	})
package mount
