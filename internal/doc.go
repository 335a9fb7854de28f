// Package internal implements the Engine behind the i18nroutes package.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/i18nroutes" instead, which re-exports the public
// API.
//
// The Engine owns one immutable configuration and the components built
// from it: the route localizer with its options resolver, the browser
// locale detector, the redirect engine and the locale cookie. Route
// localization is an explicit call; its result becomes the route table the
// redirect engine resolves names against.
//
//	engine, err := internal.New(cfg, internal.WithPagesFS(os.DirFS("app")))
//	h, err := engine.Handler(ctx, routes, handlerFor)
//	err = engine.Serve(h, internal.Address(":8080"))
package internal
