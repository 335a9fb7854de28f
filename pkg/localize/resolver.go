package localize

import (
	"context"
	"io/fs"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

// RouteOptions narrows the locales of one route and overrides its path
// per locale. Nil Locales keeps every candidate locale.
type RouteOptions struct {
	Locales []string
	Paths   map[string]string
}

// Resolver supplies per-route locale options. Returning ok == false
// excludes the route from localization.
type Resolver interface {
	Resolve(ctx context.Context, n route.Node, locales []string) (opts RouteOptions, ok bool, err error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, n route.Node, locales []string) (RouteOptions, bool, error)

func (f ResolverFunc) Resolve(ctx context.Context, n route.Node, locales []string) (RouteOptions, bool, error) {
	return f(ctx, n, locales)
}

// NewResolver selects the resolver configured by cfg.CustomRoutes.
// Page declarations are read from fsys; a nil fsys disables them and
// every route is accepted.
func NewResolver(cfg i18n.Config, fsys fs.FS, paths *segment.Resolver) Resolver {
	if paths == nil {
		paths = segment.NewResolver(nil)
	}

	switch cfg.CustomRoutes {
	case i18n.CustomRoutesConfig:
		return NewPagesResolver(cfg, paths)
	default:
		if fsys == nil {
			return nil
		}
		return NewComponentResolver(fsys, paths)
	}
}
