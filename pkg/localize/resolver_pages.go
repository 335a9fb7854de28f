package localize

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

// PagesResolver reads route options from the central pages map.
type PagesResolver struct {
	pages         map[string]i18n.PageConfig
	defaultLocale string
	pagesDir      string
	paths         *segment.Resolver
}

// NewPagesResolver builds a resolver over cfg.Pages.
func NewPagesResolver(cfg i18n.Config, paths *segment.Resolver) *PagesResolver {
	if paths == nil {
		paths = segment.NewResolver(nil)
	}
	return &PagesResolver{
		pages:         cfg.Pages,
		defaultLocale: cfg.DefaultLocale,
		pagesDir:      strings.Trim(cfg.PagesDir, "/"),
		paths:         paths,
	}
}

// Key returns the pages map key of a route: its page file relative to
// the pages directory without extension, or its path without the
// leading slash ("index" for the root).
func (p *PagesResolver) Key(n route.Node) string {
	if n.File != "" {
		rel := strings.TrimPrefix(n.File, "/")
		if p.pagesDir != "" {
			rel = strings.TrimPrefix(rel, p.pagesDir+"/")
		}
		return strings.TrimSuffix(rel, path.Ext(rel))
	}
	if key := strings.Trim(n.Path, "/"); key != "" {
		return key
	}
	return "index"
}

// Resolve implements Resolver.
//
// A page set to false is excluded. A locale set to false is removed.
// A locale without its own path inherits the default locale's path.
func (p *PagesResolver) Resolve(ctx context.Context, n route.Node, locales []string) (RouteOptions, bool, error) {
	page, found := p.pages[p.Key(n)]
	if !found {
		return RouteOptions{Locales: locales}, true, nil
	}
	if page.Disabled {
		return RouteOptions{}, false, nil
	}

	opts := RouteOptions{Locales: make([]string, 0, len(locales))}
	for _, code := range locales {
		if page.Locales[code].Disabled {
			continue
		}
		opts.Locales = append(opts.Locales, code)

		custom := page.Locales[code].Path
		if custom == "" {
			custom = page.Locales[p.defaultLocale].Path
		}
		if custom == "" {
			continue
		}

		resolved, err := p.paths.Resolve(ctx, custom)
		if err != nil {
			return RouteOptions{}, false, fmt.Errorf("page %q, locale %q: %w", p.Key(n), code, err)
		}
		if opts.Paths == nil {
			opts.Paths = make(map[string]string)
		}
		opts.Paths[code] = resolved
	}

	return opts, true, nil
}
