package localize

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

// frame is the immutable recursion context of one route.
type frame struct {
	locales    []string
	parent     *route.Node // unlocalized parent, nil at the top level
	parentPath string      // localized path of the parent
	extra      bool        // unprefixed default tree of prefix_and_default
}

type localizer struct {
	opts           Options
	defaultLocales []string
}

// Localize expands routes into one variant per locale according to the
// strategy. The input is never modified.
//
// When localization is a no-op, or when no_prefix is combined with
// conflicting domains (logged as a warning), the input slice is returned
// as is. Resolver errors such as malformed custom paths abort the pass.
//
//	routes:  [{Path: "/about", Name: "about"}]
//	options: prefix_except_default, locales en (default) and fr
//	result:  [{Path: "/about", Name: "about___en"}, {Path: "/fr/about", Name: "about___fr"}]
func Localize(ctx context.Context, routes []route.Node, opts Options) ([]route.Node, error) {
	opts = opts.withDefaults()

	ok, err := ShouldLocalize(opts)
	if err != nil {
		opts.Logger.WarnContext(ctx, "routes left unlocalized", slog.String("error", err.Error()))
		return routes, nil
	}
	if !ok {
		return routes, nil
	}

	l := &localizer{opts: opts, defaultLocales: opts.defaultLocales()}
	root := frame{locales: i18n.Codes(opts.Locales)}

	out := make([]route.Node, 0, len(routes)*len(root.locales))
	for _, r := range routes {
		nodes, err := l.route(ctx, r, root)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}

	opts.Logger.DebugContext(ctx, "routes localized",
		slog.Int("input", len(routes)),
		slog.Int("output", len(out)),
		slog.String("strategy", string(opts.Strategy)),
	)
	return out, nil
}

func (l *localizer) route(ctx context.Context, r route.Node, f frame) ([]route.Node, error) {
	// Redirect-only routes have nothing to render per locale.
	if r.Redirect != "" && r.File == "" {
		return []route.Node{r.Clone()}, nil
	}

	locales := f.locales
	var paths map[string]string
	if l.opts.Resolver != nil {
		ro, ok, err := l.opts.Resolver.Resolve(ctx, r, f.locales)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		if ro.Locales != nil {
			locales = slices.DeleteFunc(slices.Clone(f.locales), func(code string) bool {
				return !slices.Contains(ro.Locales, code)
			})
		}
		paths = ro.Paths
	}

	var out []route.Node
	for _, locale := range locales {
		isDefault := slices.Contains(l.defaultLocales, locale)

		if isDefault && l.opts.Strategy == i18n.PrefixAndDefault && f.parent == nil && !f.extra {
			extra, err := l.route(ctx, r, frame{locales: []string{locale}, extra: true})
			if err != nil {
				return nil, err
			}
			out = append(out, extra...)
		}

		nodes, err := l.localize(ctx, r, locale, paths, isDefault, f)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func (l *localizer) localize(ctx context.Context, r route.Node, locale string, paths map[string]string, isDefault bool, f frame) ([]route.Node, error) {
	sep := l.opts.RoutesNameSeparator

	name := r.Name
	if name != "" {
		name += sep + locale
		if f.extra {
			name += sep + l.opts.DefaultLocaleRouteNameSuffix
		}
	}

	p := r.Path
	if custom, ok := paths[locale]; ok {
		p = custom
	}

	defaultLocale := l.opts.DefaultLocale
	if isDefault {
		defaultLocale = locale
	}

	var out []route.Node

	prefixed := l.opts.Prefixable(p, locale, defaultLocale, f.parent != nil, f.extra)
	if prefixed {
		multi := l.opts.Strategy == i18n.PrefixExceptDefault || l.opts.Strategy == i18n.PrefixAndDefault
		if l.opts.MultiDomainLocales && multi && name != "" {
			dup, err := l.finish(ctx, r, name+sep+l.opts.DefaultLocaleRouteNameSuffix, p, locale, defaultLocale, false, false, f)
			if err != nil {
				return nil, err
			}
			out = append(out, dup)
		}

		if isDefault && l.opts.Strategy == i18n.Prefix && l.opts.IncludeUnprefixedFallback {
			out = append(out, r.Clone())
		}
	}

	n, err := l.finish(ctx, r, name, p, locale, defaultLocale, prefixed, true, f)
	if err != nil {
		return nil, err
	}
	return append(out, n), nil
}

// finish builds the localized node: prefixes, aliases, trailing slash,
// parent-relative path and localized children. Aliases are prefixed on
// their own merits unless allowPrefix is false.
func (l *localizer) finish(ctx context.Context, r route.Node, name, p, locale, defaultLocale string, prefixed, allowPrefix bool, f frame) (route.Node, error) {
	child := f.parent != nil

	n := r.Clone()
	n.Name = name
	n.Children = nil

	if prefixed {
		p = prefixPath(locale, p)
	}

	if len(r.Alias) > 0 {
		n.Alias = make([]string, 0, len(r.Alias))
		for _, a := range r.Alias {
			if allowPrefix && l.opts.Prefixable(a, locale, defaultLocale, child, f.extra) {
				a = prefixPath(locale, a)
			}
			if a != "" {
				a = AdjustTrailingSlash(a, l.opts.TrailingSlash, child && !strings.HasPrefix(a, "/"))
			}
			n.Alias = append(n.Alias, a)
		}
	}

	if p != "" {
		p = AdjustTrailingSlash(p, l.opts.TrailingSlash, child && !strings.HasPrefix(p, "/"))
	}
	if child {
		p = strings.Replace(p, f.parentPath+"/", "", 1)
	}
	n.Path = p

	if len(r.Children) > 0 {
		next := frame{
			locales:    []string{locale},
			parent:     &r,
			parentPath: n.Path,
			extra:      f.extra,
		}
		for _, c := range r.Children {
			nodes, err := l.route(ctx, c, next)
			if err != nil {
				return route.Node{}, err
			}
			n.Children = append(n.Children, nodes...)
		}
	}

	return n, nil
}
