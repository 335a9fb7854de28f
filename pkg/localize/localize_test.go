package localize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
	"github.com/dmitrymomot/i18nroutes/pkg/localize"
	"github.com/dmitrymomot/i18nroutes/pkg/route"
	"github.com/dmitrymomot/i18nroutes/pkg/segment"
)

func locales(codes ...string) []i18n.Locale {
	out := make([]i18n.Locale, 0, len(codes))
	for _, c := range codes {
		out = append(out, i18n.Locale{Code: c})
	}
	return out
}

// paths returns name -> path of the top-level routes.
func paths(nodes []route.Node) map[string]string {
	out := make(map[string]string, len(nodes))
	for _, n := range nodes {
		out[n.Name] = n.Path
	}
	return out
}

func TestLocalize(t *testing.T) {
	t.Parallel()

	routes := []route.Node{
		{Path: "/", Name: "index"},
		{Path: "/about", Name: "about"},
	}

	tests := []struct {
		name string
		opts localize.Options
		want []route.Node
	}{
		{
			name: "prefix_except_default",
			opts: localize.Options{
				Strategy:      i18n.PrefixExceptDefault,
				Locales:       locales("en", "fr"),
				DefaultLocale: "en",
			},
			want: []route.Node{
				{Path: "/", Name: "index___en"},
				{Path: "/fr", Name: "index___fr"},
				{Path: "/about", Name: "about___en"},
				{Path: "/fr/about", Name: "about___fr"},
			},
		},
		{
			name: "prefix",
			opts: localize.Options{
				Strategy:      i18n.Prefix,
				Locales:       locales("en", "fr"),
				DefaultLocale: "en",
			},
			want: []route.Node{
				{Path: "/en", Name: "index___en"},
				{Path: "/fr", Name: "index___fr"},
				{Path: "/en/about", Name: "about___en"},
				{Path: "/fr/about", Name: "about___fr"},
			},
		},
		{
			name: "prefix with unprefixed fallback",
			opts: localize.Options{
				Strategy:                  i18n.Prefix,
				Locales:                   locales("en", "fr"),
				DefaultLocale:             "en",
				IncludeUnprefixedFallback: true,
			},
			want: []route.Node{
				{Path: "/", Name: "index"},
				{Path: "/en", Name: "index___en"},
				{Path: "/fr", Name: "index___fr"},
				{Path: "/about", Name: "about"},
				{Path: "/en/about", Name: "about___en"},
				{Path: "/fr/about", Name: "about___fr"},
			},
		},
		{
			name: "prefix_and_default",
			opts: localize.Options{
				Strategy:      i18n.PrefixAndDefault,
				Locales:       locales("en", "fr"),
				DefaultLocale: "en",
			},
			want: []route.Node{
				{Path: "/", Name: "index___en___default"},
				{Path: "/en", Name: "index___en"},
				{Path: "/fr", Name: "index___fr"},
				{Path: "/about", Name: "about___en___default"},
				{Path: "/en/about", Name: "about___en"},
				{Path: "/fr/about", Name: "about___fr"},
			},
		},
		{
			name: "default locale forced into prefix",
			opts: localize.Options{
				Strategy:             i18n.PrefixExceptDefault,
				Locales:              locales("en", "fr"),
				DefaultLocale:        "en",
				PrefixDefaultLocales: []string{"en"},
			},
			want: []route.Node{
				{Path: "/en", Name: "index___en"},
				{Path: "/fr", Name: "index___fr"},
				{Path: "/en/about", Name: "about___en"},
				{Path: "/fr/about", Name: "about___fr"},
			},
		},
		{
			name: "trailing slash",
			opts: localize.Options{
				Strategy:      i18n.PrefixExceptDefault,
				Locales:       locales("en", "fr"),
				DefaultLocale: "en",
				TrailingSlash: true,
			},
			want: []route.Node{
				{Path: "/", Name: "index___en"},
				{Path: "/fr/", Name: "index___fr"},
				{Path: "/about/", Name: "about___en"},
				{Path: "/fr/about/", Name: "about___fr"},
			},
		},
		{
			name: "custom separator",
			opts: localize.Options{
				Strategy:            i18n.PrefixExceptDefault,
				Locales:             locales("en", "fr"),
				DefaultLocale:       "en",
				RoutesNameSeparator: "__",
			},
			want: []route.Node{
				{Path: "/", Name: "index__en"},
				{Path: "/fr", Name: "index__fr"},
				{Path: "/about", Name: "about__en"},
				{Path: "/fr/about", Name: "about__fr"},
			},
		},
		{
			name: "multi-domain duplicates",
			opts: localize.Options{
				Strategy:           i18n.PrefixExceptDefault,
				Locales:            locales("en", "fr"),
				DefaultLocale:      "en",
				MultiDomainLocales: true,
			},
			want: []route.Node{
				{Path: "/", Name: "index___en"},
				{Path: "/", Name: "index___fr___default"},
				{Path: "/fr", Name: "index___fr"},
				{Path: "/about", Name: "about___en"},
				{Path: "/about", Name: "about___fr___default"},
				{Path: "/fr/about", Name: "about___fr"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := localize.Localize(context.Background(), routes, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalize_PrefixStrategyPrefixesEveryRoute(t *testing.T) {
	t.Parallel()

	routes := []route.Node{
		{Path: "/", Name: "index"},
		{Path: "/about", Name: "about"},
		{Path: "/blog/:slug()", Name: "blog-slug"},
	}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.Prefix,
		Locales:       locales("en", "fr", "de"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)
	require.Len(t, got, 9)

	for _, n := range got {
		code := n.Name[len(n.Name)-2:]
		assert.True(t, n.Path == "/"+code || len(n.Path) > 3 && n.Path[:4] == "/"+code+"/", n.Path)
	}
}

func TestLocalize_NoPrefixIsNoop(t *testing.T) {
	t.Parallel()

	routes := []route.Node{
		{Path: "/", Name: "index"},
		{Path: "/about", Name: "about", Alias: []string{"/about-us"}},
	}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.NoPrefix,
		Locales:       locales("en", "fr"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, routes, got)
}

func TestLocalize_NoPrefixDifferentDomains(t *testing.T) {
	t.Parallel()

	routes := []route.Node{{Path: "/about", Name: "about"}}

	t.Run("distinct domains", func(t *testing.T) {
		t.Parallel()

		got, err := localize.Localize(context.Background(), routes, localize.Options{
			Strategy: i18n.NoPrefix,
			Locales: []i18n.Locale{
				{Code: "en", Domain: "example.com"},
				{Code: "fr", Domain: "example.fr"},
			},
			DefaultLocale:    "en",
			DifferentDomains: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []route.Node{
			{Path: "/about", Name: "about___en"},
			{Path: "/about", Name: "about___fr"},
		}, got)
	})

	t.Run("hosts shared through domain lists", func(t *testing.T) {
		t.Parallel()

		got, err := localize.Localize(context.Background(), routes, localize.Options{
			Strategy: i18n.NoPrefix,
			Locales: []i18n.Locale{
				{Code: "en", Domain: "en.example.com", Domains: []string{"shared.example.com"}},
				{Code: "fr", Domain: "fr.example.com", Domains: []string{"shared.example.com"}},
			},
			DefaultLocale:    "en",
			DifferentDomains: true,
		})
		require.NoError(t, err)
		assert.Equal(t, []route.Node{
			{Path: "/about", Name: "about___en"},
			{Path: "/about", Name: "about___fr"},
		}, got)
	})

	t.Run("conflicting domains leave routes unlocalized", func(t *testing.T) {
		t.Parallel()

		got, err := localize.Localize(context.Background(), routes, localize.Options{
			Strategy: i18n.NoPrefix,
			Locales: []i18n.Locale{
				{Code: "en", Domain: "example.com"},
				{Code: "fr", Domain: "example.com"},
			},
			DefaultLocale:    "en",
			DifferentDomains: true,
		})
		require.NoError(t, err)
		assert.Equal(t, routes, got)
	})
}

func TestShouldLocalize(t *testing.T) {
	t.Parallel()

	ok, err := localize.ShouldLocalize(localize.Options{Strategy: i18n.Prefix})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = localize.ShouldLocalize(localize.Options{Strategy: i18n.NoPrefix})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = localize.ShouldLocalize(localize.Options{
		Strategy:         i18n.NoPrefix,
		DifferentDomains: true,
		Locales: []i18n.Locale{
			{Code: "en", Domain: "example.com"},
			{Code: "fr", Domain: "example.com"},
		},
	})
	assert.ErrorIs(t, err, localize.ErrDomainConflict)
}

func TestLocalize_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	routes := []route.Node{{
		Path:  "/blog",
		Name:  "blog",
		Alias: []string{"/news"},
		Children: []route.Node{
			{Path: ":slug()", Name: "blog-slug"},
		},
	}}
	before := route.CloneAll(routes)

	_, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.Prefix,
		Locales:       locales("en", "fr"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, before, routes)
}

func TestLocalize_Aliases(t *testing.T) {
	t.Parallel()

	routes := []route.Node{{Path: "/about", Name: "about", Alias: []string{"/about-us", "/team/"}}}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.PrefixExceptDefault,
		Locales:       locales("en", "fr"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, []string{"/about-us", "/team"}, got[0].Alias)
	assert.Equal(t, []string{"/fr/about-us", "/fr/team"}, got[1].Alias)
}

func TestLocalize_Children(t *testing.T) {
	t.Parallel()

	routes := []route.Node{{
		Path: "/blog",
		Name: "blog",
		Children: []route.Node{
			{Path: ":slug()", Name: "blog-slug"},
			{Path: "/blog/archive", Name: "blog-archive"},
		},
	}}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.PrefixExceptDefault,
		Locales:       locales("en", "fr"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, []route.Node{
		{
			Path: "/blog",
			Name: "blog___en",
			Children: []route.Node{
				{Path: ":slug()", Name: "blog-slug___en"},
				{Path: "archive", Name: "blog-archive___en"},
			},
		},
		{
			Path: "/fr/blog",
			Name: "blog___fr",
			Children: []route.Node{
				{Path: ":slug()", Name: "blog-slug___fr"},
				{Path: "archive", Name: "blog-archive___fr"},
			},
		},
	}, got)
}

func TestLocalize_ChildrenOfExtraTree(t *testing.T) {
	t.Parallel()

	routes := []route.Node{{
		Path:     "/blog",
		Name:     "blog",
		Children: []route.Node{{Path: ":slug()", Name: "blog-slug"}},
	}}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.PrefixAndDefault,
		Locales:       locales("en"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "blog___en___default", got[0].Name)
	assert.Equal(t, "/blog", got[0].Path)
	assert.Equal(t, []route.Node{{Path: ":slug()", Name: "blog-slug___en___default"}}, got[0].Children)

	assert.Equal(t, "blog___en", got[1].Name)
	assert.Equal(t, "/en/blog", got[1].Path)
	assert.Equal(t, []route.Node{{Path: ":slug()", Name: "blog-slug___en"}}, got[1].Children)
}

func TestLocalize_RedirectPassthrough(t *testing.T) {
	t.Parallel()

	routes := []route.Node{
		{Path: "/old", Redirect: "/new"},
		{Path: "/new", Name: "new"},
	}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.Prefix,
		Locales:       locales("en", "fr"),
		DefaultLocale: "en",
	})
	require.NoError(t, err)
	assert.Equal(t, []route.Node{
		{Path: "/old", Redirect: "/new"},
		{Path: "/en/new", Name: "new___en"},
		{Path: "/fr/new", Name: "new___fr"},
	}, got)
}

func TestLocalize_Resolver(t *testing.T) {
	t.Parallel()

	resolver := localize.ResolverFunc(func(_ context.Context, n route.Node, _ []string) (localize.RouteOptions, bool, error) {
		switch n.Name {
		case "secret":
			return localize.RouteOptions{}, false, nil
		case "press":
			return localize.RouteOptions{Locales: []string{"fr", "de"}}, true, nil
		case "about":
			return localize.RouteOptions{Paths: map[string]string{"fr": "/a-propos"}}, true, nil
		}
		return localize.RouteOptions{}, true, nil
	})

	routes := []route.Node{
		{Path: "/secret", Name: "secret"},
		{Path: "/press", Name: "press"},
		{Path: "/about", Name: "about"},
	}
	got, err := localize.Localize(context.Background(), routes, localize.Options{
		Strategy:      i18n.PrefixExceptDefault,
		Locales:       locales("en", "fr"),
		DefaultLocale: "en",
		Resolver:      resolver,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"press___fr": "/fr/press",
		"about___en": "/about",
		"about___fr": "/fr/a-propos",
	}, paths(got))
}

func TestLocalize_ResolverLocaleOrder(t *testing.T) {
	t.Parallel()

	resolver := localize.ResolverFunc(func(context.Context, route.Node, []string) (localize.RouteOptions, bool, error) {
		return localize.RouteOptions{Locales: []string{"fr", "en", "fr"}}, true, nil
	})

	got, err := localize.Localize(context.Background(), []route.Node{{Path: "/about", Name: "about"}}, localize.Options{
		Strategy:      i18n.Prefix,
		Locales:       locales("en", "de", "fr"),
		DefaultLocale: "en",
		Resolver:      resolver,
	})
	require.NoError(t, err)
	assert.Equal(t, []route.Node{
		{Path: "/en/about", Name: "about___en"},
		{Path: "/fr/about", Name: "about___fr"},
	}, got)
}

func TestLocalize_MalformedCustomPath(t *testing.T) {
	t.Parallel()

	cfg := i18n.Defaults()
	cfg.Locales = locales("en", "fr")
	cfg.DefaultLocale = "en"
	cfg.CustomRoutes = i18n.CustomRoutesConfig
	cfg.Pages = map[string]i18n.PageConfig{
		"about": {Locales: map[string]i18n.PathOverride{"fr": {Path: "/[id"}}},
	}

	opts := localize.FromConfig(cfg)
	opts.Resolver = localize.NewResolver(cfg, nil, nil)

	_, err := localize.Localize(context.Background(), []route.Node{{Path: "/about", Name: "about"}}, opts)
	require.ErrorIs(t, err, segment.ErrUnterminatedParam)
}

func TestAdjustTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		path          string
		trailing      bool
		relativeChild bool
		want          string
	}{
		{name: "strip", path: "/about//", want: "/about"},
		{name: "append", path: "/about", trailing: true, want: "/about/"},
		{name: "root", path: "/", want: "/"},
		{name: "root with trailing", path: "/", trailing: true, want: "/"},
		{name: "relative child emptied", path: "/", relativeChild: true, want: ""},
		{name: "relative child", path: "edit/", relativeChild: true, want: "edit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, localize.AdjustTrailingSlash(tt.path, tt.trailing, tt.relativeChild))
		})
	}
}
