package redirect

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/i18n"
)

// LocaleGetter reads the locale embedded in a localized route, either
// from its name suffix ("about___fr", "about___en___default") or from its
// path prefix ("/fr/about").
type LocaleGetter struct {
	codes []string
	name  *regexp.Regexp
}

// NewLocaleGetter builds a getter for the locales and naming of cfg.
func NewLocaleGetter(cfg i18n.Config) *LocaleGetter {
	codes := cfg.Codes()
	quoted := make([]string, 0, len(codes))
	for _, c := range codes {
		quoted = append(quoted, regexp.QuoteMeta(c))
	}

	sep := regexp.QuoteMeta(cfg.RoutesNameSeparator)
	suffix := regexp.QuoteMeta(cfg.DefaultLocaleRouteNameSuffix)

	g := &LocaleGetter{codes: codes}
	if len(codes) > 0 && sep != "" {
		g.name = regexp.MustCompile(`(?i)` + sep + `(` + strings.Join(quoted, "|") + `)(?:` + sep + suffix + `)?$`)
	}
	return g
}

// FromName returns the locale suffix of a route name, or "".
func (g *LocaleGetter) FromName(name string) string {
	if g.name == nil {
		return ""
	}
	m := g.name.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return g.canonical(m[1])
}

// FromPath returns the locale prefix of a path, or "".
func (g *LocaleGetter) FromPath(p string) string {
	return i18n.LocaleFromPath(p, g.codes)
}

// FromTarget prefers the route name and falls back to the path.
func (g *LocaleGetter) FromTarget(t Target) string {
	if t.Name != "" {
		return g.FromName(t.Name)
	}
	return g.FromPath(t.Path)
}

// BaseName strips the locale suffix from a localized route name.
//
//	BaseName("about___fr")          // "about"
//	BaseName("about___en___default") // "about"
func (g *LocaleGetter) BaseName(name string) string {
	if g.name == nil {
		return name
	}
	if loc := g.name.FindStringIndex(name); loc != nil {
		return name[:loc[0]]
	}
	return name
}

func (g *LocaleGetter) canonical(code string) string {
	for _, c := range g.codes {
		if strings.EqualFold(c, code) {
			return c
		}
	}
	return code
}
