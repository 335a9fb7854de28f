package domain

import (
	"strings"

	"github.com/dmitrymomot/i18nroutes/pkg/route"
)

// PruneDefaultRoutes prepares a localized tree for one domain of a
// multi-domain deployment. Routes named "<base><sep><suffix>" are
// unprefixed duplicates: the one for defaultLocale replaces the route
// named <base>, the others are dropped.
func PruneDefaultRoutes(routes []route.Node, defaultLocale, sep, suffix string) []route.Node {
	marker := sep + suffix

	replacements := make(map[string]route.Node)
	for _, n := range routes {
		base, ok := strings.CutSuffix(n.Name, marker)
		if !ok {
			continue
		}
		if _, locale, found := cutLast(base, sep); found && locale == defaultLocale {
			r := n.Clone()
			r.Name = base
			replacements[base] = r
		}
	}

	out := make([]route.Node, 0, len(routes))
	for _, n := range routes {
		if strings.HasSuffix(n.Name, marker) {
			continue
		}
		if r, ok := replacements[n.Name]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, n)
	}
	return out
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
