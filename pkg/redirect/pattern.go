package redirect

import (
	"net/url"
	"regexp"
	"strings"
)

var paramRe = regexp.MustCompile(`\\?:([A-Za-z0-9_.]+)(\(\.\*\)\*|\(\)|\?)`)

// Fill substitutes params into a localized route pattern.
//
//	Fill("/fr/blog/:slug()", map[string]string{"slug": "hello"}) // "/fr/blog/hello", true
//
// Required params must be present. Optional and catch-all params may be
// missing; their segment is dropped. Reports false when a required param
// is missing.
func Fill(pattern string, params map[string]string) (string, bool) {
	ok := true
	out := paramRe.ReplaceAllStringFunc(pattern, func(m string) string {
		if strings.HasPrefix(m, `\`) {
			return m
		}
		sub := paramRe.FindStringSubmatch(m)
		name, kind := sub[1], sub[2]

		v, found := params[name]
		switch {
		case kind == "()" && (!found || v == ""):
			ok = false
			return ""
		case kind == "(.*)*":
			return escapeSegments(strings.Trim(v, "/"))
		default:
			return url.PathEscape(v)
		}
	})
	if !ok {
		return "", false
	}

	out = strings.ReplaceAll(out, `\:`, ":")
	for strings.Contains(out, "//") {
		out = strings.ReplaceAll(out, "//", "/")
	}
	if len(out) > 1 && strings.HasSuffix(out, "/") && !strings.HasSuffix(pattern, "/") {
		out = strings.TrimSuffix(out, "/")
	}
	if out == "" {
		out = "/"
	}
	return out, true
}

func escapeSegments(s string) string {
	parts := strings.Split(s, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
