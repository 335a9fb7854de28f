package mount

import (
	"fmt"
	"regexp"
	"strings"
)

var paramRe = regexp.MustCompile(`(\\)?:([A-Za-z0-9_.]+)(\(\.\*\)\*|\(\)|\?)`)

// Patterns converts a localized route pattern into chi patterns.
//
//	/blog/:slug()       -> /blog/{slug}
//	/blog/:page?        -> /blog/{page}, /blog
//	/docs/:path(.*)*    -> /docs/*, /docs
//	/time\:now          -> /time:now
//
// Optional and catch-all params expand into one pattern with the segment
// and one without.
func Patterns(p string) ([]string, error) {
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	out := []string{""}
	segments := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, seg := range segments {
		last := i == len(segments)-1

		converted, kind, err := convertSegment(seg)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		if kind == "(.*)*" && !last {
			return nil, fmt.Errorf("%w: catch-all before the last segment in %q", ErrUnsupportedPattern, p)
		}

		next := make([]string, 0, len(out)*2)
		for _, prefix := range out {
			next = append(next, prefix+"/"+converted)
			if kind == "?" || kind == "(.*)*" {
				next = append(next, prefix)
			}
		}
		out = next
	}

	seen := make(map[string]bool, len(out))
	patterns := make([]string, 0, len(out))
	for _, pat := range out {
		if pat == "" {
			pat = "/"
		}
		if !seen[pat] {
			seen[pat] = true
			patterns = append(patterns, pat)
		}
	}
	return patterns, nil
}

// convertSegment rewrites one path segment. kind is the suffix of the
// optional or catch-all param it holds, if any.
func convertSegment(seg string) (string, string, error) {
	var kind string
	var err error

	converted := paramRe.ReplaceAllStringFunc(seg, func(m string) string {
		sub := paramRe.FindStringSubmatch(m)
		if sub[1] != "" {
			return m
		}
		name, suffix := sub[2], sub[3]
		switch suffix {
		case "(.*)*":
			if m != seg {
				err = fmt.Errorf("%w: catch-all must fill its segment", ErrUnsupportedPattern)
			}
			kind = suffix
			return "*"
		case "?":
			if m != seg {
				err = fmt.Errorf("%w: optional param must fill its segment", ErrUnsupportedPattern)
			}
			kind = suffix
		}
		return "{" + name + "}"
	})
	if err != nil {
		return "", "", err
	}
	return strings.ReplaceAll(converted, `\:`, ":"), kind, nil
}
