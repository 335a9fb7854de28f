package i18n

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

type localeMatch struct {
	code  string
	score float64
}

// MatchBrowserLocale picks the configured locale that best fits the
// browser's preferred languages (most preferred first).
//
// An exact tag match scores highest; a language-only match ("en-GB" for a
// locale tagged "en-US") scores slightly lower, and among same-language
// candidates a catch-all locale tagged with the bare language wins.
// Earlier browser languages score higher. Returns "" when nothing matches.
func MatchBrowserLocale(locales []Locale, browser []string) string {
	if len(locales) == 0 || len(browser) == 0 {
		return ""
	}

	n := float64(len(browser))
	var matches []localeMatch

	for i, b := range browser {
		j := slices.IndexFunc(locales, func(l Locale) bool {
			return strings.EqualFold(l.Tag(), b)
		})
		if j >= 0 {
			matches = append(matches, localeMatch{code: locales[j].Code, score: 1 - float64(i)/n})
			break
		}
	}

	for i, b := range browser {
		base := baseLanguage(b)
		var candidates []Locale
		for _, l := range locales {
			if baseLanguage(l.Tag()) == base {
				candidates = append(candidates, l)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pick := candidates[0]
		if k := slices.IndexFunc(candidates, func(l Locale) bool {
			return strings.EqualFold(l.Tag(), base)
		}); k >= 0 {
			pick = candidates[k]
		}
		matches = append(matches, localeMatch{code: pick.Code, score: 0.999 - float64(i)/n})
		break
	}

	if len(matches) == 0 {
		return ""
	}

	slices.SortStableFunc(matches, func(a, b localeMatch) int {
		return cmp.Or(
			cmp.Compare(b.score, a.score),
			cmp.Compare(len(b.code), len(a.code)),
		)
	})
	return matches[0].code
}

// baseLanguage returns the lower-case primary language subtag.
func baseLanguage(tag string) string {
	if t, err := language.Parse(tag); err == nil {
		if base, conf := t.Base(); conf != language.No {
			return base.String()
		}
	}
	first, _, _ := strings.Cut(strings.ReplaceAll(tag, "_", "-"), "-")
	return strings.ToLower(first)
}
