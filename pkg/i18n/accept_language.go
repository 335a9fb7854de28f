package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// languageTag represents a parsed language tag with quality value.
type languageTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage returns the language tags of an Accept-Language
// header ordered by descending quality. Equal qualities keep header order.
// The wildcard and tags with q=0 are dropped.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Returns: ["en-us", "en", "pl"]
func ParseAcceptLanguage(header string) []string {
	tags := parseLanguageTags(header)
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.tag)
	}
	return out
}

// parseLanguageTags parses the Accept-Language header into language tags with quality values.
func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)

			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" && quality > 0 {
			tags = append(tags, languageTag{
				tag:     normalizeLanguageTag(langPart),
				quality: quality,
			})
		}
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

// normalizeLanguageTag normalizes a language tag to lowercase.
func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
